package field

import (
	"math/big"
	"testing"
)

func TestExtendedGCD(t *testing.T) {
	cases := []struct {
		a, b, g int64
	}{
		{0, 7, 7},
		{12, 97, 1},
		{10, 97, 1},
		{6, 9, 3},
		{35, 15, 5},
		{1, 1, 1},
	}

	for _, tc := range cases {
		a := big.NewInt(tc.a)
		b := big.NewInt(tc.b)

		g, x, y := ExtendedGCD(a, b)
		if g.Int64() != tc.g {
			t.Errorf("ExtendedGCD(%d, %d): gcd = %s, want %d", tc.a, tc.b, g, tc.g)
		}

		// Bézout identity: a*x + b*y = g
		lhs := new(big.Int).Mul(a, x)
		lhs.Add(lhs, new(big.Int).Mul(b, y))
		if lhs.Cmp(g) != 0 {
			t.Errorf("ExtendedGCD(%d, %d): %s*%d + %s*%d = %s, want %s",
				tc.a, tc.b, x, tc.a, y, tc.b, lhs, g)
		}
	}
}

func TestInverse(t *testing.T) {
	p := big.NewInt(97)

	t.Run("all nonzero residues invert", func(t *testing.T) {
		for a := int64(1); a < 97; a++ {
			inv, ok := Inverse(big.NewInt(a), p)
			if !ok {
				t.Fatalf("Inverse(%d, 97) reported no inverse", a)
			}
			prod := new(big.Int).Mul(big.NewInt(a), inv)
			prod.Mod(prod, p)
			if prod.Int64() != 1 {
				t.Fatalf("Inverse(%d, 97) = %s, product is %s", a, inv, prod)
			}
			if inv.Sign() < 0 || inv.Cmp(p) >= 0 {
				t.Fatalf("Inverse(%d, 97) = %s not normalized to [0, p)", a, inv)
			}
		}
	})

	t.Run("zero has no inverse", func(t *testing.T) {
		if _, ok := Inverse(big.NewInt(0), p); ok {
			t.Error("Inverse(0, 97) should not exist")
		}
	})

	t.Run("multiple of p has no inverse", func(t *testing.T) {
		if _, ok := Inverse(big.NewInt(194), p); ok {
			t.Error("Inverse(194, 97) should not exist")
		}
	})

	t.Run("known value", func(t *testing.T) {
		// 12 * 89 = 1068 = 11*97 + 1
		inv, ok := Inverse(big.NewInt(12), p)
		if !ok || inv.Int64() != 89 {
			t.Errorf("Inverse(12, 97) = %s, %v, want 89", inv, ok)
		}
	})
}

func TestDiv(t *testing.T) {
	p := big.NewInt(97)

	t.Run("quotient", func(t *testing.T) {
		// 29 / 12 = 29 * 89 = 2581 ≡ 59 (mod 97)
		q, ok := Div(big.NewInt(29), big.NewInt(12), p)
		if !ok || q.Int64() != 59 {
			t.Errorf("Div(29, 12, 97) = %s, %v, want 59", q, ok)
		}
	})

	t.Run("negative numerator normalizes", func(t *testing.T) {
		q, ok := Div(big.NewInt(-4), big.NewInt(1), p)
		if !ok || q.Int64() != 93 {
			t.Errorf("Div(-4, 1, 97) = %s, %v, want 93", q, ok)
		}
	})

	t.Run("undefined for zero denominator", func(t *testing.T) {
		if _, ok := Div(big.NewInt(5), big.NewInt(0), p); ok {
			t.Error("Div(5, 0, 97) should be undefined")
		}
	})

	t.Run("undefined for denominator multiple of p", func(t *testing.T) {
		if _, ok := Div(big.NewInt(5), big.NewInt(97), p); ok {
			t.Error("Div(5, 97, 97) should be undefined")
		}
	})
}

func TestMod(t *testing.T) {
	p := big.NewInt(97)
	if got := Mod(big.NewInt(-1), p); got.Int64() != 96 {
		t.Errorf("Mod(-1, 97) = %s, want 96", got)
	}
	if got := Mod(big.NewInt(194), p); got.Int64() != 0 {
		t.Errorf("Mod(194, 97) = %s, want 0", got)
	}
}
