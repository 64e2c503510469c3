// Package field implements modular arithmetic over a prime field F_p.
// All values are *big.Int so the field size is limited only by memory;
// results are normalized to the canonical residues [0, p).
package field

import "math/big"

// ExtendedGCD returns g = gcd(a, b) together with Bézout coefficients
// x, y satisfying a*x + b*y = g.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	if a.Sign() == 0 {
		return new(big.Int).Set(b), big.NewInt(0), big.NewInt(1)
	}

	q, r := new(big.Int).QuoRem(b, a, new(big.Int))
	g, y1, x1 := ExtendedGCD(r, a)

	// x = x1 - (b/a)*y1, y = y1
	x = new(big.Int).Mul(q, y1)
	x.Sub(x1, x)
	return g, x, y1
}

// Inverse returns the multiplicative inverse of a modulo p, normalized to
// [0, p). The second return value is false when gcd(a, p) != 1; for prime p
// that only happens when a ≡ 0 (mod p).
func Inverse(a, p *big.Int) (*big.Int, bool) {
	g, x, _ := ExtendedGCD(Mod(a, p), p)
	if g.Cmp(big.NewInt(1)) != 0 {
		return nil, false
	}
	return Mod(x, p), true
}

// Div returns num * den⁻¹ mod p. The second return value is false when den
// has no inverse modulo p, i.e. the division is undefined. Callers must
// branch on it rather than consume a placeholder quotient.
func Div(num, den, p *big.Int) (*big.Int, bool) {
	inv, ok := Inverse(den, p)
	if !ok {
		return nil, false
	}
	q := new(big.Int).Mul(Mod(num, p), inv)
	return q.Mod(q, p), true
}

// Mod returns the canonical non-negative residue of a modulo p.
func Mod(a, p *big.Int) *big.Int {
	return new(big.Int).Mod(a, p)
}
