// Package weierstrass implements the affine group law on short Weierstrass
// curves y² = x³ + ax + b over a prime field F_p.
//
// The arithmetic is deliberately the textbook chord-and-tangent formula on
// *big.Int affine coordinates: simple, exact for any field size, and easy to
// audit against the group axioms. It makes no attempt at constant-time
// behavior or projective-coordinate speedups.
package weierstrass

import (
	"math/big"

	"github.com/mattcalkohn/Elliptic-Curve-DLP/internal/crypto/field"
)

// Curve is a short Weierstrass curve y² = x³ + Ax + B over F_P.
//
// P must be an odd prime and the curve non-singular
// (4A³ + 27B² ≢ 0 mod P); neither is verified here.
type Curve struct {
	P *big.Int // field prime
	A *big.Int // x coefficient
	B *big.Int // constant term
}

// NewCurve returns the curve y² = x³ + ax + b over F_p.
// The parameters are copied.
func NewCurve(p, a, b *big.Int) Curve {
	return Curve{
		P: new(big.Int).Set(p),
		A: new(big.Int).Set(a),
		B: new(big.Int).Set(b),
	}
}

// EvalRHS evaluates the curve's right-hand side x³ + Ax + B mod P.
func (c Curve) EvalRHS(x *big.Int) *big.Int {
	rhs := new(big.Int).Mul(x, x)
	rhs.Mul(rhs, x)
	rhs.Add(rhs, new(big.Int).Mul(c.A, x))
	rhs.Add(rhs, c.B)
	return rhs.Mod(rhs, c.P)
}

// IsOnCurve reports whether pt satisfies the curve equation. The point at
// infinity lies on every curve.
func (c Curve) IsOnCurve(pt Point) bool {
	if pt.IsInfinity() {
		return true
	}
	y2 := new(big.Int).Mul(pt.y, pt.y)
	y2.Mod(y2, c.P)
	return y2.Cmp(c.EvalRHS(pt.x)) == 0
}

// slope computes the slope of the chord through two distinct affine points,
// or of the tangent when they coincide. It returns ok=false when the line is
// vertical, i.e. the sum of the points is the point at infinity. Both points
// must be affine.
func (c Curve) slope(p, q Point) (*big.Int, bool) {
	var num, den *big.Int

	switch {
	case p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0:
		// Tangent: (3x² + A) / 2y. When y = 0 the tangent is vertical
		// and the division below is undefined.
		num = new(big.Int).Mul(p.x, p.x)
		num.Mul(num, big.NewInt(3))
		num.Add(num, c.A)
		den = new(big.Int).Lsh(p.y, 1)
	case p.x.Cmp(q.x) == 0:
		// Same x, different y: q = -p, vertical line.
		return nil, false
	default:
		num = new(big.Int).Sub(p.y, q.y)
		den = new(big.Int).Sub(p.x, q.x)
	}

	return field.Div(num, den, c.P)
}

// Add returns the group sum p + q under the chord-and-tangent law.
func (c Curve) Add(p, q Point) Point {
	// Identity law.
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}

	s, ok := c.slope(p, q)
	if !ok {
		// Vertical line: p + q = O. Covers q = -p and doubling a
		// point with y = 0.
		return Infinity()
	}

	// x_r = s² - px - qx, y_r = s(px - x_r) - py
	xr := new(big.Int).Mul(s, s)
	xr.Sub(xr, p.x)
	xr.Sub(xr, q.x)
	xr.Mod(xr, c.P)

	yr := new(big.Int).Sub(p.x, xr)
	yr.Mul(yr, s)
	yr.Sub(yr, p.y)
	yr.Mod(yr, c.P)

	return Point{x: xr, y: yr}
}

// Multiply returns n·pt by repeated addition: n-1 chained Adds. This is the
// O(n) schoolbook ladder, not double-and-add, to match the brute-force
// character of the rest of the engine. n <= 0 yields the point at infinity.
func (c Curve) Multiply(n *big.Int, pt Point) Point {
	if n == nil || n.Sign() <= 0 {
		return Infinity()
	}

	one := big.NewInt(1)
	acc := pt
	for i := new(big.Int).Set(one); i.Cmp(n) < 0; i.Add(i, one) {
		acc = c.Add(acc, pt)
	}
	return acc
}
