package weierstrass

import (
	"fmt"
	"math/big"
)

// Point is an element of the elliptic-curve group: either an affine point
// (x, y) or the point at infinity, the group identity. The identity is a
// distinct variant rather than a reserved coordinate pair, so it can never
// collide with a legitimate point such as (0, 0).
//
// The zero value of Point is NOT valid; use NewPoint or Infinity.
type Point struct {
	x, y *big.Int
	inf  bool
}

// NewPoint returns the affine point (x, y). The coordinates are copied.
func NewPoint(x, y *big.Int) Point {
	return Point{
		x: new(big.Int).Set(x),
		y: new(big.Int).Set(y),
	}
}

// Infinity returns the point at infinity, the group identity.
func Infinity() Point {
	return Point{inf: true}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.inf
}

// Coords returns the affine coordinates of p, or (nil, nil) for the point
// at infinity.
func (p Point) Coords() (x, y *big.Int) {
	if p.inf {
		return nil, nil
	}
	return p.x, p.y
}

// Equal reports whether p and q are the same group element.
func (p Point) Equal(q Point) bool {
	if p.inf || q.inf {
		return p.inf == q.inf
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

func (p Point) String() string {
	if p.inf {
		return "O"
	}
	return fmt.Sprintf("(%s, %s)", p.x, p.y)
}
