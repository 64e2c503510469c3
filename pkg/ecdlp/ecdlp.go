// Package ecdlp solves the elliptic-curve discrete logarithm problem by
// exhaustive search: given points P and Q on a short Weierstrass curve over
// F_p, it finds the smallest positive n with n·P = Q.
//
// The search is the O(p) brute-force baseline, intentionally free of
// baby-step giant-step, Pollard's rho, or any other shortcut. It is a
// reference for how expensive the problem is, not an attack tool.
package ecdlp

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/mattcalkohn/Elliptic-Curve-DLP/pkg/weierstrass"
)

// Errors returned by the solvers. Invalid input and an exhausted search are
// distinct outcomes; callers can tell them apart with errors.Is.
var (
	ErrInvalidBasePoint = errors.New("ecdlp: base point is the point at infinity")
	ErrPointNotOnCurve  = errors.New("ecdlp: point does not lie on the curve")
	ErrNotFound         = errors.New("ecdlp: no logarithm found within the search bound")
	ErrNoWorkers        = errors.New("ecdlp: worker count must be at least 1")
)

// Solve returns the smallest n in [1, p] with n·base = target, walking
// base, 2·base, 3·base, … one group addition at a time.
//
// The bound p (the field size) over-approximates the group order, so every
// solvable instance is found; if no multiple of base matches below the
// bound, Solve returns ErrNotFound. The point at infinity is a valid target
// (the walk reaches it at the order of base), but not a valid base.
func Solve(c weierstrass.Curve, base, target weierstrass.Point) (*big.Int, error) {
	if err := validate(c, base, target); err != nil {
		return nil, err
	}

	one := big.NewInt(1)
	n := big.NewInt(1)
	walk := base
	for !walk.Equal(target) {
		if n.Cmp(c.P) >= 0 {
			return nil, ErrNotFound
		}
		walk = c.Add(walk, base)
		n.Add(n, one)
	}
	return n, nil
}

// validate applies the input checks shared by Solve and SolveParallel.
func validate(c weierstrass.Curve, base, target weierstrass.Point) error {
	if base.IsInfinity() {
		return ErrInvalidBasePoint
	}
	if !c.IsOnCurve(base) {
		return fmt.Errorf("%w: base %v", ErrPointNotOnCurve, base)
	}
	if !c.IsOnCurve(target) {
		return fmt.Errorf("%w: target %v", ErrPointNotOnCurve, target)
	}
	return nil
}
