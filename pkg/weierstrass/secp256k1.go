package weierstrass

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Secp256k1 returns the secp256k1 curve (y² = x³ + 7 over its 256-bit prime)
// as a generic Curve together with its generator point. The parameters come
// from the decred implementation, which also serves as the reference the
// group-law tests cross-check against.
//
// Note that brute-force discrete logs are hopeless at this field size; the
// curve is exposed for group-law interoperability, not for search.
func Secp256k1() (Curve, Point) {
	params := secp256k1.S256().Params()
	c := Curve{
		P: params.P,
		A: big.NewInt(0),
		B: params.B,
	}
	return c, NewPoint(params.Gx, params.Gy)
}
