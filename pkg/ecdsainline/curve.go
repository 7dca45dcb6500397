package ecdsainline

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Curve holds the short-Weierstrass parameters y² = x³ + ax + b over the
// prime field of order P, together with the generator G = (Gx, Gy) and the
// order N of the subgroup it generates. All signature arithmetic is done
// modulo N.
type Curve struct {
	P  *big.Int // prime field modulus
	A  *big.Int // linear coefficient (zero for secp256k1)
	B  *big.Int // constant coefficient
	Gx *big.Int // generator x
	Gy *big.Int // generator y
	N  *big.Int // subgroup order
}

// NewCurve returns the secp256k1 parameters. The values come straight from
// the decred secp256k1 implementation so they cannot drift from the
// canonical constants. Each call returns a fresh value; callers may mutate
// nothing and share nothing.
func NewCurve() *Curve {
	params := secp256k1.S256().Params()
	return &Curve{
		P:  new(big.Int).Set(params.P),
		A:  new(big.Int),
		B:  new(big.Int).Set(params.B),
		Gx: new(big.Int).Set(params.Gx),
		Gy: new(big.Int).Set(params.Gy),
		N:  new(big.Int).Set(params.N),
	}
}

// G returns the generator point.
func (c *Curve) G() Point {
	return NewPoint(c.Gx, c.Gy)
}

// IsOnCurve reports whether p satisfies y² = x³ + ax + b (mod P). The point
// at infinity is on the curve.
func (c *Curve) IsOnCurve(p Point) bool {
	if p.IsInfinity() {
		return true
	}
	// y² mod P
	y2 := new(big.Int).Mul(p.Y, p.Y)
	y2.Mod(y2, c.P)

	// x³ + ax + b mod P
	rhs := new(big.Int).Mul(p.X, p.X)
	rhs.Add(rhs, c.A)
	rhs.Mul(rhs, p.X)
	rhs.Add(rhs, c.B)
	rhs.Mod(rhs, c.P)

	return y2.Cmp(rhs) == 0
}
