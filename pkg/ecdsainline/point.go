package ecdsainline

import "math/big"

// Point is a curve point in affine coordinates, or the point at infinity
// (the group identity). Infinity is a tagged state, not a coordinate
// sentinel, so a finite point can never be mistaken for the identity.
// Points are immutable; arithmetic returns new points.
type Point struct {
	X *big.Int
	Y *big.Int

	inf bool
}

// NewPoint returns the affine point (x, y). The coordinates are copied.
func NewPoint(x, y *big.Int) Point {
	return Point{X: new(big.Int).Set(x), Y: new(big.Int).Set(y)}
}

// Infinity returns the point at infinity.
func Infinity() Point {
	return Point{inf: true}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.inf
}

// Equal reports whether p and q are the same group element.
func (p Point) Equal(q Point) bool {
	if p.inf || q.inf {
		return p.inf == q.inf
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// Add returns p + q under the short-Weierstrass group law.
func (c *Curve) Add(p, q Point) Point {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}

	xDiff := new(big.Int).Sub(q.X, p.X)
	xDiff.Mod(xDiff, c.P)
	if xDiff.Sign() == 0 {
		// Same x: either p == -q (sum of y coordinates vanishes mod P)
		// or p == q.
		ySum := new(big.Int).Add(p.Y, q.Y)
		ySum.Mod(ySum, c.P)
		if ySum.Sign() == 0 {
			return Infinity()
		}
		return c.Double(p)
	}

	// Chord slope λ = (y2 - y1) / (x2 - x1) mod P.
	num := new(big.Int).Sub(q.Y, p.Y)
	lambda := num.Mul(num, new(big.Int).ModInverse(xDiff, c.P))
	lambda.Mod(lambda, c.P)

	return c.completePoint(lambda, p, q)
}

// Double returns 2p.
func (c *Curve) Double(p Point) Point {
	if p.IsInfinity() || p.Y.Sign() == 0 {
		return Infinity()
	}

	// Tangent slope λ = (3x² + a) / 2y mod P.
	num := new(big.Int).Mul(p.X, p.X)
	num.Mul(num, big.NewInt(3))
	num.Add(num, c.A)
	den := new(big.Int).Lsh(p.Y, 1)
	lambda := num.Mul(num, new(big.Int).ModInverse(den, c.P))
	lambda.Mod(lambda, c.P)

	return c.completePoint(lambda, p, p)
}

// completePoint finishes an addition or doubling given the slope:
// x3 = λ² - x1 - x2, y3 = λ(x1 - x3) - y1, both mod P.
func (c *Curve) completePoint(lambda *big.Int, p, q Point) Point {
	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, p.X)
	x3.Sub(x3, q.X)
	x3.Mod(x3, c.P)

	y3 := new(big.Int).Sub(p.X, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, p.Y)
	y3.Mod(y3, c.P)

	return Point{X: x3, Y: y3}
}

// ScalarMult returns k·p by double-and-add. The scalar is reduced modulo N
// first; a scalar congruent to zero yields the point at infinity.
func (c *Curve) ScalarMult(p Point, k *big.Int) Point {
	k = new(big.Int).Mod(k, c.N)
	result := Infinity()
	addend := p
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			result = c.Add(result, addend)
		}
		addend = c.Double(addend)
	}
	return result
}

// ScalarBaseMult returns k·G.
func (c *Curve) ScalarBaseMult(k *big.Int) Point {
	return c.ScalarMult(c.G(), k)
}
