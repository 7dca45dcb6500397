package ecdsainline

import (
	"fmt"
	"math/big"
)

// Verify checks an inline-signed message against the public key embedded in
// it. It returns (true, nil) when the signature is valid, (false, nil) when
// it is not (out-of-range r or s, point-at-infinity result, or a digest
// mismatch), ErrNotSigned when the text has no signature block, and a parse
// error when the block is present but malformed.
func (s *Signer) Verify(signed string) (bool, error) {
	env, err := parseEnvelope(signed)
	if err != nil {
		return false, err
	}

	curve := NewCurve()
	if !inScalarRange(env.R, curve.N) || !inScalarRange(env.S, curve.N) {
		return false, nil
	}

	e := digestInt(env.Message)

	w, err := inverseMod(env.S, curve.N)
	if err != nil {
		return false, fmt.Errorf("failed to invert s: %w", err)
	}

	// u1 = e·w, u2 = r·w, X = u1·G + u2·Q; accept iff X.x ≡ r (mod n).
	u1 := new(big.Int).Mod(e, curve.N)
	u1.Mul(u1, w)
	u1.Mod(u1, curve.N)

	u2 := new(big.Int).Mod(env.R, curve.N)
	u2.Mul(u2, w)
	u2.Mod(u2, curve.N)

	X := curve.Add(curve.ScalarBaseMult(u1), curve.ScalarMult(env.Public, u2))
	if X.IsInfinity() {
		return false, nil
	}

	v := new(big.Int).Mod(X.X, curve.N)
	return v.Cmp(env.R) == 0, nil
}

// Verify checks an inline-signed message using the default signer. See
// Signer.Verify.
func Verify(signed string) (bool, error) {
	return NewSigner().Verify(signed)
}

// inScalarRange reports whether v lies in [1, n-1].
func inScalarRange(v, n *big.Int) bool {
	return v.Sign() > 0 && v.Cmp(n) < 0
}
