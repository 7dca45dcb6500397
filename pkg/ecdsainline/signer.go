package ecdsainline

import (
	"fmt"
	"math/big"
)

// Signature is an ECDSA signature: two integers in [1, n-1].
type Signature struct {
	R *big.Int // r component of the signature
	S *big.Int // s component of the signature
}

// Signer signs messages and verifies inline-signed text. The zero-cost
// default is fine for most uses; WithNonceSource exists so tests can pin
// the per-signature scalar. Curve parameters are constructed fresh inside
// every operation, so a Signer holds no shared mutable state and may be
// used from multiple goroutines.
type Signer struct {
	nonce NonceSource
}

// NewSigner creates a signer with the default crypto/rand nonce source.
func NewSigner() *Signer {
	return &Signer{nonce: cryptoRandSource{}}
}

// WithNonceSource sets a custom nonce source.
func (s *Signer) WithNonceSource(source NonceSource) *Signer {
	s.nonce = source
	return s
}

// GenerateKey derives the public key d·G for the private scalar d.
func (s *Signer) GenerateKey(d *big.Int) Point {
	curve := NewCurve()
	return curve.ScalarBaseMult(d)
}

// Sign signs message with the private key and returns the message with the
// signature block appended:
//
//	<message>\n--BEGIN SIGNATURE--\n<hex r>\n<hex s>\n--END SIGNATURE--\n
//
// Signing is randomized: two calls on the same inputs produce different
// signatures, and both verify. The degenerate r == 0 or s == 0 draws are
// retried with a fresh nonce and never surface to the caller.
func (s *Signer) Sign(message string, privateKey *big.Int) (string, error) {
	curve := NewCurve()
	nMinusOne := new(big.Int).Sub(curve.N, big.NewInt(1))
	e := digestInt(message)

	r := new(big.Int)
	sv := new(big.Int)
	for r.Sign() == 0 || sv.Sign() == 0 {
		k, err := s.nonce.Nonce(nMinusOne)
		if err != nil {
			return "", err
		}

		R := curve.ScalarBaseMult(k)
		r.Mod(R.X, curve.N)

		kInv, err := inverseMod(k, curve.N)
		if err != nil {
			return "", fmt.Errorf("failed to invert nonce: %w", err)
		}

		// s = k⁻¹(e + d·r) mod n
		sv.Mul(privateKey, r)
		sv.Add(sv, e)
		sv.Mul(sv, kInv)
		sv.Mod(sv, curve.N)
	}

	return message + sigBegin + fmt.Sprintf("%#x", r) + "\n" + fmt.Sprintf("%#x", sv) + sigEnd, nil
}

// AppendPublic appends the signer's public key to an already signed message
// as "<x>,<y>" in decimal. It must be called after Sign; Verify relies on
// the end-of-signature delimiter to separate the key from the rest.
func (s *Signer) AppendPublic(message string, publicKey Point) string {
	return message + publicKey.X.String() + "," + publicKey.Y.String()
}

// GenerateKey derives the public key d·G using the default signer.
func GenerateKey(d *big.Int) Point {
	return NewSigner().GenerateKey(d)
}

// Sign signs message with the default signer. See Signer.Sign.
func Sign(message string, privateKey *big.Int) (string, error) {
	return NewSigner().Sign(message, privateKey)
}

// AppendPublic appends the public key to a signed message. See
// Signer.AppendPublic.
func AppendPublic(message string, publicKey Point) string {
	return NewSigner().AppendPublic(message, publicKey)
}
