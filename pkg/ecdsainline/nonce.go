package ecdsainline

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// NonceSource supplies the per-signature secret scalar k. Implementations
// must return a value uniformly distributed in [1, max] and must be safe
// for concurrent use. The nonce must stay secret and must never repeat for
// two signatures under the same private key; a leaked or reused nonce
// reveals the key.
type NonceSource interface {
	// Nonce returns a random integer in [1, max].
	Nonce(max *big.Int) (*big.Int, error)
}

// cryptoRandSource draws nonces from crypto/rand.
type cryptoRandSource struct{}

func (cryptoRandSource) Nonce(max *big.Int) (*big.Int, error) {
	// rand.Int is uniform in [0, max-1]; shift to [1, max].
	k, err := rand.Int(rand.Reader, max)
	if err != nil {
		return nil, fmt.Errorf("failed to draw nonce: %w", err)
	}
	return k.Add(k, big.NewInt(1)), nil
}
