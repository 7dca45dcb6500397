package ecdsainline

import (
	"fmt"
	"math/big"
)

// fixedNonceSource replays a predetermined list of nonces, in order. Used
// by tests to make signatures deterministic; never use it for real signing.
type fixedNonceSource struct {
	nonces []*big.Int
	next   int
}

func newFixedNonceSource(nonces ...*big.Int) *fixedNonceSource {
	return &fixedNonceSource{nonces: nonces}
}

func (f *fixedNonceSource) Nonce(max *big.Int) (*big.Int, error) {
	if f.next >= len(f.nonces) {
		return nil, fmt.Errorf("fixed nonce source exhausted after %d nonces", len(f.nonces))
	}
	k := f.nonces[f.next]
	f.next++
	return new(big.Int).Set(k), nil
}

// mustBig parses a base-10 or 0x-prefixed base-16 integer literal, panicking
// on malformed input. For hardcoded test vectors only.
func mustBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic(fmt.Sprintf("bad integer literal %q", s))
	}
	return v
}
