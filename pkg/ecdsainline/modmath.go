package ecdsainline

import (
	"fmt"
	"math/big"
)

// inverseMod returns the multiplicative inverse of a modulo m, in [0, m-1].
// It fails when a and m are not coprime.
func inverseMod(a, m *big.Int) (*big.Int, error) {
	inv := new(big.Int).ModInverse(a, m)
	if inv == nil {
		return nil, fmt.Errorf("no inverse of %s modulo %s", a, m)
	}
	return inv, nil
}
