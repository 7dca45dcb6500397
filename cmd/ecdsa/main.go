package main

import (
	"errors"
	"fmt"
	"math/big"
	"os"

	"github.com/mahdiidarabi/ecdsa-inline/pkg/ecdsainline"
)

const usage = "Usage: ecdsa sign <message> <secret> | ecdsa verify <message>"

func main() {
	if len(os.Args) < 3 {
		fmt.Println(usage)
		os.Exit(1)
	}

	if os.Args[1] == "sign" {
		if len(os.Args) < 4 {
			fmt.Println(usage)
			os.Exit(1)
		}
		message := os.Args[2]
		d := secretScalar(os.Args[3])

		publicKey := ecdsainline.GenerateKey(d)
		signed, err := ecdsainline.Sign(message, d)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(ecdsainline.AppendPublic(signed, publicKey))
		return
	}

	ok, err := ecdsainline.Verify(os.Args[2])
	if errors.Is(err, ecdsainline.ErrNotSigned) {
		fmt.Println("Message not digitally signed")
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if ok {
		fmt.Println("True")
	} else {
		fmt.Println("False")
	}
}

// secretScalar reduces a secret passphrase to a private scalar by summing
// its bytes. Weak, but it is the historical scheme for this tool and keys
// derived with it are already in circulation.
func secretScalar(secret string) *big.Int {
	d := new(big.Int)
	for _, b := range []byte(secret) {
		d.Add(d, big.NewInt(int64(b)))
	}
	return d
}
