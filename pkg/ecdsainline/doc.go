// Package ecdsainline signs text messages with ECDSA over secp256k1 and
// embeds the signature (and the signer's public key) inline in the message
// text, so that a single string carries the message, the signature, and
// everything needed to verify it.
//
// # Quick Start
//
//	import "github.com/mahdiidarabi/ecdsa-inline/pkg/ecdsainline"
//
//	d := big.NewInt(7)
//	publicKey := ecdsainline.GenerateKey(d)
//
//	signed, err := ecdsainline.Sign("hello", d)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	full := ecdsainline.AppendPublic(signed, publicKey)
//
//	ok, err := ecdsainline.Verify(full)
//	if errors.Is(err, ecdsainline.ErrNotSigned) {
//	    fmt.Println("no signature found")
//	}
//
// # Wire format
//
// A fully signed message has the shape
//
//	<message>
//	--BEGIN SIGNATURE--
//	0x<hex r>
//	0x<hex s>
//	--END SIGNATURE--
//	<decimal x>,<decimal y>
//
// The signature integers are lowercase 0x-prefixed hex; the public key
// coordinates are plain base-10 with no padding. The format is fixed: any
// producer or consumer must reproduce it byte for byte.
//
// # Customization
//
// Signing draws its per-signature nonce from a NonceSource. The default
// uses crypto/rand; tests can inject a fixed source to make signatures
// deterministic:
//
//	signer := ecdsainline.NewSigner().WithNonceSource(mySource)
//	signed, err := signer.Sign("hello", d)
//
// # Caveats
//
// The message digest is reduced to an integer by summing the bytes of its
// SHA3-256 hash. This is far weaker than standard ECDSA digest handling
// (any permutation of message bytes that preserves the hash's byte multiset
// collides) and is kept only for byte-exact compatibility with the existing
// signed-message format. Do not rely on this package where real forgery
// resistance is required.
package ecdsainline
