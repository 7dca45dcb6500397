package ecdsainline

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Signature block delimiters. These are part of the wire format and must
// match byte for byte.
const (
	sigBegin = "\n--BEGIN SIGNATURE--\n"
	sigEnd   = "\n--END SIGNATURE--\n"
)

// ErrNotSigned is returned by Verify when the input carries no signature
// block at all. It is deliberately distinct from a failed verification:
// "this text was never signed" is not the same answer as "this signature
// is invalid".
var ErrNotSigned = errors.New("message not digitally signed")

// envelope is the parsed form of an inline-signed message: the original
// message text, the signature integers, and the embedded public key.
type envelope struct {
	Message string
	R       *big.Int
	S       *big.Int
	Public  Point
}

// parseEnvelope splits signed text on the three wire-format delimiters and
// parses the numeric fields. It returns ErrNotSigned when the end delimiter
// is absent, and a descriptive error for any structurally present but
// malformed field; it never guesses or substitutes defaults.
func parseEnvelope(signed string) (*envelope, error) {
	head, keyText, found := strings.Cut(signed, sigEnd)
	if !found {
		return nil, ErrNotSigned
	}

	public, err := parsePublicKey(keyText)
	if err != nil {
		return nil, err
	}

	message, sigText, found := strings.Cut(head, sigBegin)
	if !found {
		return nil, fmt.Errorf("signature block has no begin delimiter")
	}

	lines := strings.Split(sigText, "\n")
	if len(lines) != 2 {
		return nil, fmt.Errorf("signature block must hold exactly two values, got %d", len(lines))
	}

	r, err := parseHexInt(lines[0])
	if err != nil {
		return nil, fmt.Errorf("failed to parse r: %w", err)
	}
	s, err := parseHexInt(lines[1])
	if err != nil {
		return nil, fmt.Errorf("failed to parse s: %w", err)
	}

	return &envelope{Message: message, R: r, S: s, Public: public}, nil
}

// parsePublicKey parses "<x>,<y>" with decimal coordinates.
func parsePublicKey(text string) (Point, error) {
	xText, yText, found := strings.Cut(text, ",")
	if !found {
		return Point{}, fmt.Errorf("public key %q is not of the form x,y", text)
	}
	x, ok := new(big.Int).SetString(xText, 10)
	if !ok {
		return Point{}, fmt.Errorf("invalid public key x coordinate %q", xText)
	}
	y, ok := new(big.Int).SetString(yText, 10)
	if !ok {
		return Point{}, fmt.Errorf("invalid public key y coordinate %q", yText)
	}
	return Point{X: x, Y: y}, nil
}

// parseHexInt parses a 0x-prefixed lowercase hex integer as written by Sign.
func parseHexInt(text string) (*big.Int, error) {
	digits := strings.TrimPrefix(text, "0x")
	if digits == text {
		return nil, fmt.Errorf("%q is missing the 0x prefix", text)
	}
	v, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return nil, fmt.Errorf("%q is not a hex integer", text)
	}
	return v, nil
}
