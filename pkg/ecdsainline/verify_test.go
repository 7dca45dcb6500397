package ecdsainline

import (
	"errors"
	"math/big"
	"strings"
	"testing"
)

// signFull signs message with d and appends the matching public key.
func signFull(t *testing.T, message string, d *big.Int) string {
	t.Helper()
	signed, err := Sign(message, d)
	if err != nil {
		t.Fatalf("Failed to sign: %v", err)
	}
	return AppendPublic(signed, GenerateKey(d))
}

func TestVerify_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		message string
		d       *big.Int
	}{
		{"simple", "hello", big.NewInt(7)},
		{"empty message", "", big.NewInt(42)},
		{"multiline message", "line one\nline two\n", big.NewInt(99991)},
		{"large key", "payload", mustBig("0xdeadbeefcafef00d1234567890abcdef")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			full := signFull(t, tt.message, tt.d)

			ok, err := Verify(full)
			if err != nil {
				t.Fatalf("Failed to verify: %v", err)
			}
			if !ok {
				t.Error("freshly signed message does not verify")
			}
		})
	}
}

func TestVerify_TamperDetection(t *testing.T) {
	full := signFull(t, "hello", big.NewInt(7))

	tampered := strings.Replace(full, "hello", "hellp", 1)
	ok, err := Verify(tampered)
	if err != nil {
		t.Fatalf("Failed to verify: %v", err)
	}
	if ok {
		t.Error("tampered message verifies")
	}
}

func TestVerify_WrongKeyRejected(t *testing.T) {
	signed, err := Sign("hello", big.NewInt(7))
	if err != nil {
		t.Fatalf("Failed to sign: %v", err)
	}

	// Embed a public key for a different private key.
	full := AppendPublic(signed, GenerateKey(big.NewInt(8)))
	ok, err := Verify(full)
	if err != nil {
		t.Fatalf("Failed to verify: %v", err)
	}
	if ok {
		t.Error("signature verifies under the wrong public key")
	}
}

func TestVerify_RangeRejection(t *testing.T) {
	ka := knownAnswers[0]
	n := NewCurve().N

	build := func(r, s string) string {
		return ka.message +
			"\n--BEGIN SIGNATURE--\n" +
			r + "\n" + s +
			"\n--END SIGNATURE--\n" +
			ka.pubX + "," + ka.pubY
	}

	nHex := "0x" + n.Text(16)
	aboveN := "0x" + new(big.Int).Add(n, big.NewInt(5)).Text(16)

	tests := []struct {
		name string
		r, s string
	}{
		{"zero r", "0x0", ka.s},
		{"zero s", ka.r, "0x0"},
		{"r equal to n", nHex, ka.s},
		{"s equal to n", ka.r, nHex},
		{"r above n", aboveN, ka.s},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := Verify(build(tt.r, tt.s))
			if err != nil {
				t.Fatalf("Failed to verify: %v", err)
			}
			if ok {
				t.Error("out-of-range signature accepted")
			}
		})
	}
}

func TestVerify_SignedWithoutPublicKey(t *testing.T) {
	signed, err := Sign("hello", big.NewInt(7))
	if err != nil {
		t.Fatalf("Failed to sign: %v", err)
	}

	// Signature block present but no public key appended: a parse failure,
	// not a clean false and not "not signed".
	_, err = Verify(signed)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if errors.Is(err, ErrNotSigned) {
		t.Fatalf("missing public key reported as unsigned: %v", err)
	}
}

func TestVerify_SwappedSignatureComponents(t *testing.T) {
	ka := knownAnswers[0]
	full := ka.message +
		"\n--BEGIN SIGNATURE--\n" +
		ka.s + "\n" + ka.r + // swapped
		"\n--END SIGNATURE--\n" +
		ka.pubX + "," + ka.pubY

	ok, err := Verify(full)
	if err != nil {
		t.Fatalf("Failed to verify: %v", err)
	}
	if ok {
		t.Error("swapped r and s verify")
	}
}

// TestVerify_ConcreteScenario pins the documented end-to-end example:
// d = 7, message "hello", flipped to "hellp" after signing.
func TestVerify_ConcreteScenario(t *testing.T) {
	d := big.NewInt(7)
	publicKey := GenerateKey(d)

	signed, err := Sign("hello", d)
	if err != nil {
		t.Fatalf("Failed to sign: %v", err)
	}
	full := AppendPublic(signed, publicKey)

	ok, err := Verify(full)
	if err != nil {
		t.Fatalf("Failed to verify: %v", err)
	}
	if !ok {
		t.Fatal("verify(full) != true")
	}

	ok, err = Verify(strings.Replace(full, "hello", "hellp", 1))
	if err != nil {
		t.Fatalf("Failed to verify: %v", err)
	}
	if ok {
		t.Fatal("verify(tampered) != false")
	}
}

func TestVerify_Concurrent(t *testing.T) {
	full := signFull(t, "hello", big.NewInt(7))

	done := make(chan bool, 8)
	for i := 0; i < 8; i++ {
		go func() {
			ok, err := Verify(full)
			done <- ok && err == nil
		}()
	}
	for i := 0; i < 8; i++ {
		if !<-done {
			t.Fatal("concurrent verification failed")
		}
	}
}
