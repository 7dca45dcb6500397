package ecdsainline

import (
	"math/big"
	"testing"
)

func TestNewCurve_GeneratorOnCurve(t *testing.T) {
	curve := NewCurve()

	if !curve.IsOnCurve(curve.G()) {
		t.Fatal("generator is not on the curve")
	}
}

func TestNewCurve_MultiplesStayOnCurve(t *testing.T) {
	curve := NewCurve()

	for _, k := range []int64{2, 3, 7, 1000003} {
		p := curve.ScalarBaseMult(big.NewInt(k))
		if !curve.IsOnCurve(p) {
			t.Errorf("%d·G is not on the curve", k)
		}
	}
}

func TestCurve_IsOnCurve_RejectsOffCurvePoint(t *testing.T) {
	curve := NewCurve()

	bogus := NewPoint(big.NewInt(1), big.NewInt(1))
	if curve.IsOnCurve(bogus) {
		t.Error("(1, 1) reported on curve")
	}
}

func TestCurve_IsOnCurve_Infinity(t *testing.T) {
	curve := NewCurve()

	if !curve.IsOnCurve(Infinity()) {
		t.Error("point at infinity reported off curve")
	}
}

func TestNewCurve_FreshValuePerCall(t *testing.T) {
	a := NewCurve()
	b := NewCurve()

	if a == b {
		t.Fatal("NewCurve returned a shared instance")
	}
	if a.N.Cmp(b.N) != 0 || a.P.Cmp(b.P) != 0 {
		t.Fatal("NewCurve returned inconsistent parameters")
	}
}
