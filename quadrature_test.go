package baselbench

import (
	"math"
	"testing"
)

func TestRunCrossCheck_Identity(t *testing.T) {
	cc, err := RunCrossCheck()
	if err != nil {
		t.Fatalf("RunCrossCheck: %v", err)
	}

	AssertCrossCheckIdentity(t, cc, DefaultAssertionConfig())

	// The derived Basel sum is exact up to roundoff as well:
	// (2/π)·(π³/12) = π²/6 identically.
	if cc.BaselRelError > 1e-12 {
		t.Errorf("Basel sum via integral off: rel error %.3e\n"+
			"got %.15f, want π²/6 = %.15f", cc.BaselRelError, cc.BaselSum, BaselLimit)
	}
}

func TestRunCrossCheck_ClosedForm(t *testing.T) {
	cc, err := RunCrossCheck()
	if err != nil {
		t.Fatalf("RunCrossCheck: %v", err)
	}

	if cc.ClosedForm != PiCubedOver12 {
		t.Errorf("ClosedForm = %.17g, want π³/12 = %.17g", cc.ClosedForm, PiCubedOver12)
	}

	// Degree-2 integrand under Gauss-Legendre: exact to roundoff,
	// orders of magnitude inside the 1e-9 target.
	relErr := math.Abs(cc.Integral-PiCubedOver12) / PiCubedOver12
	t.Logf("✓ ∫₀^π ((π−x)/2)² dx = %.15f (rel error %.2e)", cc.Integral, relErr)
}

func TestRunCrossCheck_Deterministic(t *testing.T) {
	a, err := RunCrossCheck()
	if err != nil {
		t.Fatalf("RunCrossCheck: %v", err)
	}
	b, err := RunCrossCheck()
	if err != nil {
		t.Fatalf("RunCrossCheck: %v", err)
	}

	if a != b {
		t.Errorf("Non-deterministic cross-check:\n%+v\n%+v", a, b)
	}
}
