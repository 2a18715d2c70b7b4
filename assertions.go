package baselbench

import (
	"fmt"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// AssertionConfig contains tolerances for the series properties.
type AssertionConfig struct {
	// Absolute tolerance on the reference error values (N=10 and N=100000)
	ReferenceTolerance float64

	// Relative tolerance on consecutive-error ratios vs N_prev/N_next
	RatioTolerance float64

	// Absolute tolerance on the contribution percentages summing to 100
	PercentTolerance float64

	// Relative tolerance on the integral vs its closed form
	IntegralTolerance float64

	// Relative tolerance on π recovered through the integral path
	PiIdentityTolerance float64
}

// DefaultAssertionConfig returns the documented tolerances.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		ReferenceTolerance:  1e-4,
		RatioTolerance:      0.05, // Asymptotic 1/N rate, a few % off at small N
		PercentTolerance:    1e-6,
		IntegralTolerance:   1e-9,
		PiIdentityTolerance: 1e-12,
	}
}

// AssertMonotoneBelowLimit verifies partial sums grow monotonically with N
// while staying strictly below π²/6.
//
// Mathematical property: every term 1/n² is positive, so
//
//	S_N < S_{N+1} < π²/6 for all N
func AssertMonotoneBelowLimit(t *testing.T, counts []int) {
	t.Helper()

	prev := 0.0
	for _, n := range counts {
		res := PartialSum(n)

		if res.Sum < prev {
			t.Errorf("Partial sum decreased: S(%d) = %.15f < %.15f", n, res.Sum, prev)
		}
		if res.Sum >= BaselLimit {
			t.Errorf("Partial sum reached the limit: S(%d) = %.15f ≥ π²/6 = %.15f\n"+
				"The truncated series must stay strictly below its closed form.",
				n, res.Sum, BaselLimit)
		}
		prev = res.Sum
	}

	t.Logf("✓ Monotone below limit: %d counts, final S = %.12f < π²/6 = %.12f",
		len(counts), prev, BaselLimit)
}

// AssertConvergenceRate verifies consecutive-error ratios track N_prev/N_next.
//
// The tail after N terms is asymptotically 1/N, so the π-estimate error is
// ~3/(πN) and the ratio between checkpoints approaches the inverse of the
// term-count step:
//
//	error[i]/error[i-1] ≈ N[i-1]/N[i]
func AssertConvergenceRate(t *testing.T, points []Checkpoint, cfg AssertionConfig) {
	t.Helper()

	if len(points) < 2 {
		t.Fatalf("Need at least 2 checkpoints to measure a rate, got %d", len(points))
	}

	var failures []string
	for i := 1; i < len(points); i++ {
		expected := float64(points[i-1].Terms) / float64(points[i].Terms)

		if !scalar.EqualWithinRel(points[i].Ratio, expected, cfg.RatioTolerance) {
			failures = append(failures, fmt.Sprintf(
				"  N=%d→%d: ratio=%.4f (expected ≈ %.4f)",
				points[i-1].Terms, points[i].Terms, points[i].Ratio, expected))
		}
	}

	if len(failures) > 0 {
		t.Errorf("Convergence rate off the ~1/N law:\n%s", failures)
		return
	}

	t.Logf("✓ Convergence rate ~1/N: %d ratios within %.0f%% of N_prev/N_next",
		len(points)-1, cfg.RatioTolerance*100)
}

// AssertContributionClosure verifies the range percentages plus the residual
// account for the whole series.
func AssertContributionClosure(t *testing.T, ranges []ContributionRange, residual float64, cfg AssertionConfig) {
	t.Helper()

	total := residual
	for _, r := range ranges {
		total += r.Percent
	}

	if !scalar.EqualWithinAbs(total, 100, cfg.PercentTolerance) {
		t.Errorf("Contribution percentages do not close: total = %.9f%% (want 100%% ± %.0e)",
			total, cfg.PercentTolerance)
		return
	}

	t.Logf("✓ Contribution closure: %d ranges + residual %.5f%% total %.9f%%",
		len(ranges), residual, total)
}

// AssertCrossCheckIdentity verifies the Parseval path reproduces both the
// closed-form integral and π itself.
func AssertCrossCheckIdentity(t *testing.T, cc CrossCheck, cfg AssertionConfig) {
	t.Helper()

	if cc.IntegralRelError > cfg.IntegralTolerance {
		t.Errorf("Integral off closed form: rel error %.3e (max %.0e)\n"+
			"∫ = %.15f, π³/12 = %.15f",
			cc.IntegralRelError, cfg.IntegralTolerance, cc.Integral, cc.ClosedForm)
	}

	if cc.PiRelError > cfg.PiIdentityTolerance {
		t.Errorf("π identity broken on the integral path: rel error %.3e (max %.0e)\n"+
			"recovered π = %.15f",
			cc.PiRelError, cfg.PiIdentityTolerance, cc.Pi)
	}

	t.Logf("✓ Parseval cross-check: integral rel error %.2e, π rel error %.2e",
		cc.IntegralRelError, cc.PiRelError)
}
