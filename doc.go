// Package baselbench approximates π through the Basel problem and verifies
// the approximation against an independent integral identity.
//
// # Overview
//
// The Basel problem gives a closed form for the sum of reciprocal squares:
//
//	Σ_{n=1}^{∞} 1/n² = π²/6
//
// Summing finitely many terms and inverting the identity yields a π
// approximation:
//
//	π ≈ sqrt(6 · Σ_{n=1}^{N} 1/n²)
//
// The series converges slowly (the tail after N terms is ~1/N), which makes
// it a good vehicle for studying convergence behavior: the package measures
// the approximation error at increasing term counts, the empirical
// convergence rate between them, and how the total mass of the series is
// distributed across frequency ranges.
//
// # Components
//
//   - series.go      - Partial sums with compensated accumulation and the
//     known-answer early stop
//   - quadrature.go  - Parseval-identity cross-check via Gauss-Legendre
//     quadrature
//   - convergence.go - Checkpoint errors, consecutive-error ratios, and
//     per-range contribution percentages
//   - report.go      - The fixed report sequence written to a terminal
//   - assertions.go  - Test helpers for the documented numeric properties
//
// # Quick Start
//
// Approximate π from the first 100000 terms:
//
//	res := baselbench.PartialSum(100000)
//	pi, err := baselbench.PiEstimate(res.Sum)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("π ≈ %.10f (error %.2e)\n", pi, math.Pi-pi)
//
// Cross-check through the Parseval identity:
//
//	cc := baselbench.RunCrossCheck()
//	fmt.Printf("∫₀^π ((π−x)/2)² dx = %.12f (closed form π³/12 = %.12f)\n",
//	    cc.Integral, cc.ClosedForm)
//	fmt.Printf("π recovered from the integral: %.12f\n", cc.Pi)
//
// # The Parseval Cross-Check
//
// For f(x) = (π−x)/2 on [0, π], the Fourier sine coefficients are b_n = 1/n,
// so Parseval's identity relates the integral of f² to the Basel sum:
//
//	∫₀^π f(x)² dx = (π/2) · Σ 1/n² = π³/12
//
// Integrating f² numerically and multiplying by 2/π therefore recovers the
// Basel sum (and from it π) by a path independent of the series summation.
// The integrand is a degree-2 polynomial, so Gauss-Legendre quadrature is
// exact up to roundoff, far inside the 1e-12 relative-error target.
//
// # Convergence Properties
//
// The tail of the series after N terms is asymptotically 1/N, which puts the
// π-estimate error at ~3/(πN). Consequences the package measures and tests:
//
//   - Error at N=10 is ≈ 0.09223; at N=100000 it is ≈ 9.55e-6.
//   - The ratio of consecutive checkpoint errors is ≈ N_prev/N_next
//     (≈ 0.1 between 10×-spaced checkpoints).
//   - The first 10 terms already carry ≈ 94.2% of the total π²/6 mass;
//     everything beyond n=10000 contributes ≈ 0.006%.
//
// # Testing
//
// Use the assertion helpers to validate series properties:
//
//	func TestMySum(t *testing.T) {
//	    points, err := baselbench.AnalyzeConvergence(baselbench.DefaultCheckpoints())
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    baselbench.AssertConvergenceRate(t, points, baselbench.DefaultAssertionConfig())
//	}
//
// # See Also
//
//   - cmd/baselbench - CLI that prints the full report
package baselbench
