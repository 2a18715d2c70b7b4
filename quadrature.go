package baselbench

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// PiCubedOver12 is the closed form of the cross-check integral:
//
//	∫₀^π ((π−x)/2)² dx = π³/12
const PiCubedOver12 = math.Pi * math.Pi * math.Pi / 12

// quadratureNodes is the Gauss-Legendre node count for the cross-check.
// The rule is exact for polynomials of degree ≤ 2n−1 and the integrand has
// degree 2, so any n ≥ 2 integrates it to roundoff. 16 leaves headroom for
// experimenting with other integrands.
const quadratureNodes = 16

// CrossCheck contains the Parseval-identity verification results.
//
// f(x) = (π−x)/2 has Fourier sine coefficients 1/n on [0, π], so
//
//	∫₀^π f(x)² dx = (π/2)·Σ 1/n²
//
// which ties the integral to the Basel sum. Recovering the sum as
// (2/π)·integral and pushing it through PiEstimate yields π by a path
// entirely independent of the term-by-term summation.
type CrossCheck struct {
	Integral         float64 // Numerical value of ∫₀^π ((π−x)/2)² dx
	ClosedForm       float64 // π³/12
	IntegralRelError float64 // |Integral − ClosedForm| / ClosedForm

	BaselSum      float64 // (2/π)·Integral, independent estimate of π²/6
	BaselRelError float64 // |BaselSum − π²/6| / (π²/6)

	Pi         float64 // sqrt(6·BaselSum)
	PiRelError float64 // |Pi − π| / π
}

// RunCrossCheck integrates the Parseval integrand and derives the Basel sum
// and a π estimate from it. The true π is the ground truth on both sides:
// it defines the integrand and the closed forms being compared against.
func RunCrossCheck() (CrossCheck, error) {
	integrand := func(x float64) float64 {
		f := (math.Pi - x) / 2
		return f * f
	}

	integral := quad.Fixed(integrand, 0, math.Pi, quadratureNodes, nil, 0)
	baselSum := 2 / math.Pi * integral

	pi, err := PiEstimate(baselSum)
	if err != nil {
		return CrossCheck{}, err
	}

	return CrossCheck{
		Integral:         integral,
		ClosedForm:       PiCubedOver12,
		IntegralRelError: math.Abs(integral-PiCubedOver12) / PiCubedOver12,
		BaselSum:         baselSum,
		BaselRelError:    math.Abs(baselSum-BaselLimit) / BaselLimit,
		Pi:               pi,
		PiRelError:       math.Abs(pi-math.Pi) / math.Pi,
	}, nil
}
