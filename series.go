package baselbench

import (
	"fmt"
	"math"
)

// BaselLimit is the closed-form value of the full series: Σ 1/n² = π²/6.
const BaselLimit = math.Pi * math.Pi / 6

// earlyStopFloor is the minimum number of terms consumed before the
// known-answer early stop may trigger. Below this the running sum is still
// far from the limit and a loose tolerance would truncate misleadingly early.
const earlyStopFloor = 1000

// Default parameters for the report sequence.
const (
	DefaultMaxTerms  = 100000
	DefaultTolerance = 1e-4
)

// SumResult contains a partial sum and the number of terms that produced it.
type SumResult struct {
	Sum   float64 // Σ 1/n² over the consumed terms
	Terms int     // Effective term count (≤ the requested N under early stop)
}

// kahanAccumulator performs compensated summation. The Basel terms span five
// orders of magnitude across a 10^5-term run; the compensation keeps the
// low-order bits of the small late terms from being dropped.
type kahanAccumulator struct {
	sum          float64
	compensation float64
}

func (k *kahanAccumulator) add(v float64) {
	y := v - k.compensation
	t := k.sum + y
	k.compensation = (t - k.sum) - y
	k.sum = t
}

// PartialSum accumulates Σ_{k=1}^{n} 1/k² in ascending k order.
//
// Ascending order fixes the floating-point rounding sequence, which keeps
// results bit-identical across runs and matches the reference values quoted
// in this package's docs. n ≤ 0 yields a zero sum over zero terms.
func PartialSum(n int) SumResult {
	if n <= 0 {
		return SumResult{}
	}

	var acc kahanAccumulator
	for k := 1; k <= n; k++ {
		term := 1.0 / (float64(k) * float64(k))
		acc.add(term)
	}

	return SumResult{Sum: acc.sum, Terms: n}
}

// PartialSumWithTolerance accumulates like PartialSum but stops early once
// the running sum is within tolerance of the closed-form limit π²/6, provided
// at least earlyStopFloor terms have been consumed.
//
// This is a known-answer stop, not a convergence test: it compares against
// the mathematical limit rather than a criterion intrinsic to the sum. It
// exists to bound the work when the caller only needs a given absolute
// accuracy on the sum. tolerance ≤ 0 disables the stop.
func PartialSumWithTolerance(n int, tolerance float64) SumResult {
	if n <= 0 {
		return SumResult{}
	}

	var acc kahanAccumulator
	for k := 1; k <= n; k++ {
		term := 1.0 / (float64(k) * float64(k))
		acc.add(term)

		if tolerance > 0 && k >= earlyStopFloor && math.Abs(BaselLimit-acc.sum) < tolerance {
			return SumResult{Sum: acc.sum, Terms: k}
		}
	}

	return SumResult{Sum: acc.sum, Terms: n}
}

// PiEstimate inverts the Basel identity: π ≈ sqrt(6·sum).
//
// Partial sums from this package are always nonnegative; the check guards
// callers feeding in their own values.
func PiEstimate(sum float64) (float64, error) {
	if sum < 0 {
		return 0, fmt.Errorf("partial sum must be nonnegative, got %g", sum)
	}

	return math.Sqrt(6 * sum), nil
}
