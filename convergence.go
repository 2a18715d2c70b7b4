package baselbench

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Checkpoint records the series state at one term count.
type Checkpoint struct {
	Terms    int     // Term count N
	Estimate float64 // sqrt(6·S_N)
	AbsError float64 // |Estimate − π|
	Ratio    float64 // AbsError / previous checkpoint's AbsError (0 for the first)
}

// DefaultCheckpoints returns the reference term-count ladder.
func DefaultCheckpoints() []int {
	return []int{10, 100, 1000, 5000, 10000, 50000, 100000}
}

// AnalyzeConvergence recomputes the partial sum at each checkpoint (no early
// stopping), records the π estimate and its absolute error against the true
// π, and computes the ratio of consecutive errors as the empirical
// convergence rate.
//
// The Basel tail after N terms is ~1/N, so the error ratio between
// checkpoints approaches N_prev/N_next: a 10× term-count step buys one
// decimal digit of accuracy. Checkpoints must be positive and strictly
// ascending.
func AnalyzeConvergence(checkpoints []int) ([]Checkpoint, error) {
	if len(checkpoints) == 0 {
		return nil, fmt.Errorf("need at least 1 checkpoint, got 0")
	}

	points := make([]Checkpoint, 0, len(checkpoints))
	prevErr := 0.0

	for i, n := range checkpoints {
		if n <= 0 {
			return nil, fmt.Errorf("checkpoint %d: term count %d is not positive", i, n)
		}
		if i > 0 && n <= checkpoints[i-1] {
			return nil, fmt.Errorf("checkpoint %d: term count %d does not increase from %d",
				i, n, checkpoints[i-1])
		}

		res := PartialSum(n)
		estimate, err := PiEstimate(res.Sum)
		if err != nil {
			return nil, fmt.Errorf("checkpoint N=%d: %w", n, err)
		}

		point := Checkpoint{
			Terms:    n,
			Estimate: estimate,
			AbsError: math.Abs(estimate - math.Pi),
		}
		if i > 0 {
			point.Ratio = point.AbsError / prevErr
		}
		prevErr = point.AbsError

		points = append(points, point)
	}

	return points, nil
}

// ContributionRange holds one frequency range's share of the series mass.
type ContributionRange struct {
	Lo, Hi  int     // Inclusive term range [Lo, Hi]
	Sum     float64 // Σ 1/n² over the range
	Percent float64 // Share of the full π²/6 total
}

// DefaultRangeBoundaries returns the reference partition boundaries:
// [1,10], [11,100], [101,1000], [1001,10000].
func DefaultRangeBoundaries() []int {
	return []int{10, 100, 1000, 10000}
}

// AnalyzeContributions partitions n into disjoint ranges ending at the given
// boundaries, sums 1/n² within each range, and reports every range's share
// of the full π²/6 total as a percentage. The returned residual is the
// percentage carried by all terms beyond the last boundary, so the range
// percentages plus the residual account for 100%.
//
// Boundaries must be positive and strictly ascending.
func AnalyzeContributions(boundaries []int) ([]ContributionRange, float64, error) {
	if len(boundaries) == 0 {
		return nil, 0, fmt.Errorf("need at least 1 range boundary, got 0")
	}

	ranges := make([]ContributionRange, 0, len(boundaries))
	lo := 1

	for i, hi := range boundaries {
		if hi < lo {
			return nil, 0, fmt.Errorf("boundary %d: %d does not increase from %d", i, hi, lo-1)
		}

		var acc kahanAccumulator
		for n := lo; n <= hi; n++ {
			acc.add(1.0 / (float64(n) * float64(n)))
		}

		ranges = append(ranges, ContributionRange{
			Lo:      lo,
			Hi:      hi,
			Sum:     acc.sum,
			Percent: acc.sum / BaselLimit * 100,
		})
		lo = hi + 1
	}

	percents := make([]float64, len(ranges))
	for i, r := range ranges {
		percents[i] = r.Percent
	}
	residual := 100 - floats.Sum(percents)

	return ranges, residual, nil
}
