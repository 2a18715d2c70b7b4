package baselbench

import (
	"bufio"
	"fmt"
	"io"
	"math"
)

// Report holds everything the fixed reporting sequence computes.
type Report struct {
	Truncated SumResult // Early-stopped partial sum
	Estimate  float64   // π from the truncated sum
	Cross     CrossCheck
	Points    []Checkpoint
	Ranges    []ContributionRange
	Residual  float64 // Percentage carried by terms beyond the last range
}

// BuildReport runs the fixed sequence with the default parameters:
// an early-stopped sum over at most DefaultMaxTerms terms, the Parseval
// cross-check, the checkpoint convergence table, and the frequency-range
// contribution table.
func BuildReport() (Report, error) {
	truncated := PartialSumWithTolerance(DefaultMaxTerms, DefaultTolerance)

	estimate, err := PiEstimate(truncated.Sum)
	if err != nil {
		return Report{}, err
	}

	cross, err := RunCrossCheck()
	if err != nil {
		return Report{}, err
	}

	points, err := AnalyzeConvergence(DefaultCheckpoints())
	if err != nil {
		return Report{}, err
	}

	ranges, residual, err := AnalyzeContributions(DefaultRangeBoundaries())
	if err != nil {
		return Report{}, err
	}

	return Report{
		Truncated: truncated,
		Estimate:  estimate,
		Cross:     cross,
		Points:    points,
		Ranges:    ranges,
		Residual:  residual,
	}, nil
}

// Render writes the report as formatted text.
func (r Report) Render(out io.Writer) error {
	w := bufio.NewWriter(out)

	fmt.Fprintf(w, "=== Basel Series π Approximation ===\n")
	fmt.Fprintf(w, "Partial sum:  %.12f (%d terms, tolerance %.1e)\n",
		r.Truncated.Sum, r.Truncated.Terms, DefaultTolerance)
	fmt.Fprintf(w, "π estimate:   %.12f\n", r.Estimate)
	fmt.Fprintf(w, "Abs error:    %.6e (%.6f%%)\n",
		math.Abs(r.Estimate-math.Pi), math.Abs(r.Estimate-math.Pi)/math.Pi*100)

	fmt.Fprintf(w, "\n=== Parseval Integral Cross-Check ===\n")
	fmt.Fprintf(w, "∫₀^π ((π−x)/2)² dx = %.15f\n", r.Cross.Integral)
	fmt.Fprintf(w, "Closed form π³/12  = %.15f\n", r.Cross.ClosedForm)
	fmt.Fprintf(w, "Rel error          = %.6e%%\n", r.Cross.IntegralRelError*100)
	fmt.Fprintf(w, "Basel sum via integral: %.15f (rel error %.6e%%)\n",
		r.Cross.BaselSum, r.Cross.BaselRelError*100)
	fmt.Fprintf(w, "π via integral:         %.15f (rel error %.6e%%)\n",
		r.Cross.Pi, r.Cross.PiRelError*100)

	fmt.Fprintf(w, "\n=== Convergence ===\n")
	fmt.Fprintf(w, "  N        π estimate      Abs error     Ratio\n")
	fmt.Fprintf(w, "  ------   -------------   -----------   -----\n")
	for i, p := range r.Points {
		ratio := "    -"
		if i > 0 {
			ratio = fmt.Sprintf("%.3f", p.Ratio)
		}
		fmt.Fprintf(w, "  %-8d %.11f   %.5e   %s\n", p.Terms, p.Estimate, p.AbsError, ratio)
	}

	fmt.Fprintf(w, "\n=== Contribution by Frequency Range ===\n")
	for _, cr := range r.Ranges {
		fmt.Fprintf(w, "  n ∈ [%d, %d]:  %.9f  (%9.5f%%)\n", cr.Lo, cr.Hi, cr.Sum, cr.Percent)
	}
	if len(r.Ranges) > 0 {
		last := r.Ranges[len(r.Ranges)-1]
		fmt.Fprintf(w, "  n > %d (residual):       (%9.5f%%)\n", last.Hi, r.Residual)
	}

	return w.Flush()
}

// WriteReport builds the default report and renders it to out.
func WriteReport(out io.Writer) error {
	report, err := BuildReport()
	if err != nil {
		return err
	}

	return report.Render(out)
}
