package baselbench

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestBuildReport(t *testing.T) {
	report, err := BuildReport()
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}

	if report.Truncated.Terms <= 0 || report.Truncated.Terms > DefaultMaxTerms {
		t.Errorf("Truncated term count out of range: %d", report.Truncated.Terms)
	}
	if math.Abs(report.Estimate-math.Pi) > 1e-3 {
		t.Errorf("Truncated π estimate too far off: %.10f", report.Estimate)
	}
	if len(report.Points) != len(DefaultCheckpoints()) {
		t.Errorf("Expected %d checkpoints, got %d", len(DefaultCheckpoints()), len(report.Points))
	}
	if len(report.Ranges) != len(DefaultRangeBoundaries()) {
		t.Errorf("Expected %d ranges, got %d", len(DefaultRangeBoundaries()), len(report.Ranges))
	}

	AssertContributionClosure(t, report.Ranges, report.Residual, DefaultAssertionConfig())
	AssertCrossCheckIdentity(t, report.Cross, DefaultAssertionConfig())
}

func TestReport_Render(t *testing.T) {
	report, err := BuildReport()
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}

	var buf bytes.Buffer
	if err := report.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := buf.String()
	for _, section := range []string{
		"Basel Series π Approximation",
		"Parseval Integral Cross-Check",
		"Convergence",
		"Contribution by Frequency Range",
	} {
		if !strings.Contains(out, section) {
			t.Errorf("Report missing section %q", section)
		}
	}

	if !strings.Contains(out, "residual") {
		t.Error("Report missing the residual contribution line")
	}
}

func TestWriteReport_Deterministic(t *testing.T) {
	var a, b bytes.Buffer

	if err := WriteReport(&a); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	if err := WriteReport(&b); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("Two identical report runs produced different output")
	}
}
