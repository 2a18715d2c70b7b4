// Command baselbench prints the Basel-series π approximation report:
// the early-stopped partial sum, the Parseval integral cross-check, the
// checkpoint convergence table, and the per-range contribution breakdown.
package main

import (
	"log/slog"
	"os"

	"github.com/alexshd/baselbench"
	"github.com/lmittmann/tint"
)

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))
}

func main() {
	slog.Info("approximating π from the Basel series",
		"max_terms", baselbench.DefaultMaxTerms,
		"tolerance", baselbench.DefaultTolerance)

	if err := baselbench.WriteReport(os.Stdout); err != nil {
		slog.Error("report failed", "err", err)
		os.Exit(1)
	}

	slog.Info("report complete")
}
