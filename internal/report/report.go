// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package report prints sweep results as plain-text tables.
package report

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	speedup "github.com/petenewcomb/speedup-go"
	"golang.org/x/perf/benchunit"
)

// Write prints every successful sweep of batch followed by the errors of the
// failed ones.
func Write(w io.Writer, batch *speedup.Batch) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for _, r := range batch.SizeSweeps {
		if r.Err != nil {
			continue
		}
		fmt.Fprintf(tw, "%v speedup by size\n", r.Algorithm)
		fmt.Fprintf(tw, "curve\tsize\tspeedup\n")
		for _, c := range r.Curves.Curves {
			for _, p := range c.Points {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Label, benchunit.Scale(float64(p.X), benchunit.Decimal), FormatPoint(p))
			}
		}
		fmt.Fprintln(tw)
	}

	for _, r := range batch.ThreadSweeps {
		if r.Err != nil {
			continue
		}
		fmt.Fprintf(tw, "%v speedup by threads at size %s\n", r.Algorithm, benchunit.Scale(float64(r.Size), benchunit.Decimal))
		fmt.Fprintf(tw, "threads\tspeedup\n")
		for _, p := range r.Curve.Points {
			fmt.Fprintf(tw, "%d\t%s\n", p.X, FormatPoint(p))
		}
		fmt.Fprintln(tw)
	}

	if errs := batch.Errors(); len(errs) > 0 {
		fmt.Fprintf(tw, "%d sweeps failed\n", len(errs))
		for _, err := range errs {
			fmt.Fprintf(tw, "  %v\n", err)
		}
	}
	return tw.Flush()
}

// FormatPoint renders a speedup with its error band relative to the ratio,
// for example "4.00x +17% -25%".
func FormatPoint(p speedup.Point) string {
	center := fmt.Sprintf("%.2fx", p.Ratio)
	plus := formatRatio(p.ErrHigh, p.Ratio)
	minus := formatRatio(p.ErrLow, p.Ratio)
	switch plus {
	case minus:
		return fmt.Sprintf("%s +/-%s", center, plus)
	default:
		return fmt.Sprintf("%s +%s -%s", center, plus, minus)
	}
}

func formatRatio(n, d float64) string {
	switch {
	case d == 0:
		if n == 0 {
			return "0%"
		}
		return fmt.Sprintf("%.2g", n)
	case math.Abs(n/d) < 1:
		return fmt.Sprintf("%.2g%%", math.Round(100*n/d))
	default:
		return fmt.Sprintf("%.2gx", n/d)
	}
}
