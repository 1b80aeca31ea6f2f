// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package report_test

import (
	"context"
	"strings"
	"testing"

	speedup "github.com/petenewcomb/speedup-go"
	"github.com/petenewcomb/speedup-go/internal/report"
	"github.com/stretchr/testify/require"
)

func testBatch(t *testing.T) *speedup.Batch {
	ds, err := speedup.NewDataset([]speedup.Record{
		{Algorithm: speedup.Serial, Threads: 1, Size: 1000, Mean: 10, Min: 10, Max: 10},
		{Algorithm: speedup.TreeStructured, Threads: 2, Size: 1000, Mean: 5, Min: 5, Max: 5},
		{Algorithm: speedup.TreeStructured, Threads: 4, Size: 1000, Mean: 2.5, Min: 2, Max: 3},
		{Algorithm: speedup.Global, Threads: 2, Size: 1000, Mean: 10, Min: 10, Max: 10},
		{Algorithm: speedup.Global, Threads: 4, Size: 1000, Mean: 5, Min: 5, Max: 5},
		{Algorithm: speedup.Global, Threads: 4, Size: 2000, Mean: 5, Min: 5, Max: 5},
	})
	require.NoError(t, err)
	return speedup.Project(context.Background(), ds, speedup.Options{})
}

func TestFormatPoint(t *testing.T) {
	chk := require.New(t)
	chk.Equal("4.00x +17% -25%", report.FormatPoint(speedup.Point{Ratio: 4, ErrLow: 1, ErrHigh: 2.0 / 3.0}))
	chk.Equal("2.00x +/-0%", report.FormatPoint(speedup.Point{Ratio: 2}))
	chk.Equal("0.50x +2x -0%", report.FormatPoint(speedup.Point{Ratio: 0.5, ErrHigh: 1}))
}

func TestWrite(t *testing.T) {
	chk := require.New(t)
	var sb strings.Builder
	chk.NoError(report.Write(&sb, testBatch(t)))
	out := sb.String()

	chk.Contains(out, "TreeStructured speedup by size")
	chk.Contains(out, "TreeStructured speedup by threads at size")
	chk.Contains(out, "4 Threads")
	chk.Contains(out, "4.00x +17% -25%")
	// There is no baseline at size 2000.
	chk.Contains(out, "sweeps failed")
	chk.Contains(out, "missing baseline")
	chk.NotContains(out, "Global speedup by size")
}

func TestTop(t *testing.T) {
	chk := require.New(t)
	batch := testBatch(t)

	top := report.Top(batch, 2)
	chk.Len(top, 2)
	chk.Equal(speedup.TreeStructured, top[0].Algorithm)
	chk.Equal(4, top[0].Threads)
	chk.InDelta(4.0, top[0].Point.Ratio, 1e-12)
	// TreeStructured and Global tie at 2x; fewer threads wins.
	chk.InDelta(2.0, top[1].Point.Ratio, 1e-12)
	chk.Equal(2, top[1].Threads)
	chk.Equal(speedup.TreeStructured, top[1].Algorithm)

	chk.Len(report.Top(batch, 100), 4)
	chk.Empty(report.Top(batch, 0))

	var sb strings.Builder
	chk.NoError(report.WriteTop(&sb, top))
	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	chk.Len(lines, 3)
	chk.True(strings.HasPrefix(lines[1], "1"))
}
