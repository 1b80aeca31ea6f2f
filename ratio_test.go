// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package speedup_test

import (
	"testing"

	speedup "github.com/petenewcomb/speedup-go"
	"github.com/stretchr/testify/require"
)

func TestRatiosScenario(t *testing.T) {
	chk := require.New(t)
	baseline := []speedup.Record{rec(speedup.Serial, 1, 1000, 10, 10, 10)}
	candidate := []speedup.Record{rec(speedup.TreeStructured, 4, 1000, 2.5, 2, 3)}

	ratio, err := speedup.Ratios(baseline, candidate, speedup.Mean)
	chk.NoError(err)
	atMin, err := speedup.Ratios(baseline, candidate, speedup.Min)
	chk.NoError(err)
	atMax, err := speedup.Ratios(baseline, candidate, speedup.Max)
	chk.NoError(err)
	chk.InDelta(4.0, ratio[0], 1e-12)
	chk.InDelta(5.0, atMin[0], 1e-12)
	chk.InDelta(10.0/3.0, atMax[0], 1e-12)

	low, high, err := speedup.Bounds(ratio, atMin, atMax)
	chk.NoError(err)
	chk.InDelta(1.0, low[0], 1e-12)
	chk.InDelta(2.0/3.0, high[0], 1e-12)

	points, err := speedup.Points(baseline, candidate, speedup.SizeAxis)
	chk.NoError(err)
	chk.Len(points, 1)
	chk.Equal(1000, points[0].X)
	chk.InDelta(4.0, points[0].Ratio, 1e-12)
	chk.InDelta(1.0, points[0].ErrLow, 1e-12)
	chk.InDelta(2.0/3.0, points[0].ErrHigh, 1e-12)
}

func TestRatiosMisaligned(t *testing.T) {
	chk := require.New(t)
	baseline := []speedup.Record{
		rec(speedup.Serial, 1, 1000, 10, 10, 10),
		rec(speedup.Serial, 1, 2000, 20, 20, 20),
	}
	candidate := []speedup.Record{rec(speedup.Global, 4, 1000, 2.5, 2, 3)}
	_, err := speedup.Ratios(baseline, candidate, speedup.Mean)
	chk.ErrorIs(err, speedup.ErrMisalignedSelection)
}

func TestRatiosDivisionByZero(t *testing.T) {
	chk := require.New(t)
	baseline := []speedup.Record{rec(speedup.Serial, 1, 1000, 10, 10, 10)}

	_, err := speedup.Ratios(baseline, []speedup.Record{rec(speedup.Global, 4, 1000, 0, 0, 0)}, speedup.Mean)
	chk.ErrorIs(err, speedup.ErrDivisionByZero)

	candidate := []speedup.Record{rec(speedup.Global, 4, 1000, 1, 0, 2)}
	_, err = speedup.Ratios(baseline, candidate, speedup.Mean)
	chk.NoError(err)
	_, err = speedup.Ratios(baseline, candidate, speedup.Min)
	chk.ErrorIs(err, speedup.ErrDivisionByZero)
	_, err = speedup.Points(baseline, candidate, speedup.SizeAxis)
	chk.ErrorIs(err, speedup.ErrDivisionByZero)
}

func TestBoundsIgnoreOrdering(t *testing.T) {
	chk := require.New(t)
	// Extremes on the "wrong" side of the point ratio still yield
	// non-negative distances.
	low, high, err := speedup.Bounds(
		[]float64{4, 4},
		[]float64{3, 5},
		[]float64{5, 3.5},
	)
	chk.NoError(err)
	chk.Equal([]float64{1, 1}, low)
	chk.Equal([]float64{1, 0.5}, high)
}

func TestBoundsMisaligned(t *testing.T) {
	chk := require.New(t)
	_, _, err := speedup.Bounds([]float64{1, 2}, []float64{1}, []float64{1, 2})
	chk.ErrorIs(err, speedup.ErrMisalignedSelection)
	_, _, err = speedup.Bounds([]float64{1}, []float64{1}, nil)
	chk.ErrorIs(err, speedup.ErrMisalignedSelection)
}

func TestRatiosEmpty(t *testing.T) {
	chk := require.New(t)
	points, err := speedup.Points(nil, nil, speedup.ThreadsAxis)
	chk.NoError(err)
	chk.Empty(points)
}
