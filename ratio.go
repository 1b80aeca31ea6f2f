// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package speedup

import (
	"fmt"
	"math"
)

// Ratios computes baseline[i].Mean divided by the timing of candidate[i]
// selected by t. The selections must already be paired; see [Pair].
func Ratios(baseline, candidate []Record, t Timing) ([]float64, error) {
	if len(baseline) != len(candidate) {
		return nil, fmt.Errorf("%w: %d baseline rows, %d candidate rows", ErrMisalignedSelection, len(baseline), len(candidate))
	}
	out := make([]float64, len(candidate))
	for i, c := range candidate {
		d := t.Of(c)
		if d == 0 {
			return nil, fmt.Errorf("%w: %v has zero %v", ErrDivisionByZero, c, t)
		}
		out[i] = baseline[i].Mean / d
	}
	return out, nil
}

// Bounds derives the asymmetric error band around each ratio. Absolute
// differences are used so that both outputs are non-negative even when the
// recorded extremes are inconsistent with the mean.
func Bounds(ratio, ratioAtMin, ratioAtMax []float64) (low, high []float64, err error) {
	if len(ratioAtMin) != len(ratio) || len(ratioAtMax) != len(ratio) {
		return nil, nil, fmt.Errorf("%w: %d ratios, %d at min, %d at max",
			ErrMisalignedSelection, len(ratio), len(ratioAtMin), len(ratioAtMax))
	}
	low = make([]float64, len(ratio))
	high = make([]float64, len(ratio))
	for i, r := range ratio {
		low[i] = math.Abs(r - ratioAtMin[i])
		high[i] = math.Abs(r - ratioAtMax[i])
	}
	return low, high, nil
}

// Point is one derived speedup measurement. X holds the size or thread count
// the point is plotted against.
type Point struct {
	X       int
	Ratio   float64
	ErrLow  float64
	ErrHigh float64
}

// Points computes a speedup point for each pair of aligned records, taking X
// from the candidate along the given axis.
func Points(baseline, candidate []Record, x Axis) ([]Point, error) {
	ratio, err := Ratios(baseline, candidate, Mean)
	if err != nil {
		return nil, err
	}
	atMin, err := Ratios(baseline, candidate, Min)
	if err != nil {
		return nil, err
	}
	atMax, err := Ratios(baseline, candidate, Max)
	if err != nil {
		return nil, err
	}
	low, high, err := Bounds(ratio, atMin, atMax)
	if err != nil {
		return nil, err
	}
	points := make([]Point, len(candidate))
	for i, c := range candidate {
		points[i] = Point{
			X:       x.Of(c),
			Ratio:   ratio[i],
			ErrLow:  low[i],
			ErrHigh: high[i],
		}
	}
	return points, nil
}
