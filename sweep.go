// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package speedup

import (
	"fmt"
	"slices"
)

// Curve is an ordered set of speedup points sharing a label.
type Curve struct {
	Label  string
	Points []Point
}

// SizeCurves is the result of a size sweep: one curve per thread count,
// ordered by the first appearance of the thread count in the dataset. Curves
// are plotted against Size.
type SizeCurves struct {
	Algorithm Algorithm
	Threads   []int
	Curves    []Curve
}

// Lookup returns the curve with the given label.
func (sc *SizeCurves) Lookup(label string) (Curve, bool) {
	i := slices.IndexFunc(sc.Curves, func(c Curve) bool { return c.Label == label })
	if i < 0 {
		return Curve{}, false
	}
	return sc.Curves[i], true
}

// ThreadCurve is the result of a thread sweep at a single size. Points are
// plotted against Threads.
type ThreadCurve struct {
	Algorithm Algorithm
	Size      int
	Points    []Point
}

// ThreadsLabel returns the label used for the curve of a thread count.
func ThreadsLabel(threads int) string {
	return fmt.Sprintf("%d Threads", threads)
}

// algorithmThreads returns the thread counts alg was measured at, in the
// dataset's first-seen order.
func algorithmThreads(ds *Dataset, alg Algorithm) []int {
	present := make(map[int]struct{})
	for _, r := range ds.records {
		if r.Algorithm == alg {
			present[r.Threads] = struct{}{}
		}
	}
	var out []int
	for _, t := range ds.threads {
		if _, ok := present[t]; ok {
			out = append(out, t)
		}
	}
	return out
}

// noCandidates reports a sweep of an algorithm the dataset holds no rows for.
func noCandidates(alg Algorithm) error {
	return fmt.Errorf("%w: no %v records", ErrMisalignedSelection, alg)
}

// SizeSweep computes, for each thread count alg was measured at, the speedup
// of alg over the serial baseline across every size. Each candidate row is
// paired with the baseline of the same size. The first failure aborts the
// sweep, and an algorithm with no rows fails it.
func SizeSweep(ds *Dataset, alg Algorithm) (*SizeCurves, error) {
	threads := algorithmThreads(ds, alg)
	if len(threads) == 0 {
		return nil, noCandidates(alg)
	}
	baseline := ds.Select(Filter{Algorithm: Serial, Threads: 1})
	result := &SizeCurves{
		Algorithm: alg,
	}
	for _, t := range threads {
		f := Filter{Algorithm: alg, Threads: t}
		b, c, err := Pair(baseline, ds.Select(f), SizeAxis)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", f, err)
		}
		points, err := Points(b, c, SizeAxis)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", f, err)
		}
		result.Threads = append(result.Threads, t)
		result.Curves = append(result.Curves, Curve{
			Label:  ThreadsLabel(t),
			Points: points,
		})
	}
	return result, nil
}

// ThreadSweep computes the speedup of alg over the serial baseline at a
// single size, for each thread count alg was measured at. Every such thread
// count must have exactly one row at size, and alg must have at least one.
func ThreadSweep(ds *Dataset, alg Algorithm, size int) (*ThreadCurve, error) {
	base, err := ds.Baseline(size)
	if err != nil {
		return nil, err
	}
	threads := algorithmThreads(ds, alg)
	if len(threads) == 0 {
		return nil, noCandidates(alg)
	}
	baseline := make([]Record, 0, len(threads))
	candidate := make([]Record, 0, len(threads))
	for _, t := range threads {
		f := Filter{Algorithm: alg, Threads: t, Size: size}
		matches := ds.Select(f)
		if len(matches) != 1 {
			return nil, fmt.Errorf("%w: %d %v records, want 1", ErrMisalignedSelection, len(matches), f)
		}
		baseline = append(baseline, base)
		candidate = append(candidate, matches[0])
	}
	points, err := Points(baseline, candidate, ThreadsAxis)
	if err != nil {
		return nil, fmt.Errorf("%v/size=%d: %w", alg, size, err)
	}
	return &ThreadCurve{
		Algorithm: alg,
		Size:      size,
		Points:    points,
	}, nil
}
