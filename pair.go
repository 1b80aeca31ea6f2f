// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package speedup

import "fmt"

// Axis names a record dimension used as a pairing key or as the X axis of a
// sweep.
type Axis int

const (
	SizeAxis Axis = iota
	ThreadsAxis
)

func (a Axis) String() string {
	switch a {
	case SizeAxis:
		return "size"
	case ThreadsAxis:
		return "threads"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Of returns the value of the a dimension of r.
func (a Axis) Of(r Record) int {
	if a == ThreadsAxis {
		return r.Threads
	}
	return r.Size
}

// Pair matches every candidate with the baseline row sharing its key on the
// given axis and returns the two sequences aligned index for index, in
// candidate order.
//
// A candidate key with no baseline fails with ErrMissingBaseline and a key
// with several baselines with ErrAmbiguousBaseline. Selections of different
// lengths, a repeated candidate key, or a baseline key with no candidate fail
// with ErrMisalignedSelection.
func Pair(baseline, candidate []Record, key Axis) ([]Record, []Record, error) {
	byKey := make(map[int]Record, len(baseline))
	dup := make(map[int]int)
	for _, b := range baseline {
		k := key.Of(b)
		if _, ok := byKey[k]; ok {
			dup[k]++
			continue
		}
		byKey[k] = b
	}

	pairedBaseline := make([]Record, 0, len(candidate))
	pairedCandidate := make([]Record, 0, len(candidate))
	used := make(map[int]struct{}, len(candidate))
	for _, c := range candidate {
		k := key.Of(c)
		if _, ok := used[k]; ok {
			return nil, nil, fmt.Errorf("%w: %v appears more than once among candidates", ErrMisalignedSelection, c)
		}
		used[k] = struct{}{}
		b, ok := byKey[k]
		if !ok {
			return nil, nil, fmt.Errorf("%w: no baseline with %v=%d for %v", ErrMissingBaseline, key, k, c)
		}
		if n := dup[k]; n > 0 {
			return nil, nil, fmt.Errorf("%w: %d baselines with %v=%d for %v", ErrAmbiguousBaseline, n+1, key, k, c)
		}
		pairedBaseline = append(pairedBaseline, b)
		pairedCandidate = append(pairedCandidate, c)
	}

	if len(baseline) != len(candidate) {
		return nil, nil, fmt.Errorf("%w: %d baseline rows, %d candidate rows", ErrMisalignedSelection, len(baseline), len(candidate))
	}
	return pairedBaseline, pairedCandidate, nil
}
