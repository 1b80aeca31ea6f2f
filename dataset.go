// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package speedup

import (
	"fmt"
	"slices"
)

// Dataset is an immutable, validated sequence of records. Row order carries
// no meaning beyond fixing the first-seen order of thread counts and sizes.
type Dataset struct {
	records []Record
	threads []int
	sizes   []int
}

// NewDataset validates every record and returns a Dataset holding a copy of
// them. The first invalid record aborts construction.
func NewDataset(records []Record) (*Dataset, error) {
	ds := &Dataset{
		records: slices.Clone(records),
	}
	seenThreads := make(map[int]struct{})
	seenSizes := make(map[int]struct{})
	for i, r := range ds.records {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if _, ok := seenThreads[r.Threads]; !ok {
			seenThreads[r.Threads] = struct{}{}
			ds.threads = append(ds.threads, r.Threads)
		}
		if _, ok := seenSizes[r.Size]; !ok {
			seenSizes[r.Size] = struct{}{}
			ds.sizes = append(ds.sizes, r.Size)
		}
	}
	return ds, nil
}

// Len returns the number of records.
func (ds *Dataset) Len() int {
	return len(ds.records)
}

// Records returns a copy of the records in dataset order.
func (ds *Dataset) Records() []Record {
	return slices.Clone(ds.records)
}

// Threads returns the distinct thread counts in first-seen order.
func (ds *Dataset) Threads() []int {
	return slices.Clone(ds.threads)
}

// Sizes returns the distinct sizes in first-seen order.
func (ds *Dataset) Sizes() []int {
	return slices.Clone(ds.sizes)
}

// Filter constrains a selection. Zero-valued fields match anything.
type Filter struct {
	Algorithm Algorithm
	Threads   int
	Size      int
}

// Match reports whether r satisfies every constrained field of f.
func (f Filter) Match(r Record) bool {
	return (f.Algorithm == AnyAlgorithm || r.Algorithm == f.Algorithm) &&
		(f.Threads == 0 || r.Threads == f.Threads) &&
		(f.Size == 0 || r.Size == f.Size)
}

func (f Filter) String() string {
	s := f.Algorithm.String()
	if f.Threads != 0 {
		s += fmt.Sprintf("/threads=%d", f.Threads)
	}
	if f.Size != 0 {
		s += fmt.Sprintf("/size=%d", f.Size)
	}
	return s
}

// Select returns the records matching f, preserving dataset order. The
// result is freshly allocated.
func (ds *Dataset) Select(f Filter) []Record {
	var out []Record
	for _, r := range ds.records {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// BaselineFilter returns the filter identifying the baseline for size.
func BaselineFilter(size int) Filter {
	return Filter{Algorithm: Serial, Threads: 1, Size: size}
}

// Baseline returns the unique Serial single-thread record for size. It fails
// with ErrMissingBaseline if there is none and ErrAmbiguousBaseline if there
// are several.
func (ds *Dataset) Baseline(size int) (Record, error) {
	matches := ds.Select(BaselineFilter(size))
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return Record{}, fmt.Errorf("%w: no %v record", ErrMissingBaseline, BaselineFilter(size))
	default:
		return Record{}, fmt.Errorf("%w: %d %v records", ErrAmbiguousBaseline, len(matches), BaselineFilter(size))
	}
}
