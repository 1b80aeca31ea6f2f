// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package speedup

import (
	"fmt"
	"math"
	"strings"
)

// Algorithm identifies the summation strategy a record was measured with. The
// zero value matches any algorithm when used in a [Filter].
type Algorithm int

const (
	AnyAlgorithm Algorithm = iota
	Serial
	TreeStructured
	Global
)

// Algorithms lists the concrete algorithms in their canonical order.
var Algorithms = []Algorithm{Serial, TreeStructured, Global}

// Parallel lists the algorithms that are compared against the Serial
// baseline.
var Parallel = []Algorithm{TreeStructured, Global}

func (a Algorithm) String() string {
	switch a {
	case AnyAlgorithm:
		return "Any"
	case Serial:
		return "Serial"
	case TreeStructured:
		return "TreeStructured"
	case Global:
		return "Global"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a label to an Algorithm. Labels are matched without
// regard to case, and the "Sum" suffix written by the benchmark driver
// ("SerialSum", "TreeStructuredSum", "GlobalSum") is accepted.
func ParseAlgorithm(label string) (Algorithm, error) {
	s := strings.ToLower(strings.TrimSpace(label))
	s = strings.TrimSuffix(s, "sum")
	for _, a := range Algorithms {
		if s == strings.ToLower(a.String()) {
			return a, nil
		}
	}
	return AnyAlgorithm, fmt.Errorf("unknown algorithm %q", label)
}

// Record is a single summarized benchmark measurement. Timings are in
// seconds.
type Record struct {
	Algorithm Algorithm
	Threads   int
	Size      int
	Mean      float64
	Min       float64
	Max       float64

	// Stddev is carried through from the input when present. It plays no
	// part in speedup computation.
	Stddev float64
}

func (r Record) String() string {
	return fmt.Sprintf("%v/threads=%d/size=%d", r.Algorithm, r.Threads, r.Size)
}

// Validate reports ErrInvalidRecord if r cannot take part in a computation.
func (r Record) Validate() error {
	switch {
	case r.Algorithm < Serial || r.Algorithm > Global:
		return fmt.Errorf("%w: %v: unknown algorithm", ErrInvalidRecord, r)
	case r.Threads < 1:
		return fmt.Errorf("%w: %v: threads must be at least 1", ErrInvalidRecord, r)
	case r.Size < 1:
		return fmt.Errorf("%w: %v: size must be at least 1", ErrInvalidRecord, r)
	}
	for _, v := range [...]float64{r.Mean, r.Min, r.Max, r.Stddev} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%w: %v: timings must be finite and non-negative", ErrInvalidRecord, r)
		}
	}
	if r.Min > r.Mean || r.Mean > r.Max {
		return fmt.Errorf("%w: %v: want min <= mean <= max, got %g, %g, %g",
			ErrInvalidRecord, r, r.Min, r.Mean, r.Max)
	}
	return nil
}

// Timing selects which recorded timing of a candidate is used as the
// denominator of a speedup ratio.
type Timing int

const (
	Mean Timing = iota
	Min
	Max
)

func (t Timing) String() string {
	switch t {
	case Mean:
		return "mean"
	case Min:
		return "min"
	case Max:
		return "max"
	default:
		return fmt.Sprintf("Timing(%d)", int(t))
	}
}

// Of returns the timing of r selected by t.
func (t Timing) Of(r Record) float64 {
	switch t {
	case Min:
		return r.Min
	case Max:
		return r.Max
	default:
		return r.Mean
	}
}
