// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package speedup

type constError string

func (e constError) Error() string {
	return string(e)
}

// ErrInvalidRecord is returned when a record violates Min <= Mean <= Max or
// carries a non-positive thread count or size.
const ErrInvalidRecord = constError("invalid record")

// ErrMissingBaseline is returned when no Serial single-thread record exists
// for a size.
const ErrMissingBaseline = constError("missing baseline")

// ErrAmbiguousBaseline is returned when more than one Serial single-thread
// record exists for a size.
const ErrAmbiguousBaseline = constError("ambiguous baseline")

// ErrMisalignedSelection is returned when baseline and candidate selections
// cannot be paired one-to-one.
const ErrMisalignedSelection = constError("misaligned selection")

// ErrDivisionByZero is returned when a candidate timing used as a
// denominator is exactly zero.
const ErrDivisionByZero = constError("division by zero")
