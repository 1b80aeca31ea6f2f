// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package loader reads benchmark measurements into speedup records. Two
// formats are understood: the CSV table written by the summation benchmark
// driver, and the Go benchmark text format.
package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	speedup "github.com/petenewcomb/speedup-go"
)

type constError string

func (e constError) Error() string {
	return string(e)
}

const ErrMissingColumn = constError("missing column")
const ErrMalformedField = constError("malformed field")
const ErrUnknownFormat = constError("unknown format")
const ErrMissingKey = constError("missing benchmark key")
const ErrNoTiming = constError("no timing value")

// Format selects an input parser.
type Format string

const (
	FormatAuto  Format = ""
	FormatCSV   Format = "csv"
	FormatBench Format = "bench"
)

// ParseFormat validates a format name. The empty string and "auto" select
// detection by file extension.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatAuto, "auto":
		return FormatAuto, nil
	case FormatCSV, FormatBench:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// DetectFormat guesses the format of a file from its name. Anything not
// ending in .csv is treated as Go benchmark output.
func DetectFormat(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return FormatCSV
	}
	return FormatBench
}

// Table is the outcome of loading one input.
type Table struct {
	Records []speedup.Record

	// Warnings are non-fatal observations about the input, such as
	// benchmark samples too small for meaningful extremes.
	Warnings []error
}

// Load reads r in the given format. Name is used in error messages.
func Load(r io.Reader, name string, format Format) (*Table, error) {
	if format == FormatAuto {
		format = DetectFormat(name)
	}
	switch format {
	case FormatCSV:
		return LoadCSV(r, name)
	case FormatBench:
		return LoadBench(r, name)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// LoadFile opens path and loads it in the given format.
func LoadFile(path string, format Format) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f, path, format)
}
