// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	speedup "github.com/petenewcomb/speedup-go"
)

var requiredColumns = []string{"Name", "Threads", "Size", "Mean", "Min", "Max"}

const stddevColumn = "Stddev"

// LoadCSV reads a CSV table with a header row naming at least the columns
// Name, Threads, Size, Mean, Min and Max, in any order and any case. A Stddev
// column is read when present and other columns are ignored. Every row is
// validated, and the first invalid row aborts loading.
func LoadCSV(r io.Reader, name string) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: %w: empty input", name, ErrMissingColumn)
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	columns := make(map[string]int, len(header))
	for i, h := range header {
		columns[strings.ToLower(strings.TrimSpace(h))] = i
	}
	index := make(map[string]int, len(requiredColumns))
	for _, c := range requiredColumns {
		i, ok := columns[strings.ToLower(c)]
		if !ok {
			return nil, fmt.Errorf("%s: %w %q", name, ErrMissingColumn, c)
		}
		index[c] = i
	}
	stddev, hasStddev := columns[strings.ToLower(stddevColumn)]

	table := &Table{}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		line, _ := cr.FieldPos(0)

		p := fieldParser{name: name, line: line, row: row}
		rec := speedup.Record{
			Threads: p.int("Threads", index["Threads"]),
			Size:    p.int("Size", index["Size"]),
			Mean:    p.float("Mean", index["Mean"]),
			Min:     p.float("Min", index["Min"]),
			Max:     p.float("Max", index["Max"]),
		}
		if hasStddev {
			rec.Stddev = p.float(stddevColumn, stddev)
		}
		if p.err != nil {
			return nil, p.err
		}
		rec.Algorithm, err = speedup.ParseAlgorithm(row[index["Name"]])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, line, err)
		}
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, line, err)
		}
		table.Records = append(table.Records, rec)
	}
	return table, nil
}

// fieldParser converts fields of one row, keeping only the first error.
type fieldParser struct {
	name string
	line int
	row  []string
	err  error
}

func (p *fieldParser) fail(column, value string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("%s:%d: %w: %s %q: %v", p.name, p.line, ErrMalformedField, column, value, err)
	}
}

func (p *fieldParser) int(column string, i int) int {
	s := strings.TrimSpace(p.row[i])
	v, err := strconv.Atoi(s)
	if err != nil {
		// The benchmark driver may print sizes in exponent form.
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != float64(int(f)) {
			p.fail(column, s, err)
			return 0
		}
		v = int(f)
	}
	return v
}

func (p *fieldParser) float(column string, i int) float64 {
	s := strings.TrimSpace(p.row[i])
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		p.fail(column, s, err)
	}
	return v
}
