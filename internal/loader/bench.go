// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package loader

import (
	"fmt"
	"io"
	"math"
	"strconv"

	speedup "github.com/petenewcomb/speedup-go"
	"golang.org/x/perf/benchfmt"
	"golang.org/x/perf/benchmath"
	"golang.org/x/perf/benchproc"
)

// benchProjection extracts the record key from a benchmark name such as
// BenchmarkSum/algorithm=TreeStructured/threads=4/size=1000000-8.
const benchProjection = "/algorithm,/threads,/size"

type benchGroup struct {
	record speedup.Record
	values []float64
}

// LoadBench reads Go benchmark output. Every result line is one timing
// sample of the (algorithm, threads, size) named by its sub-benchmark keys;
// samples sharing a key are summarized into one record whose Mean is their
// arithmetic mean and whose Min and Max are their extremes. Timings are
// taken from the sec/op unit, or ns/op converted to seconds.
func LoadBench(r io.Reader, name string) (*Table, error) {
	var pp benchproc.ProjectionParser
	keyP, err := pp.Parse(benchProjection, nil)
	if err != nil {
		return nil, err
	}
	fields := keyP.Fields()

	groups := make(map[benchproc.Key]*benchGroup)
	var order []benchproc.Key
	table := &Table{}

	reader := benchfmt.NewReader(r, name)
	for reader.Scan() {
		var res *benchfmt.Result
		switch rec := reader.Result(); rec := rec.(type) {
		case *benchfmt.Result:
			res = rec
		case *benchfmt.SyntaxError:
			// Non-fatal, as benchstat treats it.
			table.Warnings = append(table.Warnings, rec)
			continue
		default:
			continue
		}

		_, line := res.Pos()
		seconds, ok := resultSeconds(res)
		if !ok {
			return nil, fmt.Errorf("%s:%d: %w in %s", name, line, ErrNoTiming, res.Name)
		}

		key := keyP.Project(res)
		g, ok := groups[key]
		if !ok {
			g = &benchGroup{}
			g.record.Algorithm, err = speedup.ParseAlgorithm(key.Get(fields[0]))
			if key.Get(fields[0]) == "" || err != nil {
				return nil, fmt.Errorf("%s:%d: %w /algorithm in %s", name, line, ErrMissingKey, res.Name)
			}
			g.record.Threads, err = strconv.Atoi(key.Get(fields[1]))
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w /threads in %s", name, line, ErrMissingKey, res.Name)
			}
			g.record.Size, err = strconv.Atoi(key.Get(fields[2]))
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w /size in %s", name, line, ErrMissingKey, res.Name)
			}
			groups[key] = g
			order = append(order, key)
		}
		g.values = append(g.values, seconds)
	}
	if err := reader.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	thresholds := benchmath.DefaultThresholds
	for _, key := range order {
		g := groups[key]
		sample := benchmath.NewSample(g.values, &thresholds)
		for _, w := range sample.Warnings {
			table.Warnings = append(table.Warnings, fmt.Errorf("%v: %w", g.record, w))
		}
		rec := g.record
		rec.Min = sample.Values[0]
		rec.Max = sample.Values[len(sample.Values)-1]
		rec.Mean, rec.Stddev = meanStddev(sample.Values)
		// The mean of real samples lies within their extremes; the clamp only
		// absorbs floating-point rounding, never a data error.
		rec.Mean = min(max(rec.Mean, rec.Min), rec.Max)
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		table.Records = append(table.Records, rec)
	}
	return table, nil
}

func resultSeconds(res *benchfmt.Result) (float64, bool) {
	if v, ok := res.Value("sec/op"); ok {
		return v, true
	}
	if v, ok := res.Value("ns/op"); ok {
		return v / 1e9, true
	}
	return 0, false
}

func meanStddev(values []float64) (mean, stddev float64) {
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	if len(values) < 2 {
		return mean, 0
	}
	var ss float64
	for _, v := range values {
		ss += (v - mean) * (v - mean)
	}
	return mean, math.Sqrt(ss / float64(len(values)-1))
}
