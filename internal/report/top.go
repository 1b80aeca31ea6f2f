// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package report

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/addrummond/heap"
	speedup "github.com/petenewcomb/speedup-go"
)

// Entry locates one point of a batch.
type Entry struct {
	Algorithm speedup.Algorithm
	Threads   int
	Size      int
	Point     speedup.Point
}

func (a *Entry) Cmp(b *Entry) int {
	if c := cmp.Compare(a.Point.Ratio, b.Point.Ratio); c != 0 {
		return c
	}
	// Among equal speedups, prefer fewer threads, then smaller sizes.
	if c := cmp.Compare(b.Threads, a.Threads); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Size, a.Size); c != 0 {
		return c
	}
	return cmp.Compare(b.Algorithm, a.Algorithm)
}

// Top returns the k highest speedups of the batch's thread sweeps, best
// first. Size sweeps cover the same measurements and are not counted again.
func Top(batch *speedup.Batch, k int) []Entry {
	if k <= 0 {
		return nil
	}
	var h heap.Heap[Entry, heap.Min]
	n := 0
	for _, r := range batch.ThreadSweeps {
		if r.Err != nil {
			continue
		}
		for _, p := range r.Curve.Points {
			heap.PushOrderable(&h, Entry{
				Algorithm: r.Algorithm,
				Threads:   p.X,
				Size:      r.Size,
				Point:     p,
			})
			n++
			if n > k {
				_, _ = heap.PopOrderable(&h)
				n--
			}
		}
	}
	out := make([]Entry, 0, n)
	for {
		e, ok := heap.PopOrderable(&h)
		if !ok {
			break
		}
		out = append(out, e)
	}
	slices.Reverse(out)
	return out
}

// WriteTop prints the result of [Top].
func WriteTop(w io.Writer, entries []Entry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "rank\talgorithm\tthreads\tsize\tspeedup\n")
	for i, e := range entries {
		fmt.Fprintf(tw, "%d\t%v\t%d\t%d\t%s\n", i+1, e.Algorithm, e.Threads, e.Size, FormatPoint(e.Point))
	}
	return tw.Flush()
}
