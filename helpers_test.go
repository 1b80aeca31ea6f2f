// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package speedup_test

import (
	"testing"

	speedup "github.com/petenewcomb/speedup-go"
	"github.com/stretchr/testify/require"
)

func rec(alg speedup.Algorithm, threads, size int, mean, min, max float64) speedup.Record {
	return speedup.Record{
		Algorithm: alg,
		Threads:   threads,
		Size:      size,
		Mean:      mean,
		Min:       min,
		Max:       max,
	}
}

func mustDataset(t *testing.T, records ...speedup.Record) *speedup.Dataset {
	t.Helper()
	ds, err := speedup.NewDataset(records)
	require.NoError(t, err)
	return ds
}

// sweepRecords returns a complete two-size, three-thread-count dataset in the
// order the benchmark driver writes it.
func sweepRecords() []speedup.Record {
	return []speedup.Record{
		rec(speedup.Serial, 1, 1000, 10, 10, 10),
		rec(speedup.TreeStructured, 1, 1000, 10, 9, 11),
		rec(speedup.Global, 1, 1000, 10, 9, 11),
		rec(speedup.TreeStructured, 4, 1000, 2.5, 2, 3),
		rec(speedup.Global, 4, 1000, 5, 4, 5),
		rec(speedup.TreeStructured, 2, 1000, 5, 5, 5),
		rec(speedup.Global, 2, 1000, 8, 8, 8),
		rec(speedup.Serial, 1, 10000, 100, 90, 110),
		rec(speedup.TreeStructured, 1, 10000, 100, 100, 100),
		rec(speedup.Global, 1, 10000, 100, 100, 100),
		rec(speedup.TreeStructured, 4, 10000, 20, 20, 25),
		rec(speedup.Global, 4, 10000, 50, 40, 50),
		rec(speedup.TreeStructured, 2, 10000, 50, 50, 50),
		rec(speedup.Global, 2, 10000, 80, 80, 80),
	}
}
