// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package speedup_test

import (
	"context"
	"slices"
	"testing"

	speedup "github.com/petenewcomb/speedup-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestProjectAllSweeps(t *testing.T) {
	chk := require.New(t)
	ds := mustDataset(t, sweepRecords()...)

	batch := speedup.Project(context.Background(), ds, speedup.Options{})
	chk.Zero(batch.Failed())
	chk.Empty(batch.Errors())

	chk.Len(batch.SizeSweeps, 2)
	chk.Equal(speedup.TreeStructured, batch.SizeSweeps[0].Algorithm)
	chk.Equal(speedup.Global, batch.SizeSweeps[1].Algorithm)
	for _, r := range batch.SizeSweeps {
		chk.NoError(r.Err)
		chk.Len(r.Curves.Curves, 3)
	}

	chk.Len(batch.ThreadSweeps, 4)
	var order [][2]int
	for _, r := range batch.ThreadSweeps {
		chk.NoError(r.Err)
		chk.Len(r.Curve.Points, 3)
		order = append(order, [2]int{int(r.Algorithm), r.Size})
	}
	chk.Equal([][2]int{
		{int(speedup.TreeStructured), 1000},
		{int(speedup.Global), 1000},
		{int(speedup.TreeStructured), 10000},
		{int(speedup.Global), 10000},
	}, order)
}

func TestProjectIsolatesFailures(t *testing.T) {
	chk := require.New(t)
	records := append(sweepRecords(),
		rec(speedup.TreeStructured, 4, 5000, 12, 11, 13),
	)
	ds := mustDataset(t, records...)

	core, logs := observer.New(zapcore.DebugLevel)
	batch := speedup.Project(context.Background(), ds, speedup.Options{
		Logger: zap.New(core),
	})

	// The TreeStructured size sweep and both thread sweeps at 5000 fail.
	// Everything else completes.
	chk.Equal(3, batch.Failed())
	chk.Len(batch.Errors(), 3)

	chk.ErrorIs(batch.SizeSweeps[0].Err, speedup.ErrMissingBaseline)
	chk.Nil(batch.SizeSweeps[0].Curves)
	chk.NoError(batch.SizeSweeps[1].Err)
	chk.NotNil(batch.SizeSweeps[1].Curves)

	for _, r := range batch.ThreadSweeps {
		if r.Size == 5000 {
			chk.ErrorIs(r.Err, speedup.ErrMissingBaseline)
			chk.Nil(r.Curve)
		} else {
			chk.NoError(r.Err)
			chk.NotNil(r.Curve)
		}
	}

	chk.Equal(3, logs.FilterMessage("Sweep failed").Len())
	chk.Equal(len(batch.SizeSweeps)+len(batch.ThreadSweeps)-3, logs.FilterMessage("Sweep completed").Len())
}

func TestProjectOptions(t *testing.T) {
	chk := require.New(t)
	ds := mustDataset(t, sweepRecords()...)

	batch := speedup.Project(context.Background(), ds, speedup.Options{
		Algorithms:     []speedup.Algorithm{speedup.Global},
		Sizes:          []int{10000},
		SkipSizeSweeps: true,
	})
	chk.Empty(batch.SizeSweeps)
	chk.Len(batch.ThreadSweeps, 1)
	chk.Equal(speedup.Global, batch.ThreadSweeps[0].Algorithm)
	chk.Equal(10000, batch.ThreadSweeps[0].Size)

	batch = speedup.Project(context.Background(), ds, speedup.Options{
		SkipThreadSweeps: true,
	})
	chk.Len(batch.SizeSweeps, 2)
	chk.Empty(batch.ThreadSweeps)
}

func TestProjectAbsentAlgorithm(t *testing.T) {
	chk := require.New(t)
	records := slices.DeleteFunc(sweepRecords(), func(r speedup.Record) bool {
		return r.Algorithm == speedup.TreeStructured
	})
	ds := mustDataset(t, records...)

	batch := speedup.Project(context.Background(), ds, speedup.Options{})
	// TreeStructured's size sweep and its thread sweep at each of the two
	// sizes.
	chk.Equal(3, batch.Failed())
	for _, r := range batch.SizeSweeps {
		if r.Algorithm == speedup.TreeStructured {
			chk.ErrorIs(r.Err, speedup.ErrMisalignedSelection)
		} else {
			chk.NoError(r.Err)
		}
	}
	for _, r := range batch.ThreadSweeps {
		if r.Algorithm == speedup.TreeStructured {
			chk.ErrorIs(r.Err, speedup.ErrMisalignedSelection)
		} else {
			chk.NoError(r.Err)
		}
	}
}
