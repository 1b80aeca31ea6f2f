// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package speedup

import (
	"context"
	"fmt"
	"time"

	"github.com/gammazero/deque"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Options configures [Project].
type Options struct {
	// Algorithms to sweep. Defaults to [Parallel].
	Algorithms []Algorithm

	// Sizes at which to run thread sweeps. Defaults to every size in the
	// dataset, in first-seen order.
	Sizes []int

	// SkipSizeSweeps and SkipThreadSweeps disable one of the two sweep
	// kinds.
	SkipSizeSweeps   bool
	SkipThreadSweeps bool

	// Logger receives one entry per sweep. Defaults to a no-op logger.
	Logger *zap.Logger
}

// SizeSweepResult holds the outcome of one size sweep. Exactly one of Curves
// and Err is set.
type SizeSweepResult struct {
	Algorithm Algorithm
	Curves    *SizeCurves
	Err       error
}

// ThreadSweepResult holds the outcome of one thread sweep. Exactly one of
// Curve and Err is set.
type ThreadSweepResult struct {
	Algorithm Algorithm
	Size      int
	Curve     *ThreadCurve
	Err       error
}

// Batch collects the results of every sweep run by [Project], in the order
// they were run.
type Batch struct {
	SizeSweeps   []SizeSweepResult
	ThreadSweeps []ThreadSweepResult
}

// Failed returns the number of sweeps that ended in an error.
func (b *Batch) Failed() int {
	n := 0
	for _, r := range b.SizeSweeps {
		if r.Err != nil {
			n++
		}
	}
	for _, r := range b.ThreadSweeps {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// Errors returns the errors of failed sweeps, each annotated with the sweep
// that produced it.
func (b *Batch) Errors() []error {
	var errs []error
	for _, r := range b.SizeSweeps {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("size sweep %v: %w", r.Algorithm, r.Err))
		}
	}
	for _, r := range b.ThreadSweeps {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("thread sweep %v at size %d: %w", r.Algorithm, r.Size, r.Err))
		}
	}
	return errs
}

type sweepKind int

const (
	sizeSweepKind sweepKind = iota
	threadSweepKind
)

func (k sweepKind) String() string {
	if k == threadSweepKind {
		return "thread-sweep"
	}
	return "size-sweep"
}

type sweepJob struct {
	kind      sweepKind
	algorithm Algorithm
	size      int
}

// Project runs a size sweep for each requested algorithm, then a thread
// sweep for each (algorithm, size) pair. Sweeps are independent: an error is
// recorded on the result of the sweep that raised it and the batch moves on.
// The context carries tracing spans only; Project never blocks. Spans and the
// speedup.sweeps.count and speedup.sweeps.errors counters go to the global
// OpenTelemetry providers, which are no-ops unless the caller installs them.
func Project(ctx context.Context, ds *Dataset, opts Options) *Batch {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	algorithms := opts.Algorithms
	if len(algorithms) == 0 {
		algorithms = Parallel
	}
	sizes := opts.Sizes
	if len(sizes) == 0 {
		sizes = ds.Sizes()
	}

	var queue deque.Deque[sweepJob]
	if !opts.SkipSizeSweeps {
		for _, alg := range algorithms {
			queue.PushBack(sweepJob{kind: sizeSweepKind, algorithm: alg})
		}
	}
	if !opts.SkipThreadSweeps {
		for _, size := range sizes {
			for _, alg := range algorithms {
				queue.PushBack(sweepJob{kind: threadSweepKind, algorithm: alg, size: size})
			}
		}
	}

	tracer := otel.Tracer("speedup")
	meter := otel.GetMeterProvider().Meter("speedup")
	sweepCounter, _ := meter.Int64Counter("speedup.sweeps.count")
	errorCounter, _ := meter.Int64Counter("speedup.sweeps.errors")

	batch := &Batch{}
	for queue.Len() > 0 {
		job := queue.PopFront()

		attrs := []attribute.KeyValue{
			attribute.String("algorithm", job.algorithm.String()),
		}
		if job.kind == threadSweepKind {
			attrs = append(attrs, attribute.Int("size", job.size))
		}
		_, span := tracer.Start(ctx, job.kind.String(), trace.WithAttributes(attrs...))
		startTime := time.Now()

		var err error
		switch job.kind {
		case sizeSweepKind:
			var curves *SizeCurves
			curves, err = SizeSweep(ds, job.algorithm)
			batch.SizeSweeps = append(batch.SizeSweeps, SizeSweepResult{
				Algorithm: job.algorithm,
				Curves:    curves,
				Err:       err,
			})
		case threadSweepKind:
			var curve *ThreadCurve
			curve, err = ThreadSweep(ds, job.algorithm, job.size)
			batch.ThreadSweeps = append(batch.ThreadSweeps, ThreadSweepResult{
				Algorithm: job.algorithm,
				Size:      job.size,
				Curve:     curve,
				Err:       err,
			})
		}
		duration := time.Since(startTime)

		sweepCounter.Add(ctx, 1)
		fields := []zap.Field{
			zap.String("sweep", job.kind.String()),
			zap.Stringer("algorithm", job.algorithm),
			zap.Duration("duration", duration),
		}
		if job.kind == threadSweepKind {
			fields = append(fields, zap.Int("size", job.size))
		}
		if err != nil {
			errorCounter.Add(ctx, 1)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			logger.Error("Sweep failed", append(fields, zap.Error(err))...)
		} else {
			logger.Debug("Sweep completed", fields...)
		}
		span.End()
	}
	return batch
}
