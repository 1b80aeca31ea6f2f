// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package speedup turns a table of benchmark timings into speedup curves
// normalized against a serial, single-threaded baseline.
//
// Each row of a [Dataset] is one measurement of an [Algorithm] at a thread
// count and a dataset size, summarized as mean, minimum and maximum seconds.
// The speedup of a candidate row is the baseline mean divided by the
// candidate's mean. Dividing the same baseline mean by the candidate's minimum
// and maximum yields two more ratios, and the distance from the point ratio to
// each of them forms an asymmetric error band.
//
// Two sweeps are provided. [SizeSweep] holds the thread count fixed per curve
// and varies the dataset size, producing one [Curve] per thread count.
// [ThreadSweep] holds the size fixed and varies the thread count. Baseline and
// candidate rows are always paired by the dimension held constant, never by
// position, so a dataset with a missing or duplicated row fails loudly with
// [ErrMisalignedSelection] instead of producing shifted results.
//
// Sweeps return plain data. [Project] runs every sweep for a set of
// algorithms, isolating failures so that one broken sweep does not prevent
// the others from completing. Drawing the results is left to the caller.
package speedup
