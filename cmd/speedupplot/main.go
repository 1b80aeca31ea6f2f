// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Command speedupplot reads benchmark timings of the summation algorithms and
// draws their speedup over the serial baseline, by dataset size and by thread
// count.
//
// Usage:
//
//	speedupplot [flags] [input]
//
// Settings are read from the file named by -config, if any, and then
// overridden by flags.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	speedup "github.com/petenewcomb/speedup-go"
	"github.com/petenewcomb/speedup-go/internal/config"
	"github.com/petenewcomb/speedup-go/internal/loader"
	"github.com/petenewcomb/speedup-go/internal/render"
	"github.com/petenewcomb/speedup-go/internal/report"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var errSweepsFailed = errors.New("some sweeps failed")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "speedupplot: %v\n", err)
		}
		os.Exit(1)
	}
}

func parseConfig(args []string, stderr io.Writer) (config.Config, error) {
	fs := flag.NewFlagSet("speedupplot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML configuration `file`")
	format := fs.String("format", "", "input format: csv, bench or auto")
	out := fs.String("out", "", "chart output `directory`")
	imageFormat := fs.String("image-format", "", "chart file format: png, svg or pdf")
	dpi := fs.Int("dpi", 0, "PNG resolution")
	algorithms := fs.String("algorithms", "", "comma-separated algorithms to compare")
	top := fs.Int("top", 0, "list the `n` best speedups")
	printReport := fs.Bool("report", false, "print a text summary of every sweep")
	noCharts := fs.Bool("no-charts", false, "skip chart rendering")
	errorBars := fs.Bool("size-error-bars", false, "draw error bars on size sweep charts")
	logLevel := fs.String("log-level", "", "log `level`")
	trace := fs.Bool("trace", false, "write OpenTelemetry spans and metrics to stderr")
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return config.Config{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = *format
		case "out":
			cfg.Render.Dir = *out
		case "image-format":
			cfg.Render.Format = *imageFormat
		case "dpi":
			cfg.Render.DPI = *dpi
		case "algorithms":
			cfg.Algorithms = strings.Split(*algorithms, ",")
		case "top":
			cfg.Top = *top
		case "report":
			cfg.Report = *printReport
		case "no-charts":
			cfg.NoCharts = *noCharts
		case "size-error-bars":
			cfg.Render.SizeSweepErrorBars = *errorBars
		case "log-level":
			cfg.LogLevel = *logLevel
		case "trace":
			cfg.Trace = *trace
		}
	})
	switch fs.NArg() {
	case 0:
	case 1:
		cfg.Input = fs.Arg(0)
	default:
		return config.Config{}, fmt.Errorf("expected at most one input, got %d", fs.NArg())
	}
	return cfg, cfg.Validate()
}

func newLogger(level string, stderr io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(zapcore.AddSync(stderr)),
		lvl,
	)
	return zap.New(core), nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel, stderr)
	if err != nil {
		return err
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if cfg.Trace {
		exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint(), stdouttrace.WithWriter(stderr))
		if err != nil {
			return err
		}
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithSampler(sdktrace.AlwaysSample()),
			sdktrace.WithBatcher(exporter),
		)
		otel.SetTracerProvider(tp)
		defer tp.Shutdown(context.Background())

		enc := json.NewEncoder(stderr)
		enc.SetIndent("", "\t")
		metricExporter, err := stdoutmetric.New(stdoutmetric.WithEncoder(enc))
		if err != nil {
			return err
		}
		mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)))
		otel.SetMeterProvider(mp)
		// Shutdown flushes the final collection.
		defer mp.Shutdown(context.Background())
	}
	ctx, span := otel.Tracer("speedupplot").Start(ctx, "speedupplot")
	defer span.End()

	format, _ := loader.ParseFormat(cfg.Format)
	table, err := loader.LoadFile(cfg.Input, format)
	if err != nil {
		return err
	}
	for _, w := range table.Warnings {
		logger.Warn("Input warning", zap.String("input", cfg.Input), zap.Error(w))
	}
	ds, err := speedup.NewDataset(table.Records)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Input, err)
	}
	logger.Info("Loaded measurements",
		zap.String("input", cfg.Input),
		zap.Int("records", ds.Len()),
		zap.Ints("threads", ds.Threads()),
		zap.Ints("sizes", ds.Sizes()))

	algorithms, _ := cfg.ParsedAlgorithms()
	batch := speedup.Project(ctx, ds, speedup.Options{
		Algorithms: algorithms,
		Sizes:      cfg.Sizes,
		Logger:     logger,
	})

	failed := batch.Failed()
	if !cfg.NoCharts {
		failed += renderBatch(cfg.Render, batch, logger)
	}

	if cfg.Report {
		if err := report.Write(stdout, batch); err != nil {
			return err
		}
	}
	if cfg.Top > 0 {
		if err := report.WriteTop(stdout, report.Top(batch, cfg.Top)); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d", errSweepsFailed, failed)
	}
	return nil
}

// renderBatch draws every successful sweep and returns the number of charts
// that could not be written.
func renderBatch(cfg render.Config, batch *speedup.Batch, logger *zap.Logger) int {
	failed := 0
	record := func(path string, err error, fields ...zap.Field) {
		if err != nil {
			failed++
			logger.Error("Chart failed", append(fields, zap.Error(err))...)
			return
		}
		logger.Info("Chart written", append(fields, zap.String("path", path))...)
	}
	for _, r := range batch.SizeSweeps {
		if r.Err != nil {
			continue
		}
		path, err := render.SizeSweep(cfg, r.Curves)
		record(path, err, zap.Stringer("algorithm", r.Algorithm))
	}
	for _, r := range batch.ThreadSweeps {
		if r.Err != nil {
			continue
		}
		path, err := render.ThreadSweep(cfg, r.Curve)
		record(path, err, zap.Stringer("algorithm", r.Algorithm), zap.Int("size", r.Size))
	}
	return failed
}
