// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package config holds the speedupplot settings, read from an optional YAML
// file and overridden by command-line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	speedup "github.com/petenewcomb/speedup-go"
	"github.com/petenewcomb/speedup-go/internal/loader"
	"github.com/petenewcomb/speedup-go/internal/render"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Input  string `yaml:"input"`
	Format string `yaml:"format"`

	// Algorithms to compare against the serial baseline. Empty means
	// every parallel algorithm.
	Algorithms []string `yaml:"algorithms"`

	// Sizes restricts thread sweeps. Empty means every size in the input.
	Sizes []int `yaml:"sizes"`

	// Top is the number of best speedups to list. Zero disables the
	// ranking.
	Top int `yaml:"top"`

	// Report prints the text summary to standard output.
	Report bool `yaml:"report"`

	// NoCharts skips rendering.
	NoCharts bool `yaml:"no_charts"`

	LogLevel string `yaml:"log_level"`
	Trace    bool   `yaml:"trace"`

	Render render.Config `yaml:"render"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Input:    "results/log.csv",
		LogLevel: "info",
		Render:   render.DefaultConfig(),
	}
}

// Load reads a YAML file over the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParsedAlgorithms resolves the configured algorithm labels.
func (c *Config) ParsedAlgorithms() ([]speedup.Algorithm, error) {
	if len(c.Algorithms) == 0 {
		return speedup.Parallel, nil
	}
	algs := make([]speedup.Algorithm, 0, len(c.Algorithms))
	for _, label := range c.Algorithms {
		a, err := speedup.ParseAlgorithm(label)
		if err != nil {
			return nil, err
		}
		algs = append(algs, a)
	}
	return algs, nil
}

// Validate checks the settings that are not otherwise checked at use.
func (c *Config) Validate() error {
	if c.Input == "" {
		return errors.New("no input file")
	}
	if _, err := loader.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := c.ParsedAlgorithms(); err != nil {
		return err
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	for _, s := range c.Sizes {
		if s < 1 {
			return fmt.Errorf("size %d must be at least 1", s)
		}
	}
	if c.Top < 0 {
		return fmt.Errorf("top %d must not be negative", c.Top)
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("chart size %gx%g must be positive", c.Render.Width, c.Render.Height)
	}
	return nil
}
