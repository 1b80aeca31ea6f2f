// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	speedup "github.com/petenewcomb/speedup-go"
	"github.com/petenewcomb/speedup-go/internal/config"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "speedupplot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	chk := require.New(t)
	cfg := config.Default()
	chk.NoError(cfg.Validate())
	algs, err := cfg.ParsedAlgorithms()
	chk.NoError(err)
	chk.Equal(speedup.Parallel, algs)
	chk.Equal(600, cfg.Render.DPI)
	chk.Equal(10.0, cfg.Render.SizeSweepY.Max)
}

func TestLoadOverridesDefaults(t *testing.T) {
	chk := require.New(t)
	path := writeFile(t, `
input: bench.txt
format: bench
algorithms: [GlobalSum]
sizes: [1000, 10000]
top: 5
render:
  format: svg
  thread_sweep_x: {min: 0, max: 64}
`)
	cfg, err := config.Load(path)
	chk.NoError(err)
	chk.NoError(cfg.Validate())
	chk.Equal("bench.txt", cfg.Input)
	chk.Equal([]int{1000, 10000}, cfg.Sizes)
	chk.Equal(5, cfg.Top)
	chk.Equal("svg", cfg.Render.Format)
	chk.Equal(64.0, cfg.Render.ThreadSweepX.Max)
	// Untouched nested defaults survive.
	chk.Equal(600, cfg.Render.DPI)
	chk.Equal("info", cfg.LogLevel)

	algs, err := cfg.ParsedAlgorithms()
	chk.NoError(err)
	chk.Equal([]speedup.Algorithm{speedup.Global}, algs)
}

func TestLoadEmptyFile(t *testing.T) {
	chk := require.New(t)
	cfg, err := config.Load(writeFile(t, ""))
	chk.NoError(err)
	chk.Equal(config.Default(), cfg)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := config.Load(writeFile(t, "inptu: x.csv\n"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	for name, mutate := range map[string]func(*config.Config){
		"no input":       func(c *config.Config) { c.Input = "" },
		"bad format":     func(c *config.Config) { c.Format = "xml" },
		"bad algorithm":  func(c *config.Config) { c.Algorithms = []string{"Quantum"} },
		"bad log level":  func(c *config.Config) { c.LogLevel = "chatty" },
		"bad size":       func(c *config.Config) { c.Sizes = []int{0} },
		"negative top":   func(c *config.Config) { c.Top = -1 },
		"zero dimension": func(c *config.Config) { c.Render.Height = 0 },
	} {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
