// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package render draws speedup sweeps as charts using gonum/plot.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"slices"
	"strings"

	speedup "github.com/petenewcomb/speedup-go"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrNoPoints is returned for a sweep with nothing to plot.
var ErrNoPoints = errors.New("render: no points to plot")

// Limits bounds an axis. A zero Limits leaves the axis range to the data.
type Limits struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

func (l Limits) apply(a *plot.Axis) {
	if l.Min == 0 && l.Max == 0 {
		return
	}
	a.Min = l.Min
	a.Max = l.Max
}

// Config controls chart layout and output.
type Config struct {
	Dir    string  `yaml:"dir"`
	Format string  `yaml:"format"`
	DPI    int     `yaml:"dpi"`
	Width  float64 `yaml:"width"`  // inches
	Height float64 `yaml:"height"` // inches

	// SizeSweepY bounds the speedup axis of size sweep charts.
	SizeSweepY Limits `yaml:"size_sweep_y"`
	// SizeSweepErrorBars draws the error band of each size sweep point in
	// addition to the curve.
	SizeSweepErrorBars bool `yaml:"size_sweep_error_bars"`

	// ThreadSweepX bounds the thread axis of thread sweep charts.
	ThreadSweepX Limits `yaml:"thread_sweep_x"`
}

// DefaultConfig returns the layout the benchmark reports have always used.
func DefaultConfig() Config {
	return Config{
		Dir:          "plots",
		Format:       "png",
		DPI:          600,
		Width:        6.4,
		Height:       4.8,
		SizeSweepY:   Limits{Min: 1, Max: 10},
		ThreadSweepX: Limits{Min: 0, Max: 150},
	}
}

type chart struct {
	Title        string
	XAxisLabel   string
	YAxisLabel   string
	LogX         bool
	LegendTop    bool
	LegendLeft   bool
	FileBasename string
}

func setupPlot(c *chart) *plot.Plot {
	p := plot.New()

	p.Title.Text = c.Title
	p.X.Label.Text = c.XAxisLabel
	p.Y.Label.Text = c.YAxisLabel

	p.Title.TextStyle.Color = color.Gray{128}
	p.X.Color = color.Gray{128}
	p.Y.Color = color.Gray{128}
	p.X.Label.TextStyle.Color = color.Gray{128}
	p.Y.Label.TextStyle.Color = color.Gray{128}
	p.X.Tick.Color = color.Gray{128}
	p.Y.Tick.Color = color.Gray{128}
	p.X.Tick.Label.Color = color.Gray{128}
	p.Y.Tick.Label.Color = color.Gray{128}
	p.Legend.TextStyle.Color = color.Gray{128}

	if c.LogX {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	grid := plotter.NewGrid()
	grid.Vertical.Color = color.Gray{220}
	grid.Horizontal.Color = color.Gray{220}
	p.Add(grid)

	p.Legend.Top = c.LegendTop
	p.Legend.Left = c.LegendLeft
	p.Legend.Padding = 1 * vg.Millimeter
	p.BackgroundColor = color.Transparent

	return p
}

// seriesColors returns n colors from the qualitative "Paired" palette,
// cycling when n exceeds the palette size.
func seriesColors(n int) ([]color.Color, error) {
	palette, err := brewer.GetPalette(brewer.TypeQualitative, "Paired", min(max(n, 3), 12))
	if err != nil {
		return nil, err
	}
	base := palette.Colors()
	colors := make([]color.Color, n)
	for i := range colors {
		colors[i] = base[i%len(base)]
	}
	return colors, nil
}

// errorPoints adapts speedup points to the plotter XYer and YErrorer
// interfaces.
type errorPoints struct {
	plotter.XYs
	plotter.YErrors
}

func newErrorPoints(points []speedup.Point) errorPoints {
	ep := errorPoints{
		XYs:     make(plotter.XYs, len(points)),
		YErrors: make(plotter.YErrors, len(points)),
	}
	for i, pt := range points {
		ep.XYs[i].X = float64(pt.X)
		ep.XYs[i].Y = pt.Ratio
		ep.YErrors[i].Low = pt.ErrLow
		ep.YErrors[i].High = pt.ErrHigh
	}
	return ep
}

// SizeSweep draws one line per thread count against dataset size and returns
// the path of the written file.
func SizeSweep(cfg Config, sc *speedup.SizeCurves) (string, error) {
	c := &chart{
		Title:        fmt.Sprintf("%v Speedup Proportional to %v", sc.Algorithm, speedup.Serial),
		XAxisLabel:   "Dataset Size (Number of Floats)",
		YAxisLabel:   "Speedup",
		LogX:         true,
		LegendTop:    true,
		LegendLeft:   true,
		FileBasename: sc.Algorithm.String(),
	}
	if !slices.ContainsFunc(sc.Curves, func(c speedup.Curve) bool { return len(c.Points) > 0 }) {
		return "", fmt.Errorf("%w: %v size sweep", ErrNoPoints, sc.Algorithm)
	}
	p := setupPlot(c)

	colors, err := seriesColors(len(sc.Curves))
	if err != nil {
		return "", err
	}
	for i, curve := range sc.Curves {
		if len(curve.Points) == 0 {
			continue
		}
		ep := newErrorPoints(curve.Points)
		line, err := plotter.NewLine(ep.XYs)
		if err != nil {
			return "", err
		}
		line.Color = colors[i]
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(curve.Label, line)

		if cfg.SizeSweepErrorBars {
			bars, err := plotter.NewYErrorBars(ep)
			if err != nil {
				return "", err
			}
			bars.Color = colors[i]
			bars.CapWidth = vg.Points(5)
			p.Add(bars)
		}
	}
	if p.X.Min >= p.X.Max {
		// A single size; the log scale needs a positive, non-empty range.
		p.X.Min /= 2
		p.X.Max *= 2
	}
	cfg.SizeSweepY.apply(&p.Y)

	return savePlot(cfg, c, p)
}

// ThreadSweep draws the speedup at each thread count for a single dataset
// size and returns the path of the written file. Each thread count is its
// own legend entry.
func ThreadSweep(cfg Config, tc *speedup.ThreadCurve) (string, error) {
	c := &chart{
		Title: fmt.Sprintf("%v Speedup Proportional to %v\n%.0e Elements",
			tc.Algorithm, speedup.Serial, float64(tc.Size)),
		XAxisLabel:   "Number of threads",
		YAxisLabel:   "Speedup",
		FileBasename: fmt.Sprintf("%v_%d_elements", tc.Algorithm, tc.Size),
	}
	if len(tc.Points) == 0 {
		return "", fmt.Errorf("%w: %v thread sweep at size %d", ErrNoPoints, tc.Algorithm, tc.Size)
	}
	p := setupPlot(c)

	colors, err := seriesColors(len(tc.Points))
	if err != nil {
		return "", err
	}
	for i, pt := range tc.Points {
		ep := newErrorPoints([]speedup.Point{pt})
		bars, err := plotter.NewYErrorBars(ep)
		if err != nil {
			return "", err
		}
		bars.Color = colors[i]
		bars.Width = vg.Points(1)
		bars.CapWidth = vg.Points(5)
		dot, err := plotter.NewScatter(ep.XYs)
		if err != nil {
			return "", err
		}
		dot.GlyphStyle.Color = colors[i]
		dot.GlyphStyle.Shape = draw.CircleGlyph{}
		dot.GlyphStyle.Radius = vg.Points(1.5)
		p.Add(bars, dot)
		p.Legend.Add(speedup.ThreadsLabel(pt.X), dot)
	}
	cfg.ThreadSweepX.apply(&p.X)

	return savePlot(cfg, c, p)
}

func savePlot(cfg Config, c *chart, p *plot.Plot) (string, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return "", errors.New("render: chart dimensions must be positive")
	}
	format := strings.ToLower(strings.TrimPrefix(cfg.Format, "."))
	if format == "" {
		format = "png"
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(cfg.Dir, c.FileBasename+"."+format)
	w := vg.Length(cfg.Width) * vg.Inch
	h := vg.Length(cfg.Height) * vg.Inch

	if format != "png" || cfg.DPI <= 0 {
		if err := p.Save(w, h, path); err != nil {
			return "", err
		}
		return path, nil
	}

	canvas := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(cfg.DPI))
	p.Draw(draw.New(canvas))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := (vgimg.PngCanvas{Canvas: canvas}).WriteTo(f); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}
