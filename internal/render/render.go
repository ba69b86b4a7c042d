// Package render draws the signal comparison and diagnostic charts as PNG
// files.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/cwbudde/algo-denoise/dsp/bounds"
	"github.com/cwbudde/algo-denoise/dsp/core"
)

// Series colors of the signal comparison chart.
var (
	NoisyColor    color.Color = color.RGBA{R: 220, A: 255}
	OriginalColor color.Color = color.RGBA{G: 160, A: 255}
	FilteredColor color.Color = color.RGBA{R: 200, B: 200, A: 255}

	diagnosticColor color.Color = color.RGBA{B: 220, A: 255}
	originColor     color.Color = color.RGBA{R: 220, A: 255}
)

// Default y range of the signal chart; it frames sin(x)+0.5 plus noise.
const (
	DefaultYMin = 0.45
	DefaultYMax = 1.75
)

var errNoPath = errors.New("render: empty output path")

// Series is one named line of a signal chart. A nil Color picks one from
// the plotutil palette.
type Series struct {
	Name   string
	Points []core.Point
	Color  color.Color
}

// Option configures a chart.
type Option func(*config)

type config struct {
	width, height  vg.Length
	title          string
	xLabel, yLabel string
	yMin, yMax     float64
	autoY          bool
	xMin, xMax     float64
	fixedX         bool
	origin         bool
}

func defaultConfig() config {
	return config{
		width:  8 * vg.Inch,
		height: 5 * vg.Inch,
		xLabel: "x",
		yLabel: "f(x)",
		yMin:   DefaultYMin,
		yMax:   DefaultYMax,
	}
}

func applyOptions(cfg config, opts []Option) config {
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithSize sets the image size. Non-positive values are ignored.
func WithSize(w, h vg.Length) Option {
	return func(cfg *config) {
		if w > 0 && h > 0 {
			cfg.width, cfg.height = w, h
		}
	}
}

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(cfg *config) {
		cfg.title = title
	}
}

// WithLabels sets the axis labels.
func WithLabels(x, y string) Option {
	return func(cfg *config) {
		cfg.xLabel, cfg.yLabel = x, y
	}
}

// WithYRange fixes the y axis of a signal chart. An empty range is ignored.
func WithYRange(lo, hi float64) Option {
	return func(cfg *config) {
		if hi > lo {
			cfg.yMin, cfg.yMax = lo, hi
			cfg.autoY = false
		}
	}
}

// WithAutoY lets the y axis follow the data.
func WithAutoY() Option {
	return func(cfg *config) {
		cfg.autoY = true
	}
}

// WithXRange fixes the x axis of a signal chart, typically to the sampled
// domain. An empty range is ignored.
func WithXRange(lo, hi float64) Option {
	return func(cfg *config) {
		if hi > lo {
			cfg.xMin, cfg.xMax = lo, hi
			cfg.fixedX = true
		}
	}
}

// WithOriginMarker marks (0, 0) on a diagnostics chart. Window-search
// diagnostics are (ω, δ) trade-off points ranked by their distance to the
// origin; least-squares coefficients have no such reference, so the marker
// is off by default.
func WithOriginMarker() Option {
	return func(cfg *config) {
		cfg.origin = true
	}
}

// Signals draws series as lines with a legend and saves the chart to path.
func Signals(path, title string, series []Series, opts ...Option) error {
	if path == "" {
		return errNoPath
	}
	if len(series) == 0 {
		return fmt.Errorf("render: %w: no series", core.ErrEmptyInput)
	}
	cfg := applyOptions(defaultConfig(), append([]Option{WithTitle(title)}, opts...))

	p := plot.New()
	p.Title.Text = cfg.title
	p.X.Label.Text = cfg.xLabel
	p.Y.Label.Text = cfg.yLabel
	p.Add(plotter.NewGrid())

	for i, s := range series {
		if len(s.Points) == 0 {
			return fmt.Errorf("render: series %q: %w", s.Name, core.ErrEmptyInput)
		}
		line, err := plotter.NewLine(toXYs(s.Points))
		if err != nil {
			return fmt.Errorf("render: series %q: %w", s.Name, err)
		}
		line.Color = s.Color
		if line.Color == nil {
			line.Color = plotutil.Color(i)
		}
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(s.Name, line)
	}

	p.Legend.Top = true
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	if !cfg.autoY {
		p.Y.Min, p.Y.Max = cfg.yMin, cfg.yMax
	}
	if cfg.fixedX {
		p.X.Min, p.X.Max = cfg.xMin, cfg.xMax
	}

	return save(p, cfg, path)
}

// Diagnostics draws the (ω, Δ) points as a blue scatter with the axes
// spanning box. With [WithOriginMarker] a red marker is added at the origin
// when box contains it.
func Diagnostics(path string, pts []core.Point, box bounds.Box, opts ...Option) error {
	if path == "" {
		return errNoPath
	}
	if len(pts) == 0 {
		return fmt.Errorf("render: %w: no diagnostics", core.ErrEmptyInput)
	}
	cfg := applyOptions(defaultConfig(), append([]Option{WithLabels("ω", "Δ")}, opts...))

	layers, err := diagnosticLayers(pts, box, cfg)
	if err != nil {
		return err
	}
	p := plot.New()
	p.Title.Text = cfg.title
	p.X.Label.Text = cfg.xLabel
	p.Y.Label.Text = cfg.yLabel
	p.Add(layers...)

	if box.Width() > 0 {
		p.X.Min, p.X.Max = box.Min.X, box.Max.X
	}
	if box.Height() > 0 {
		p.Y.Min, p.Y.Max = box.Min.Y, box.Max.Y
	}

	return save(p, cfg, path)
}

// diagnosticLayers returns the grid, the point scatter and, when enabled and
// inside box, the origin marker.
func diagnosticLayers(pts []core.Point, box bounds.Box, cfg config) ([]plot.Plotter, error) {
	sc, err := plotter.NewScatter(toXYs(pts))
	if err != nil {
		return nil, fmt.Errorf("render: diagnostics: %w", err)
	}
	sc.GlyphStyle.Color = diagnosticColor
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	sc.GlyphStyle.Radius = vg.Points(3)
	layers := []plot.Plotter{plotter.NewGrid(), sc}

	if cfg.origin && box.Contains(core.Point{}) {
		origin, err := plotter.NewScatter(plotter.XYs{{X: 0, Y: 0}})
		if err != nil {
			return nil, fmt.Errorf("render: origin: %w", err)
		}
		origin.GlyphStyle.Color = originColor
		origin.GlyphStyle.Shape = draw.CircleGlyph{}
		origin.GlyphStyle.Radius = vg.Points(4)
		layers = append(layers, origin)
	}
	return layers, nil
}

func save(p *plot.Plot, cfg config, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("render: create output dir: %w", err)
		}
	}
	if err := p.Save(cfg.width, cfg.height, path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}

func toXYs(pts []core.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i].X = pt.X
		xys[i].Y = pt.Y
	}
	return xys
}
