package render

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-denoise/dsp/bounds"
	"github.com/cwbudde/algo-denoise/dsp/core"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func requirePNG(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Fatalf("%s is not a PNG (%d bytes)", path, len(data))
	}
}

func line(n int, f func(float64) float64) []core.Point {
	pts := make([]core.Point, n)
	for i := range pts {
		x := math.Pi * float64(i) / float64(n)
		pts[i] = core.Point{X: x, Y: f(x)}
	}
	return pts
}

func TestSignals(t *testing.T) {
	path := filepath.Join(t.TempDir(), "task1.png")
	clean := line(50, func(x float64) float64 { return math.Sin(x) + 0.5 })
	noisy := line(50, func(x float64) float64 { return math.Sin(x) + 0.5 + 0.1*math.Cos(13*x) })

	err := Signals(path, "order 3", []Series{
		{Name: "noisy", Points: noisy, Color: NoisyColor},
		{Name: "original", Points: clean, Color: OriginalColor},
		{Name: "filtered", Points: clean},
	}, WithXRange(0, math.Pi), WithSize(4*vg.Inch, 3*vg.Inch))
	if err != nil {
		t.Fatalf("Signals() error = %v", err)
	}
	requirePNG(t, path)
}

func TestSignalsCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "spectrum.png")
	err := Signals(path, "", []Series{{Name: "a", Points: line(10, math.Cos)}}, WithAutoY())
	if err != nil {
		t.Fatalf("Signals() error = %v", err)
	}
	requirePNG(t, path)
}

func TestSignalsErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name   string
		path   string
		series []Series
	}{
		{"no path", "", []Series{{Name: "a", Points: line(3, math.Sin)}}},
		{"no series", filepath.Join(dir, "a.png"), nil},
		{"empty series", filepath.Join(dir, "b.png"), []Series{{Name: "a"}}},
		{"nan", filepath.Join(dir, "c.png"), []Series{{Name: "a", Points: []core.Point{{X: 0, Y: math.NaN()}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Signals(tt.path, "t", tt.series); err == nil {
				t.Fatal("Signals() error = nil")
			}
		})
	}
}

func TestDiagnostics(t *testing.T) {
	pts := []core.Point{{X: 0, Y: 1.13}, {X: 1, Y: -0.01}, {X: 2, Y: -0.42}}
	box, err := bounds.Padded(pts)
	if err != nil {
		t.Fatalf("Padded() error = %v", err)
	}
	path := filepath.Join(t.TempDir(), "task1_coeffs.png")
	if err := Diagnostics(path, pts, box, WithTitle("order 3")); err != nil {
		t.Fatalf("Diagnostics() error = %v", err)
	}
	requirePNG(t, path)
}

func TestDiagnosticsOriginMarker(t *testing.T) {
	pts := []core.Point{{X: 0.2, Y: 0.3}, {X: 0.1, Y: 0.5}, {X: 0.05, Y: 0.9}}
	box, err := bounds.Padded(pts)
	if err != nil {
		t.Fatalf("Padded() error = %v", err)
	}

	tests := []struct {
		name string
		opts []Option
		box  bounds.Box
		want int
	}{
		{"least squares", nil, box, 2},
		{"window search", []Option{WithOriginMarker()}, box, 3},
		{"origin outside box", []Option{WithOriginMarker()}, bounds.Box{Min: core.Point{X: 1, Y: 1}, Max: core.Point{X: 2, Y: 2}}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layers, err := diagnosticLayers(pts, tt.box, applyOptions(defaultConfig(), tt.opts))
			if err != nil {
				t.Fatalf("diagnosticLayers() error = %v", err)
			}
			if len(layers) != tt.want {
				t.Fatalf("len(layers) = %d, want %d", len(layers), tt.want)
			}
		})
	}

	path := filepath.Join(t.TempDir(), "task1_coeffs.png")
	if err := Diagnostics(path, pts, box, WithOriginMarker()); err != nil {
		t.Fatalf("Diagnostics() error = %v", err)
	}
	requirePNG(t, path)
}

func TestDiagnosticsErrors(t *testing.T) {
	if err := Diagnostics(filepath.Join(t.TempDir(), "x.png"), nil, bounds.Box{}); !errors.Is(err, core.ErrEmptyInput) {
		t.Fatalf("error = %v, want %v", err, core.ErrEmptyInput)
	}
	if err := Diagnostics("", []core.Point{{}}, bounds.Box{}); err == nil {
		t.Fatal("Diagnostics() with empty path error = nil")
	}
}

func TestOptions(t *testing.T) {
	cfg := applyOptions(defaultConfig(), []Option{
		WithSize(-1, 2),
		WithYRange(2, 1),
		WithXRange(3, 3),
		nil,
	})
	if cfg.width != 8*vg.Inch || cfg.height != 5*vg.Inch {
		t.Fatalf("size = %v x %v, want defaults", cfg.width, cfg.height)
	}
	if cfg.yMin != DefaultYMin || cfg.yMax != DefaultYMax {
		t.Fatalf("y range = [%v, %v], want defaults", cfg.yMin, cfg.yMax)
	}
	if cfg.fixedX {
		t.Fatal("empty x range was applied")
	}

	cfg = applyOptions(defaultConfig(), []Option{WithAutoY(), WithYRange(-1, 1)})
	if cfg.autoY || cfg.yMin != -1 || cfg.yMax != 1 {
		t.Fatalf("cfg = %+v, want fixed [-1, 1]", cfg)
	}
}
