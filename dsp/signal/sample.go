package signal

import (
	"fmt"

	"github.com/cwbudde/algo-denoise/dsp/core"
)

// Func is a pure scalar function sampled by [Sample].
type Func func(x float64) float64

// Sample evaluates f at start, start+step, start+2*step, ... while the
// position stays strictly below d.End, with step = (End-Start)/count.
//
// Positions are accumulated in floating point, so the result may hold
// count-1, count or count+1 samples. Callers must size downstream work from
// len(values). f is evaluated once per position; values[i] == points[i].Y.
func Sample(f Func, d core.Domain, count int) ([]float64, []core.Point, error) {
	if f == nil {
		return nil, nil, fmt.Errorf("signal: %w", core.ErrNilFunc)
	}
	if err := d.Validate(); err != nil {
		return nil, nil, fmt.Errorf("signal: %w", err)
	}
	if count <= 0 {
		return nil, nil, fmt.Errorf("signal: %w: %d", core.ErrInvalidCount, count)
	}

	step := d.Step(count)
	values := make([]float64, 0, count+1)
	points := make([]core.Point, 0, count+1)
	for x := d.Start; x < d.End && len(values) <= count; x += step {
		y := f(x)
		values = append(values, y)
		points = append(points, core.Point{X: x, Y: y})
	}
	return values, points, nil
}

// Positions returns the x coordinate of every point, the grid a [Sample]
// call actually used.
func Positions(points []core.Point) []float64 {
	xs := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
	}
	return xs
}

// Evaluate samples f on the grid of an existing point sequence, returning
// (x, f(x)) for every x in points. It is used to draw the clean reference
// next to a noisy sampling.
func Evaluate(f Func, points []core.Point) ([]core.Point, error) {
	if f == nil {
		return nil, fmt.Errorf("signal: %w", core.ErrNilFunc)
	}
	out := make([]core.Point, len(points))
	for i, p := range points {
		out[i] = core.Point{X: p.X, Y: f(p.X)}
	}
	return out, nil
}
