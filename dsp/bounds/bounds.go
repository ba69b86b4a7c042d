// Package bounds computes padded axis ranges for plotting coordinate
// sequences such as filter diagnostics.
package bounds

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-denoise/dsp/core"
)

// padding is the fraction of each extreme's magnitude added as margin.
const padding = 0.1

// Box is an axis-aligned plot range.
type Box struct {
	Min core.Point
	Max core.Point
}

// Padded returns the plot range for points.
//
// The upper corner is the component-wise maximum grown by 10% of its
// magnitude. The lower corner is anchored at -10% of the magnitude of the
// component-wise minimum, not below the minimum itself:
//
//	Min = (-0.1*|min.x|, -0.1*|min.y|)
//	Max = (max.x + 0.1*|max.x|, max.y + 0.1*|max.y|)
//
// A negative minimum therefore lies outside the box.
func Padded(points []core.Point) (Box, error) {
	if len(points) == 0 {
		return Box{}, fmt.Errorf("bounds: %w", core.ErrEmptyInput)
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		if !core.IsFinite(p.X) || !core.IsFinite(p.Y) {
			return Box{}, fmt.Errorf("bounds: %w at index %d: %v", core.ErrNonFinite, i, p)
		}
		xs[i] = p.X
		ys[i] = p.Y
	}

	minX, minY := floats.Min(xs), floats.Min(ys)
	maxX, maxY := floats.Max(xs), floats.Max(ys)

	return Box{
		Min: core.Point{X: -padding * math.Abs(minX), Y: -padding * math.Abs(minY)},
		Max: core.Point{X: maxX + padding*math.Abs(maxX), Y: maxY + padding*math.Abs(maxY)},
	}, nil
}

// Width returns Max.X - Min.X.
func (b Box) Width() float64 { return b.Max.X - b.Min.X }

// Height returns Max.Y - Min.Y.
func (b Box) Height() float64 { return b.Max.Y - b.Min.Y }

// Contains reports whether p lies inside the closed box.
func (b Box) Contains(p core.Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}
