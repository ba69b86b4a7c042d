package core

import (
	"fmt"
	"math"
)

// Point is an (x, y) coordinate pair. It carries both (x, f(x)) plot points
// and (ω, Δ) filter diagnostics.
type Point struct {
	X float64
	Y float64
}

// Domain is the half-open interval [Start, End) a sample sequence spans.
type Domain struct {
	Start float64
	End   float64
}

// Validate reports ErrInvalidDomain unless Start and End are finite and
// End > Start.
func (d Domain) Validate() error {
	if !IsFinite(d.Start) || !IsFinite(d.End) {
		return fmt.Errorf("%w: non-finite bound [%v, %v)", ErrInvalidDomain, d.Start, d.End)
	}
	if d.End <= d.Start {
		return fmt.Errorf("%w: end %v <= start %v", ErrInvalidDomain, d.End, d.Start)
	}
	return nil
}

// Length returns End - Start.
func (d Domain) Length() float64 {
	return d.End - d.Start
}

// Step returns the grid spacing when the domain is split into n cells.
func (d Domain) Step(n int) float64 {
	if n <= 0 {
		return 0
	}
	return d.Length() / float64(n)
}

// At returns the position of sample i on an n-point grid over the domain.
func (d Domain) At(i, n int) float64 {
	return d.Start + float64(i)*d.Step(n)
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// CheckFinite returns ErrNonFinite naming the first NaN or ±Inf in data.
func CheckFinite(data []float64) error {
	for i, v := range data {
		if !IsFinite(v) {
			return fmt.Errorf("%w at index %d: %v", ErrNonFinite, i, v)
		}
	}
	return nil
}
