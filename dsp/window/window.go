// Package window generates the taper applied before a residual spectrum is
// taken.
package window

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownType is returned for a name or Type value outside the known
// window shapes.
var ErrUnknownType = errors.New("window: unknown type")

// Type identifies a window shape.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
)

// String returns the lower-case name used in configuration files.
func (t Type) String() string {
	switch t {
	case TypeRectangular:
		return "rectangular"
	case TypeHann:
		return "hann"
	case TypeHamming:
		return "hamming"
	case TypeBlackman:
		return "blackman"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Validate returns ErrUnknownType unless t is one of the defined shapes.
func (t Type) Validate() error {
	switch t {
	case TypeRectangular, TypeHann, TypeHamming, TypeBlackman:
		return nil
	}
	return fmt.Errorf("%w: %d", ErrUnknownType, int(t))
}

// ParseType maps a name to a Type. The empty string selects Hann.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "hann", "hanning":
		return TypeHann, nil
	case "rectangular", "rect", "none":
		return TypeRectangular, nil
	case "hamming":
		return TypeHamming, nil
	case "blackman":
		return TypeBlackman, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownType, s)
}

// Generate returns length coefficients of the symmetric window t. A length
// of 1 yields [1]; lengths <= 0 and unknown types yield nil.
func Generate(t Type, length int) []float64 {
	if length <= 0 || t.Validate() != nil {
		return nil
	}

	out := make([]float64, length)
	if length == 1 {
		out[0] = 1
		return out
	}

	den := float64(length - 1)
	for i := range out {
		out[i] = evalWindow(t, 2*math.Pi*float64(i)/den)
	}
	return out
}

// CoherentGain returns the mean of coeffs, the amplitude a windowed
// sinusoid retains. Empty input yields 0.
func CoherentGain(coeffs []float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}
	var sum float64
	for _, c := range coeffs {
		sum += c
	}
	return sum / float64(len(coeffs))
}

// evalWindow evaluates the generalized cosine window at phase 2πi/den.
func evalWindow(t Type, phase float64) float64 {
	switch t {
	case TypeHann:
		return 0.5 - 0.5*math.Cos(phase)
	case TypeHamming:
		return 0.54 - 0.46*math.Cos(phase)
	case TypeBlackman:
		return 0.42 - 0.5*math.Cos(phase) + 0.08*math.Cos(2*phase)
	default: // TypeRectangular
		return 1
	}
}
