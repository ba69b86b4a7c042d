// Package frequency measures the spectral content of what a filter removed.
//
// A denoiser that only strips noise leaves a residual (noisy - denoised)
// with a flat spectrum. Structure the filter wrongly removed shows up as
// peaks, which lowers [Flatness].
package frequency

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-denoise/dsp/core"
	"github.com/cwbudde/algo-denoise/dsp/window"
)

// Option configures [Spectrum] and [Residual].
type Option func(*config)

type config struct {
	taper window.Type
}

// WithTaper selects the window applied before the transform. Hann is the
// default.
func WithTaper(t window.Type) Option {
	return func(cfg *config) {
		cfg.taper = t
	}
}

// Spectrum returns the one-sided magnitude spectrum of data. The input is
// tapered, zero padded to a power of two and transformed; bin k is reported
// as (k/size, |X_k|·2/(N·G)) with N = len(data) and G the coherent gain of
// the taper, DC and Nyquist halved. A bin-centred sinusoid of amplitude A
// reads close to A under every taper. X is the normalized frequency in
// cycles per sample. An unknown taper yields window.ErrUnknownType.
func Spectrum(data []float64, opts ...Option) ([]core.Point, error) {
	cfg := config{taper: window.TypeHann}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := cfg.taper.Validate(); err != nil {
		return nil, fmt.Errorf("frequency: %w", err)
	}
	n := len(data)
	if n == 0 {
		return nil, fmt.Errorf("frequency: %w", core.ErrEmptyInput)
	}
	if err := core.CheckFinite(data); err != nil {
		return nil, fmt.Errorf("frequency: %w", err)
	}

	size := max(2, nextPowerOf2(n))
	coeffs := window.Generate(cfg.taper, n)
	in := make([]complex128, size)
	for i, v := range data {
		in[i] = complex(v*coeffs[i], 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("frequency: fft plan of size %d: %w", size, err)
	}
	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("frequency: forward transform: %w", err)
	}

	bins := size/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}
	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)
	scale := 2 / float64(n)
	// Hann and Blackman of length 2 are all zeros.
	if g := window.CoherentGain(coeffs); g > 0 {
		scale /= g
	}
	vecmath.ScaleBlock(mag, mag, scale)
	mag[0] /= 2
	mag[bins-1] /= 2

	spec := make([]core.Point, bins)
	for k, m := range mag {
		spec[k] = core.Point{X: float64(k) / float64(size), Y: m}
	}
	return spec, nil
}

// Residual returns the magnitude spectrum of noisy - denoised.
func Residual(noisy, denoised []float64, opts ...Option) ([]core.Point, error) {
	if len(noisy) == 0 || len(denoised) == 0 {
		return nil, fmt.Errorf("frequency: %w", core.ErrEmptyInput)
	}
	if len(noisy) != len(denoised) {
		return nil, fmt.Errorf("frequency: %w: %d != %d", core.ErrLengthMismatch, len(noisy), len(denoised))
	}
	r := make([]float64, len(noisy))
	floats.SubTo(r, noisy, denoised)
	return Spectrum(r, opts...)
}

// Magnitudes extracts the Y values of a spectrum.
func Magnitudes(spec []core.Point) []float64 {
	out := make([]float64, len(spec))
	for i, p := range spec {
		out[i] = p.Y
	}
	return out
}

// Peak returns the bin with the largest magnitude, ignoring DC. A spectrum
// of fewer than two bins returns its only point or the zero Point.
func Peak(spec []core.Point) core.Point {
	if len(spec) < 2 {
		if len(spec) == 1 {
			return spec[0]
		}
		return core.Point{}
	}
	mag := Magnitudes(spec[1:])
	return spec[1+floats.MaxIdx(mag)]
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
