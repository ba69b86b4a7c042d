package stochastic

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-denoise/dsp/core"
)

// Result is the full output of [Apply].
type Result struct {
	// Denoised has the length of the input samples.
	Denoised []float64
	// Diagnostics are the ordered (ω, Δ) pairs describing the fit.
	Diagnostics []core.Point

	Method Method
	Order  int

	// Coefficients are the fitted basis weights (least squares only).
	Coefficients []float64

	// Weights are the winning window weights, Lambda the λ they were found
	// at, and Distance their distance to the ideal (0, 0) (window search only).
	Weights  []float64
	Lambda   float64
	Distance float64

	// ResidualRMS is the RMS of Denoised - samples.
	ResidualRMS float64
}

// Filter denoises samples spanning domain d with a filter of the given order
// and returns the denoised sequence and its diagnostics.
func Filter(samples []float64, order int, d core.Domain, opts ...Option) ([]float64, []core.Point, error) {
	res, err := Apply(samples, order, d, opts...)
	if err != nil {
		return nil, nil, err
	}
	return res.Denoised, res.Diagnostics, nil
}

// Apply runs the configured estimator.
//
// Errors, in the order they are checked: core.ErrEmptyInput,
// core.ErrNonFinite, core.ErrInvalidDomain, core.ErrInvalidOrder, the
// [WithPositions] checks (core.ErrLengthMismatch, core.ErrNonFinite), then
// core.ErrIllConditioned when order is too large for len(samples) or the
// regression is singular. samples is never modified.
func Apply(samples []float64, order int, d core.Domain, opts ...Option) (Result, error) {
	cfg := applyOptions(opts)
	if err := validate(samples, order, d); err != nil {
		return Result{}, err
	}
	if err := validatePositions(cfg.positions, len(samples)); err != nil {
		return Result{}, err
	}

	var (
		res Result
		err error
	)
	switch cfg.method {
	case MethodLeastSquares:
		res, err = leastSquares(samples, order, d, cfg)
	case MethodWindowSearch:
		res, err = windowSearch(samples, order, d, cfg)
	default:
		return Result{}, fmt.Errorf("stochastic: unsupported method %v", cfg.method)
	}
	if err != nil {
		return Result{}, err
	}

	res.Method = cfg.method
	res.Order = order
	res.ResidualRMS = residualRMS(samples, res.Denoised)
	return res, nil
}

func validate(samples []float64, order int, d core.Domain) error {
	if len(samples) == 0 {
		return fmt.Errorf("stochastic: %w", core.ErrEmptyInput)
	}
	if err := core.CheckFinite(samples); err != nil {
		return fmt.Errorf("stochastic: %w", err)
	}
	if err := d.Validate(); err != nil {
		return fmt.Errorf("stochastic: %w", err)
	}
	if order <= 0 {
		return fmt.Errorf("stochastic: %w: %d", core.ErrInvalidOrder, order)
	}
	return nil
}

func validatePositions(xs []float64, n int) error {
	if xs == nil {
		return nil
	}
	if len(xs) != n {
		return fmt.Errorf("stochastic: %w: %d positions for %d samples", core.ErrLengthMismatch, len(xs), n)
	}
	if err := core.CheckFinite(xs); err != nil {
		return fmt.Errorf("stochastic: positions: %w", err)
	}
	return nil
}

func residualRMS(samples, denoised []float64) float64 {
	var sum float64
	for i, v := range samples {
		e := denoised[i] - v
		sum += e * e
	}
	return math.Sqrt(sum / float64(len(samples)))
}
