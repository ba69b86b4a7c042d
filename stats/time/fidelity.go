// Package time compares denoised sequences against a reference in the
// sample domain.
package time

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-denoise/dsp/core"
)

// Fidelity describes how closely an estimate tracks a reference.
type Fidelity struct {
	Length int
	RMSE   float64 // sqrt(mean((estimate - reference)²))
	MAE    float64 // mean(|estimate - reference|)
	MaxAbs float64 // max(|estimate - reference|)
	Bias   float64 // mean(estimate - reference)

	// Correlation is Pearson's r between reference and estimate. It is NaN
	// when either sequence is constant.
	Correlation float64
}

// Compare returns the fidelity of estimate against reference.
func Compare(reference, estimate []float64) (Fidelity, error) {
	if err := validatePair(reference, estimate); err != nil {
		return Fidelity{}, err
	}

	n := float64(len(reference))
	e := make([]float64, len(reference))
	floats.SubTo(e, estimate, reference)

	return Fidelity{
		Length:      len(e),
		RMSE:        math.Sqrt(floats.Dot(e, e) / n),
		MAE:         floats.Norm(e, 1) / n,
		MaxAbs:      floats.Norm(e, math.Inf(1)),
		Bias:        stat.Mean(e, nil),
		Correlation: stat.Correlation(reference, estimate, nil),
	}, nil
}

// RMS returns the root mean square of x, or 0 for empty input.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return math.Sqrt(floats.Dot(x, x) / float64(len(x)))
}

// NoiseReduction returns, in dB, how much closer denoised is to clean than
// noisy was: 20·log10(rms(noisy-clean) / rms(denoised-clean)). Positive
// values mean the filter removed noise. A perfect reconstruction yields +Inf.
func NoiseReduction(clean, noisy, denoised []float64) (float64, error) {
	before, err := Compare(clean, noisy)
	if err != nil {
		return 0, fmt.Errorf("noisy: %w", err)
	}
	after, err := Compare(clean, denoised)
	if err != nil {
		return 0, fmt.Errorf("denoised: %w", err)
	}
	if after.RMSE == 0 {
		if before.RMSE == 0 {
			return 0, nil
		}
		return math.Inf(1), nil
	}
	return core.RatioToDB(before.RMSE / after.RMSE), nil
}

// SNR returns the signal-to-error ratio of estimate in dB:
// 20·log10(rms(reference) / rms(estimate-reference)).
func SNR(reference, estimate []float64) (float64, error) {
	f, err := Compare(reference, estimate)
	if err != nil {
		return 0, err
	}
	if f.RMSE == 0 {
		return math.Inf(1), nil
	}
	return core.RatioToDB(RMS(reference) / f.RMSE), nil
}

func validatePair(a, b []float64) error {
	if len(a) == 0 || len(b) == 0 {
		return fmt.Errorf("timestats: %w", core.ErrEmptyInput)
	}
	if len(a) != len(b) {
		return fmt.Errorf("timestats: %w: %d != %d", core.ErrLengthMismatch, len(a), len(b))
	}
	if err := core.CheckFinite(a); err != nil {
		return fmt.Errorf("timestats: %w", err)
	}
	if err := core.CheckFinite(b); err != nil {
		return fmt.Errorf("timestats: %w", err)
	}
	return nil
}
