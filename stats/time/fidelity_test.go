package time

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-denoise/dsp/core"
	"github.com/cwbudde/algo-denoise/internal/testutil"
)

const tolerance = 1e-12

func TestCompare(t *testing.T) {
	f, err := Compare([]float64{1, 2, 3, 4}, []float64{2, 2, 2, 6})
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	tests := []struct {
		name      string
		got, want float64
	}{
		{"RMSE", f.RMSE, math.Sqrt(1.5)},
		{"MAE", f.MAE, 1},
		{"MaxAbs", f.MaxAbs, 2},
		{"Bias", f.Bias, 0.5},
		{"Correlation", f.Correlation, 6 / math.Sqrt(60)},
	}
	for _, tt := range tests {
		if math.Abs(tt.got-tt.want) > tolerance {
			t.Fatalf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
	if f.Length != 4 {
		t.Fatalf("Length = %d, want 4", f.Length)
	}
}

func TestCompareIdentical(t *testing.T) {
	x := testutil.Reference(50)
	f, err := Compare(x, x)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if f.RMSE != 0 || f.MAE != 0 || f.MaxAbs != 0 || f.Bias != 0 {
		t.Fatalf("errors of identical input = %+v, want zero", f)
	}
	if math.Abs(f.Correlation-1) > 1e-12 {
		t.Fatalf("Correlation = %v, want 1", f.Correlation)
	}
}

func TestCompareConstantCorrelationNaN(t *testing.T) {
	f, err := Compare(testutil.DC(1, 8), testutil.Reference(8))
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if !math.IsNaN(f.Correlation) {
		t.Fatalf("Correlation = %v, want NaN", f.Correlation)
	}
}

func TestCompareErrors(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want error
	}{
		{"empty", nil, nil, core.ErrEmptyInput},
		{"one empty", []float64{1}, nil, core.ErrEmptyInput},
		{"mismatch", []float64{1, 2}, []float64{1}, core.ErrLengthMismatch},
		{"nan", []float64{1, math.NaN()}, []float64{1, 2}, core.ErrNonFinite},
		{"inf", []float64{1, 2}, []float64{math.Inf(-1), 2}, core.ErrNonFinite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Compare(tt.a, tt.b); !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRMS(t *testing.T) {
	if got := RMS([]float64{3, -3, 3, -3}); got != 3 {
		t.Fatalf("RMS = %v, want 3", got)
	}
	if got := RMS(nil); got != 0 {
		t.Fatalf("RMS(nil) = %v, want 0", got)
	}
}

func TestNoiseReduction(t *testing.T) {
	clean := testutil.DC(0, 4)
	noisy := []float64{1, -1, 1, -1}
	denoised := []float64{0.5, -0.5, 0.5, -0.5}

	got, err := NoiseReduction(clean, noisy, denoised)
	if err != nil {
		t.Fatalf("NoiseReduction() error = %v", err)
	}
	if want := 20 * math.Log10(2); math.Abs(got-want) > tolerance {
		t.Fatalf("NoiseReduction = %v, want %v", got, want)
	}

	got, err = NoiseReduction(clean, noisy, clean)
	if err != nil {
		t.Fatalf("NoiseReduction() error = %v", err)
	}
	if !math.IsInf(got, 1) {
		t.Fatalf("perfect reconstruction = %v, want +Inf", got)
	}

	got, err = NoiseReduction(clean, clean, clean)
	if err != nil || got != 0 {
		t.Fatalf("noiseless = %v, %v, want 0, nil", got, err)
	}
}

func TestNoiseReductionErrors(t *testing.T) {
	_, err := NoiseReduction([]float64{1, 2}, []float64{1, 2}, []float64{1})
	if !errors.Is(err, core.ErrLengthMismatch) {
		t.Fatalf("error = %v, want %v", err, core.ErrLengthMismatch)
	}
}

func TestSNR(t *testing.T) {
	ref := []float64{2, -2, 2, -2}
	est := []float64{2.2, -1.8, 2.2, -1.8}
	got, err := SNR(ref, est)
	if err != nil {
		t.Fatalf("SNR() error = %v", err)
	}
	if want := 20.0; math.Abs(got-want) > 1e-9 {
		t.Fatalf("SNR = %v, want %v", got, want)
	}
	if got, _ := SNR(ref, ref); !math.IsInf(got, 1) {
		t.Fatalf("SNR of identical input = %v, want +Inf", got)
	}
}
