package conv

import (
	"errors"
	"math"
	"testing"
)

func TestDirect(t *testing.T) {
	tests := []struct {
		name     string
		a        []float64
		b        []float64
		expected []float64
	}{
		{
			name:     "simple 3x3",
			a:        []float64{1, 2, 3},
			b:        []float64{1, 1, 1},
			expected: []float64{1, 3, 6, 5, 3},
		},
		{
			name:     "impulse",
			a:        []float64{1, 2, 3, 4, 5},
			b:        []float64{1},
			expected: []float64{1, 2, 3, 4, 5},
		},
		{
			name:     "delayed impulse",
			a:        []float64{1, 2, 3, 4, 5},
			b:        []float64{0, 0, 1},
			expected: []float64{0, 0, 1, 2, 3, 4, 5},
		},
		{
			name:     "symmetric",
			a:        []float64{1, 2, 1},
			b:        []float64{1, 2, 1},
			expected: []float64{1, 4, 6, 4, 1},
		},
		{
			name:     "five tap kernel",
			a:        []float64{1, 0, 0, 2},
			b:        []float64{1, 2, 3, 2, 1},
			expected: []float64{1, 2, 3, 4, 5, 6, 4, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Direct(tt.a, tt.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(result) != len(tt.expected) {
				t.Fatalf("length mismatch: got %d, expected %d", len(result), len(tt.expected))
			}

			for i := range result {
				if math.Abs(result[i]-tt.expected[i]) > 1e-10 {
					t.Errorf("result[%d] = %v, expected %v", i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestDirectErrors(t *testing.T) {
	_, err := Direct([]float64{}, []float64{1, 2})
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}

	_, err = Direct([]float64{1, 2}, []float64{})
	if !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("expected ErrEmptyKernel, got %v", err)
	}

	err = DirectTo(make([]float64, 3), []float64{1, 2}, []float64{1, 2})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestConvolveMode(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{1, 1, 1}

	tests := []struct {
		mode     Mode
		expected []float64
	}{
		{ModeFull, []float64{1, 3, 6, 9, 12, 9, 5}},
		{ModeSame, []float64{3, 6, 9, 12, 9}},
		{ModeValid, []float64{6, 9, 12}},
	}

	for _, tt := range tests {
		result, err := ConvolveMode(a, b, tt.mode)
		if err != nil {
			t.Fatalf("mode %d: unexpected error: %v", tt.mode, err)
		}
		if len(result) != len(tt.expected) {
			t.Fatalf("mode %d: len = %d, want %d", tt.mode, len(result), len(tt.expected))
		}
		for i := range result {
			if math.Abs(result[i]-tt.expected[i]) > 1e-12 {
				t.Errorf("mode %d: result[%d] = %v, want %v", tt.mode, i, result[i], tt.expected[i])
			}
		}
	}
}

// A same-mode pass of ones through a kernel yields the kernel mass that
// overlaps each output position.
func TestConvolveModeSameEdgeMass(t *testing.T) {
	ones := []float64{1, 1, 1, 1, 1, 1}
	w := []float64{0.1, 0.2, 0.4, 0.2, 0.1}

	got, err := ConvolveMode(ones, w, ModeSame)
	if err != nil {
		t.Fatalf("ConvolveMode() error = %v", err)
	}
	want := []float64{0.7, 0.9, 1, 1, 0.9, 0.7}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

// The vectorized and scalar kernels must agree.
func TestDirectSIMDMatchesScalar(t *testing.T) {
	a := make([]float64, 37)
	for i := range a {
		a[i] = math.Sin(float64(i) * 0.37)
	}
	b := []float64{0.05, 0.1, 0.2, 0.3, 0.2, 0.1, 0.05}

	got := make([]float64, len(a)+len(b)-1)
	if err := DirectTo(got, a, b); err != nil {
		t.Fatalf("DirectTo() error = %v", err)
	}
	want := make([]float64, len(got))
	directToScalar(want, a, b, len(a), len(b))

	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
