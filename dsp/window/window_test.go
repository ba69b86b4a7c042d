package window

import (
	"errors"
	"math"
	"testing"
)

func TestGenerateSymmetric(t *testing.T) {
	for _, typ := range []Type{TypeRectangular, TypeHann, TypeHamming, TypeBlackman} {
		for _, n := range []int{2, 7, 64} {
			w := Generate(typ, n)
			if len(w) != n {
				t.Fatalf("%v: len = %d, want %d", typ, len(w), n)
			}
			for i := range w {
				if math.Abs(w[i]-w[n-1-i]) > 1e-12 {
					t.Fatalf("%v n=%d: w[%d] = %v, w[%d] = %v", typ, n, i, w[i], n-1-i, w[n-1-i])
				}
				if w[i] < -1e-12 || w[i] > 1+1e-12 {
					t.Fatalf("%v n=%d: w[%d] = %v out of [0, 1]", typ, n, i, w[i])
				}
			}
		}
	}
}

func TestGenerateHannEnds(t *testing.T) {
	w := Generate(TypeHann, 9)
	if math.Abs(w[0]) > 1e-15 || math.Abs(w[8]) > 1e-15 {
		t.Fatalf("ends = %v, %v, want 0", w[0], w[8])
	}
	if math.Abs(w[4]-1) > 1e-15 {
		t.Fatalf("centre = %v, want 1", w[4])
	}
}

func TestCoherentGain(t *testing.T) {
	tests := []struct {
		typ  Type
		n    int
		want float64
	}{
		{TypeRectangular, 16, 1},
		// Σ cos(2πi/(n-1)) over i = 0..n-1 is 1, so the mean is 0.5 - 0.5/n.
		{TypeHann, 128, 0.5 - 0.5/128},
	}
	for _, tt := range tests {
		if got := CoherentGain(Generate(tt.typ, tt.n)); math.Abs(got-tt.want) > 1e-12 {
			t.Fatalf("%v: coherent gain = %v, want %v", tt.typ, got, tt.want)
		}
	}
	if got := CoherentGain(nil); got != 0 {
		t.Fatalf("CoherentGain(nil) = %v, want 0", got)
	}
}

func TestGenerateDegenerate(t *testing.T) {
	if w := Generate(TypeHann, 0); w != nil {
		t.Fatalf("Generate(0) = %v, want nil", w)
	}
	if w := Generate(TypeHann, 1); len(w) != 1 || w[0] != 1 {
		t.Fatalf("Generate(1) = %v, want [1]", w)
	}
	if w := Generate(Type(99), 8); w != nil {
		t.Fatalf("Generate(Type(99)) = %v, want nil", w)
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in   string
		want Type
	}{
		{"", TypeHann},
		{"Hann", TypeHann},
		{"none", TypeRectangular},
		{"hamming", TypeHamming},
		{" blackman ", TypeBlackman},
	}
	for _, tt := range tests {
		got, err := ParseType(tt.in)
		if err != nil {
			t.Fatalf("ParseType(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseType(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if back, _ := ParseType(got.String()); back != got {
			t.Fatalf("round trip of %v = %v", got, back)
		}
	}
	if _, err := ParseType("kaiser"); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("ParseType(kaiser) error = %v, want %v", err, ErrUnknownType)
	}
}

func TestValidate(t *testing.T) {
	for _, typ := range []Type{TypeRectangular, TypeHann, TypeHamming, TypeBlackman} {
		if err := typ.Validate(); err != nil {
			t.Fatalf("%v.Validate() error = %v", typ, err)
		}
	}
	for _, typ := range []Type{-1, 4, 99} {
		if err := typ.Validate(); !errors.Is(err, ErrUnknownType) {
			t.Fatalf("%v.Validate() error = %v, want %v", typ, err, ErrUnknownType)
		}
	}
}
