package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-denoise/dsp/core"
)

// ReferenceDomain is [0, π), the interval of the reference scenario.
var ReferenceDomain = core.Domain{Start: 0, End: math.Pi}

// Reference returns sin(x) + 0.5 on an n-point grid over ReferenceDomain.
func Reference(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(ReferenceDomain.At(i, n)) + 0.5
	}
	return out
}

// NoisyReference returns Reference(n) plus uniform noise in
// [-amplitude, amplitude) drawn with a fixed seed.
func NoisyReference(seed int64, amplitude float64, n int) []float64 {
	out := Reference(n)
	noise := DeterministicNoise(seed, amplitude, n)
	for i := range out {
		out[i] += noise[i]
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// CosineSeries evaluates Σ c_k cos(k·π·(x-a)/(b-a)) on an n-point grid over d.
func CosineSeries(coeffs []float64, n int, d core.Domain) []float64 {
	out := make([]float64, n)
	for i := range out {
		phase := math.Pi * (d.At(i, n) - d.Start) / d.Length()
		for k, c := range coeffs {
			out[i] += c * math.Cos(float64(k)*phase)
		}
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
