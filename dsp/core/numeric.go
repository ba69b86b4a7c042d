package core

import "math"

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps, using a
// relative tolerance for large magnitudes.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// RatioToDB converts an amplitude ratio to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func RatioToDB(ratio float64) float64 {
	if ratio < 0 {
		return math.NaN()
	}

	if ratio == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(ratio)
}
