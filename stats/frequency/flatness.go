package frequency

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Flatness returns the spectral flatness (Wiener entropy) of a magnitude
// spectrum in the range 0..1:
//
//	Flatness = exp(mean(log(|X_i|))) / mean(|X_i|)
//
// The DC bin (index 0) is excluded. A zero bin, or fewer than two bins,
// yields 0.
func Flatness(magnitude []float64) float64 {
	if len(magnitude) < 2 {
		return 0
	}
	bins := magnitude[1:]

	logs := make([]float64, len(bins))
	for i, m := range bins {
		if m <= 0 {
			return 0
		}
		logs[i] = math.Log(m)
	}

	n := float64(len(bins))
	arith := floats.Sum(bins) / n
	geo := math.Exp(floats.Sum(logs) / n)
	return min(1, geo/arith)
}
