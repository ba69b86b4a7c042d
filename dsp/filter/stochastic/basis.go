package stochastic

import (
	"math"

	"github.com/cwbudde/algo-denoise/dsp/core"
)

// basisColumns evaluates the first order basis functions at the sample
// positions xs, or at the n uniform grid positions of d when xs is nil.
// Column k holds φ_k(x_i).
func basisColumns(b Basis, order, n int, d core.Domain, xs []float64) [][]float64 {
	at := func(i int) float64 {
		if xs != nil {
			return xs[i]
		}
		return d.At(i, n)
	}

	cols := make([][]float64, order)
	for k := range cols {
		cols[k] = make([]float64, n)
	}

	switch b {
	case BasisLegendre:
		for i := range n {
			// t in [-1, 1] on the domain
			t := 2*(at(i)-d.Start)/d.Length() - 1
			legendre(t, cols, i)
		}
	default:
		for i := range n {
			phase := math.Pi * (at(i) - d.Start) / d.Length()
			for k := range order {
				cols[k][i] = math.Cos(float64(k) * phase)
			}
		}
	}
	return cols
}

// legendre fills cols[k][i] with P_k(t) using Bonnet's recursion.
func legendre(t float64, cols [][]float64, i int) {
	cols[0][i] = 1
	if len(cols) == 1 {
		return
	}
	cols[1][i] = t
	for k := 1; k+1 < len(cols); k++ {
		kf := float64(k)
		cols[k+1][i] = ((2*kf+1)*t*cols[k][i] - kf*cols[k-1][i]) / (kf + 1)
	}
}

// basisFrequency is the ω coordinate reported for basis term k.
func basisFrequency(b Basis, k int, d core.Domain) float64 {
	if b == BasisLegendre {
		return float64(k)
	}
	return float64(k) * math.Pi / d.Length()
}
