package stochastic

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-denoise/dsp/core"
)

const (
	// minSamplesPerTerm bounds order to len(samples)/2.
	minSamplesPerTerm = 2
	// maxCondition rejects fits whose R factor is numerically singular.
	maxCondition = 1e12
)

func leastSquares(samples []float64, order int, d core.Domain, cfg config) (Result, error) {
	n := len(samples)
	if order*minSamplesPerTerm > n {
		return Result{}, fmt.Errorf("stochastic: %w: order %d needs at least %d samples, have %d",
			core.ErrIllConditioned, order, order*minSamplesPerTerm, n)
	}

	cols := basisColumns(cfg.basis, order, n, d, cfg.positions)
	a := mat.NewDense(n, order, nil)
	for k, col := range cols {
		a.SetCol(k, col)
	}

	var qr mat.QR
	qr.Factorize(a)
	if cond := qr.Cond(); math.IsNaN(cond) || cond > maxCondition {
		return Result{}, fmt.Errorf("stochastic: %w: order %d condition number %.3g",
			core.ErrIllConditioned, order, cond)
	}

	y := make([]float64, n)
	copy(y, samples)
	coeffs := mat.NewVecDense(order, nil)
	if err := qr.SolveVecTo(coeffs, false, mat.NewVecDense(n, y)); err != nil {
		return Result{}, fmt.Errorf("stochastic: %w: %v", core.ErrIllConditioned, err)
	}

	// denoised = Σ c_k φ_k
	denoised := make([]float64, n)
	term := make([]float64, n)
	c := make([]float64, order)
	diag := make([]core.Point, order)
	for k, col := range cols {
		c[k] = coeffs.AtVec(k)
		vecmath.ScaleBlock(term, col, c[k])
		vecmath.AddBlockInPlace(denoised, term)
		diag[k] = core.Point{X: basisFrequency(cfg.basis, k, d), Y: c[k]}
	}

	if err := core.CheckFinite(denoised); err != nil {
		return Result{}, fmt.Errorf("stochastic: %w: %v", core.ErrIllConditioned, err)
	}

	return Result{
		Denoised:     denoised,
		Diagnostics:  diag,
		Coefficients: c,
	}, nil
}
