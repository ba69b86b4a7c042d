package stochastic

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-denoise/dsp/conv"
	"github.com/cwbudde/algo-denoise/dsp/core"
)

// windowSearch runs the random weight search for a window of order taps.
func windowSearch(samples []float64, order int, d core.Domain, cfg config) (Result, error) {
	if order < 3 || order%2 == 0 {
		return Result{}, fmt.Errorf("stochastic: %w: window search needs an odd window >= 3, got %d",
			core.ErrInvalidOrder, order)
	}
	n := len(samples)
	if order > n {
		return Result{}, fmt.Errorf("stochastic: %w: window %d exceeds %d samples",
			core.ErrIllConditioned, order, n)
	}

	src := samples
	if cfg.mean == MeanGeometric {
		logs := make([]float64, n)
		for i, v := range samples {
			if v <= 0 {
				return Result{}, fmt.Errorf("stochastic: %w at index %d: %v", core.ErrNonPositive, i, v)
			}
			logs[i] = math.Log(v)
		}
		src = logs
	}

	trials := cfg.trials
	if trials <= 0 {
		trials = trialCount(cfg.probability, cfg.tolerance, d.Length())
	}

	s := &searcher{
		samples: samples,
		src:     src,
		mean:    cfg.mean,
		rng:     rand.New(rand.NewSource(cfg.seed)),
		weights: make([]float64, order),
		out:     make([]float64, n),
	}

	steps := cfg.lambdaSteps
	diag := make([]core.Point, 0, steps+1)
	var best candidate
	best.distance = math.Inf(1)
	for l := 0; l <= steps; l++ {
		lambda := float64(l) / float64(steps)
		c, err := s.search(lambda, trials)
		if err != nil {
			return Result{}, err
		}
		c.distance = distance(cfg.distance, c.omega, c.delta)
		diag = append(diag, core.Point{X: c.omega, Y: c.delta})
		if c.distance < best.distance {
			best = c
		}
	}

	return Result{
		Denoised:    best.filtered,
		Diagnostics: diag,
		Weights:     best.weights,
		Lambda:      best.lambda,
		Distance:    best.distance,
	}, nil
}

// trialCount returns ceil(ln(1-p) / ln(1-eps/width)), the number of uniform
// draws that land within eps of the optimum with probability p.
func trialCount(p, eps, width float64) int {
	ratio := eps / width
	if ratio >= 1 {
		return 1
	}
	n := math.Ceil(math.Log(1-p) / math.Log(1-ratio))
	if math.IsNaN(n) || n < 1 {
		return 1
	}
	if n > maxTrials {
		return maxTrials
	}
	return int(n)
}

func distance(metric Distance, omega, delta float64) float64 {
	if metric == DistanceEuclidean {
		return math.Hypot(omega, delta)
	}
	return math.Max(math.Abs(omega), math.Abs(delta))
}

type candidate struct {
	lambda   float64
	omega    float64
	delta    float64
	score    float64
	distance float64
	weights  []float64
	filtered []float64
}

type searcher struct {
	samples []float64
	src     []float64 // samples, or their logs for the geometric mean
	mean    Mean
	rng     *rand.Rand
	weights []float64
	out     []float64
}

// search keeps the trial minimizing J = λω + (1-λ)δ.
func (s *searcher) search(lambda float64, trials int) (candidate, error) {
	best := candidate{lambda: lambda, score: math.Inf(1)}
	for range trials {
		drawWeights(s.rng, s.weights)
		if err := smooth(s.out, s.src, s.weights, s.mean); err != nil {
			return candidate{}, err
		}
		omega, delta := criteria(s.out, s.samples)
		score := lambda*omega + (1-lambda)*delta
		if score < best.score {
			best.score = score
			best.omega = omega
			best.delta = delta
			best.weights = append(best.weights[:0], s.weights...)
			best.filtered = append(best.filtered[:0], s.out...)
		}
	}
	return best, nil
}

// drawWeights fills w (odd length r = 2M+1) with symmetric non-negative
// weights summing to 1. The centre is uniform on [0, 1); each inner pair
// takes half a uniform share of what is left; the outermost pair splits the
// remainder.
func drawWeights(rng *rand.Rand, w []float64) {
	m := len(w) / 2
	w[m] = rng.Float64()
	assigned := w[m]
	for k := 1; k < m; k++ {
		v := 0.5 * rng.Float64() * (1 - assigned)
		w[m-k], w[m+k] = v, v
		assigned += 2 * v
	}
	edge := 0.5 * (1 - assigned)
	w[0], w[len(w)-1] = edge, edge
}

// smooth writes the centred weighted mean of src into dst. w must be
// symmetric. Windows are truncated at the ends and their weights
// renormalized by the kernel mass that overlaps each position.
func smooth(dst, src, w []float64, mean Mean) error {
	acc, err := conv.ConvolveMode(src, w, conv.ModeSame)
	if err != nil {
		return fmt.Errorf("stochastic: smooth: %w", err)
	}
	ones := make([]float64, len(src))
	for i := range ones {
		ones[i] = 1
	}
	mass, err := conv.ConvolveMode(ones, w, conv.ModeSame)
	if err != nil {
		return fmt.Errorf("stochastic: smooth: %w", err)
	}

	for k, v := range src {
		if mass[k] > 0 {
			v = acc[k] / mass[k]
		}
		if mean == MeanGeometric {
			v = math.Exp(v)
		}
		dst[k] = v
	}
	return nil
}

// criteria returns the noisiness ω = sqrt(Σ (f̄_k - f̄_{k-1})²) of the
// filtered signal and its deviation δ = sqrt(Σ (f̄_k - f_k)² / N) from the
// samples.
func criteria(filtered, samples []float64) (omega, delta float64) {
	var so, sd float64
	for k, v := range filtered {
		if k > 0 {
			dv := v - filtered[k-1]
			so += dv * dv
		}
		e := v - samples[k]
		sd += e * e
	}
	return math.Sqrt(so), math.Sqrt(sd / float64(len(filtered)))
}
