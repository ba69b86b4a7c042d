package stochastic

import (
	"fmt"
	"strings"
)

// Method selects the estimator.
type Method int

const (
	// MethodLeastSquares fits a truncated basis expansion.
	MethodLeastSquares Method = iota
	// MethodWindowSearch searches moving-average weights.
	MethodWindowSearch
)

// String returns the CLI name of the method.
func (m Method) String() string {
	switch m {
	case MethodLeastSquares:
		return "least-squares"
	case MethodWindowSearch:
		return "window-search"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps a CLI name to a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "least-squares", "lsq":
		return MethodLeastSquares, nil
	case "window-search", "window":
		return MethodWindowSearch, nil
	}
	return 0, fmt.Errorf("stochastic: unknown method %q", s)
}

// Basis selects the least-squares basis functions.
type Basis int

const (
	// BasisCosine uses cos(k·π·(x-a)/(b-a)), k = 0..order-1.
	BasisCosine Basis = iota
	// BasisLegendre uses Legendre polynomials of degree 0..order-1 on [-1, 1).
	BasisLegendre
)

// String returns the CLI name of the basis.
func (b Basis) String() string {
	switch b {
	case BasisCosine:
		return "cosine"
	case BasisLegendre:
		return "legendre"
	default:
		return fmt.Sprintf("Basis(%d)", int(b))
	}
}

// ParseBasis maps a CLI name to a Basis.
func ParseBasis(s string) (Basis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "cosine", "cos":
		return BasisCosine, nil
	case "legendre", "poly":
		return BasisLegendre, nil
	}
	return 0, fmt.Errorf("stochastic: unknown basis %q", s)
}

// Mean selects how the window search averages a window.
type Mean int

const (
	// MeanArithmetic is the weighted arithmetic mean.
	MeanArithmetic Mean = iota
	// MeanGeometric is the weighted geometric mean; samples must be > 0.
	MeanGeometric
)

// Distance selects the metric from a (ω, δ) pair to the ideal origin.
type Distance int

const (
	// DistanceChebyshev is max(ω, δ).
	DistanceChebyshev Distance = iota
	// DistanceEuclidean is sqrt(ω² + δ²).
	DistanceEuclidean
)

// String returns the CLI name of the mean.
func (m Mean) String() string {
	switch m {
	case MeanArithmetic:
		return "arithmetic"
	case MeanGeometric:
		return "geometric"
	default:
		return fmt.Sprintf("Mean(%d)", int(m))
	}
}

// ParseMean maps a CLI name to a Mean.
func ParseMean(s string) (Mean, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "arithmetic":
		return MeanArithmetic, nil
	case "geometric":
		return MeanGeometric, nil
	}
	return 0, fmt.Errorf("stochastic: unknown mean %q", s)
}

// String returns the CLI name of the distance.
func (d Distance) String() string {
	switch d {
	case DistanceChebyshev:
		return "chebyshev"
	case DistanceEuclidean:
		return "euclidean"
	default:
		return fmt.Sprintf("Distance(%d)", int(d))
	}
}

// ParseDistance maps a CLI name to a Distance.
func ParseDistance(s string) (Distance, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "chebyshev", "max":
		return DistanceChebyshev, nil
	case "euclidean":
		return DistanceEuclidean, nil
	}
	return 0, fmt.Errorf("stochastic: unknown distance %q", s)
}

// Window-search trial budget defaults: the trial count is chosen so a
// uniform draw lands within DefaultSearchTolerance of the optimum with
// probability DefaultSearchProbability.
const (
	DefaultSearchProbability = 0.95
	DefaultSearchTolerance   = 0.01
)

const (
	defaultSeed        = 1
	defaultLambdaSteps = 10
	maxTrials          = 100000
)

type config struct {
	method      Method
	basis       Basis
	mean        Mean
	distance    Distance
	seed        int64
	trials      int
	lambdaSteps int
	probability float64
	tolerance   float64
	positions   []float64
}

// Option configures [Apply] and [Filter].
type Option func(*config)

func defaultConfig() config {
	return config{
		method:      MethodLeastSquares,
		basis:       BasisCosine,
		mean:        MeanArithmetic,
		distance:    DistanceChebyshev,
		seed:        defaultSeed,
		lambdaSteps: defaultLambdaSteps,
		probability: DefaultSearchProbability,
		tolerance:   DefaultSearchTolerance,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithMethod selects the estimator.
func WithMethod(m Method) Option {
	return func(cfg *config) {
		cfg.method = m
	}
}

// WithBasis selects the least-squares basis.
func WithBasis(b Basis) Option {
	return func(cfg *config) {
		cfg.basis = b
	}
}

// WithMean selects the window-search average.
func WithMean(m Mean) Option {
	return func(cfg *config) {
		cfg.mean = m
	}
}

// WithDistance selects the metric used to pick the best λ.
func WithDistance(d Distance) Option {
	return func(cfg *config) {
		cfg.distance = d
	}
}

// WithSeed sets the seed of the window-search random source.
func WithSeed(seed int64) Option {
	return func(cfg *config) {
		cfg.seed = seed
	}
}

// WithTrials fixes the number of random trials per λ. Values <= 0 keep the
// count derived from the search probability.
func WithTrials(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.trials = n
		}
	}
}

// WithLambdaSteps sets L, the λ grid being l/L for l = 0..L.
func WithLambdaSteps(steps int) Option {
	return func(cfg *config) {
		if steps > 0 {
			cfg.lambdaSteps = steps
		}
	}
}

// WithSearchProbability sets the probability p of landing within eps of the
// optimum, from which the trial count is derived.
func WithSearchProbability(p, eps float64) Option {
	return func(cfg *config) {
		if p > 0 && p < 1 && eps > 0 {
			cfg.probability = p
			cfg.tolerance = eps
		}
	}
}

// WithPositions supplies the x position of every sample. Without it the
// samples are assumed to sit at Start + i*(End-Start)/len(samples); pass the
// positions a sampler actually produced when its grid differs from that.
// The basis stays defined on the domain, so positions may reach End.
func WithPositions(xs []float64) Option {
	return func(cfg *config) {
		cfg.positions = append([]float64(nil), xs...)
	}
}
