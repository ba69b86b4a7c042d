package signal

import (
	"fmt"
	"math/rand"

	"github.com/cwbudde/algo-vecmath"
)

// Generator produces deterministic noise from a seeded source.
//
// A Generator is not safe for concurrent use; each pipeline run owns one.
type Generator struct {
	seed      int64
	amplitude float64
	rng       *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithAmplitude sets the noise half-width; draws are uniform in
// [-amplitude, amplitude). Negative values are ignored.
func WithAmplitude(amplitude float64) Option {
	return func(g *Generator) {
		if amplitude >= 0 {
			g.amplitude = amplitude
		}
	}
}

// NewGenerator creates a configured noise generator. The default seed is 1
// and the default amplitude 0.25.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		seed:      1,
		amplitude: 0.25,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	g.rng = rand.New(rand.NewSource(g.seed))
	return g
}

// Seed returns the seed the current random stream started from.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Amplitude returns the noise half-width.
func (g *Generator) Amplitude() float64 {
	return g.amplitude
}

func (g *Generator) draw() float64 {
	return g.rng.Float64()*2 - 1
}

// Noisy wraps f so that every evaluation adds one independent uniform draw
// in [-amplitude, amplitude) from the generator's stream.
func (g *Generator) Noisy(f Func) Func {
	if f == nil {
		return nil
	}
	return func(x float64) float64 {
		return f(x) + g.draw()*g.amplitude
	}
}

// WhiteNoise returns n uniform draws in [-amplitude, amplitude).
func (g *Generator) WhiteNoise(n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", n)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = g.draw()
	}
	vecmath.ScaleBlock(out, out, g.amplitude)
	return out, nil
}

// AddNoise returns a copy of values with white noise added. It consumes the
// stream in the same order as sampling a [Generator.Noisy] function, so both
// give the same sequence for the same seed.
func (g *Generator) AddNoise(values []float64) ([]float64, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("noise input must not be empty")
	}
	noise, err := g.WhiteNoise(len(values))
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(values))
	copy(out, values)
	vecmath.AddBlockInPlace(out, noise)
	return out, nil
}
