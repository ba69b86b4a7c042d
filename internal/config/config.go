// Package config holds the run configuration of the denoise command.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-denoise/dsp/core"
	"github.com/cwbudde/algo-denoise/dsp/filter/stochastic"
	"github.com/cwbudde/algo-denoise/dsp/signal"
	"github.com/cwbudde/algo-denoise/dsp/window"
	"github.com/cwbudde/algo-denoise/internal/render"
)

// Config describes one run: what to sample, how much noise to add, and
// which filters to apply.
type Config struct {
	Func   string  `yaml:"func"`
	Start  float64 `yaml:"start"`
	End    float64 `yaml:"end"`
	Count  int     `yaml:"count"`
	Noise  float64 `yaml:"noise"`
	Seed   int64   `yaml:"seed"`
	Orders []int   `yaml:"orders"`
	Filter Filter  `yaml:"filter"`
	Output Output  `yaml:"output"`

	// NoiseMode is NoiseFunction (the default) or NoiseBlock.
	NoiseMode string `yaml:"noise_mode,omitempty"`
}

// Noise modes. Both draw from the same seeded stream in sample order, so for
// a given seed they produce the same noisy sequence.
const (
	// NoiseFunction wraps the source function so every evaluation carries
	// its own draw.
	NoiseFunction = "function"
	// NoiseBlock samples the clean function once and adds one white-noise
	// block to the values.
	NoiseBlock = "block"
)

// Filter selects and tunes the stochastic filter.
type Filter struct {
	Method      string `yaml:"method"`
	Basis       string `yaml:"basis"`
	Mean        string `yaml:"mean,omitempty"`
	Distance    string `yaml:"distance,omitempty"`
	Trials      int    `yaml:"trials,omitempty"`
	LambdaSteps int    `yaml:"lambda_steps,omitempty"`
	SearchSeed  int64  `yaml:"search_seed,omitempty"`

	// Probability and Tolerance derive the window-search trial count when
	// Trials is unset. Zero keeps the filter default.
	Probability float64 `yaml:"probability,omitempty"`
	Tolerance   float64 `yaml:"tolerance,omitempty"`
}

// Output controls the charts written after a run.
type Output struct {
	Dir   string  `yaml:"dir"`
	Plots bool    `yaml:"plots"`
	Taper string  `yaml:"taper"`
	YMin  float64 `yaml:"y_min"`
	YMax  float64 `yaml:"y_max"`
}

// Default returns the reference run: sin(x)+0.5 on [0, π) at 100 points,
// uniform noise of amplitude 0.25, filtered at orders 3 and 5.
func Default() *Config {
	return &Config{
		Func:   "sin+0.5",
		Start:  0,
		End:    math.Pi,
		Count:  100,
		Noise:  0.25,
		Seed:   1,
		Orders: []int{3, 5},
		Filter: Filter{
			Method: stochastic.MethodLeastSquares.String(),
			Basis:  stochastic.BasisCosine.String(),
		},
		Output: Output{
			Dir:   ".",
			Plots: true,
			Taper: window.TypeHann.String(),
			YMin:  render.DefaultYMin,
			YMax:  render.DefaultYMax,
		},
	}
}

// Load reads a YAML file over the defaults, so keys missing from the file
// keep their default value.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(content)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(content []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal encodes c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Domain returns the sampled interval.
func (c *Config) Domain() core.Domain {
	return core.Domain{Start: c.Start, End: c.End}
}

// Validate reports every invalid field, joined.
func (c *Config) Validate() error {
	var errs []error
	if _, ok := signal.Lookup(c.Func); !ok {
		errs = append(errs, fmt.Errorf("config: unknown func %q", c.Func))
	}
	if err := c.Domain().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("config: %w", err))
	}
	if c.Count <= 0 {
		errs = append(errs, fmt.Errorf("config: %w: %d", core.ErrInvalidCount, c.Count))
	}
	if c.Noise < 0 || !core.IsFinite(c.Noise) {
		errs = append(errs, fmt.Errorf("config: noise must be a finite value >= 0, got %v", c.Noise))
	}
	switch c.NoiseMode {
	case "", NoiseFunction, NoiseBlock:
	default:
		errs = append(errs, fmt.Errorf("config: unknown noise mode %q", c.NoiseMode))
	}
	if len(c.Orders) == 0 {
		errs = append(errs, fmt.Errorf("config: %w: no orders", core.ErrInvalidOrder))
	}
	for _, o := range c.Orders {
		if o <= 0 {
			errs = append(errs, fmt.Errorf("config: %w: %d", core.ErrInvalidOrder, o))
		}
	}
	if _, err := c.Filter.Options(); err != nil {
		errs = append(errs, fmt.Errorf("config: %w", err))
	}
	if _, err := window.ParseType(c.Output.Taper); err != nil {
		errs = append(errs, fmt.Errorf("config: %w", err))
	}
	if c.Output.YMax <= c.Output.YMin {
		errs = append(errs, fmt.Errorf("config: y range [%v, %v] is empty", c.Output.YMin, c.Output.YMax))
	}
	return errors.Join(errs...)
}

// Options translates the filter section into stochastic options.
func (f Filter) Options() ([]stochastic.Option, error) {
	method, err := stochastic.ParseMethod(f.Method)
	if err != nil {
		return nil, err
	}
	basis, err := stochastic.ParseBasis(f.Basis)
	if err != nil {
		return nil, err
	}
	mean, err := stochastic.ParseMean(f.Mean)
	if err != nil {
		return nil, err
	}
	dist, err := stochastic.ParseDistance(f.Distance)
	if err != nil {
		return nil, err
	}

	opts := []stochastic.Option{
		stochastic.WithMethod(method),
		stochastic.WithBasis(basis),
		stochastic.WithMean(mean),
		stochastic.WithDistance(dist),
		stochastic.WithTrials(f.Trials),
		stochastic.WithLambdaSteps(f.LambdaSteps),
	}
	if f.SearchSeed != 0 {
		opts = append(opts, stochastic.WithSeed(f.SearchSeed))
	}
	if f.Probability != 0 || f.Tolerance != 0 {
		p, eps := f.Probability, f.Tolerance
		if p == 0 {
			p = stochastic.DefaultSearchProbability
		}
		if eps == 0 {
			eps = stochastic.DefaultSearchTolerance
		}
		if p <= 0 || p >= 1 || eps <= 0 || !core.IsFinite(eps) {
			return nil, fmt.Errorf("search probability must be in (0, 1) and tolerance > 0, got %v and %v", p, eps)
		}
		opts = append(opts, stochastic.WithSearchProbability(p, eps))
	}
	return opts, nil
}
