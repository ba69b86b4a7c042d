// Package pipeline runs the sample, filter, bounds and report stages of a
// denoise run.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-denoise/dsp/bounds"
	"github.com/cwbudde/algo-denoise/dsp/core"
	"github.com/cwbudde/algo-denoise/dsp/filter/stochastic"
	"github.com/cwbudde/algo-denoise/dsp/signal"
	"github.com/cwbudde/algo-denoise/dsp/window"
	"github.com/cwbudde/algo-denoise/internal/config"
	"github.com/cwbudde/algo-denoise/internal/render"
	"github.com/cwbudde/algo-denoise/stats/frequency"
	timestats "github.com/cwbudde/algo-denoise/stats/time"
)

// OrderResult is the outcome of filtering at one order.
type OrderResult struct {
	Order  int
	Filter stochastic.Result
	// Points pairs the denoised values with their grid positions.
	Points []core.Point
	// Bounds pads the diagnostics for plotting.
	Bounds bounds.Box

	Fidelity       timestats.Fidelity // denoised vs clean
	NoiseReduction float64            // dB
	SNR            float64            // dB, clean vs denoised
	Residual       []core.Point       // spectrum of noisy - denoised
	Flatness       float64
}

// Report holds everything a run produced.
type Report struct {
	Domain      core.Domain
	Clean       []float64
	CleanPoints []core.Point
	Noisy       []float64
	NoisyPoints []core.Point
	// Orders is in the order of the configured orders.
	Orders []OrderResult
	// Charts lists the files written, empty when plots are disabled.
	Charts []string
}

// Option configures [Run].
type Option func(*runner)

type runner struct {
	log *slog.Logger
}

// WithLogger sets the logger stage progress is reported to. The default
// discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(r *runner) {
		if l != nil {
			r.log = l
		}
	}
}

// Run samples the configured function with noise, filters the noisy
// sequence at every configured order concurrently, and writes the charts
// when enabled. A failing order cancels the others.
func Run(ctx context.Context, cfg *config.Config, opts ...Option) (*Report, error) {
	r := &runner{log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	filterOpts, err := cfg.Filter.Options()
	if err != nil {
		return nil, err
	}
	taper, err := window.ParseType(cfg.Output.Taper)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rep, gen, err := sample(cfg)
	if err != nil {
		return nil, err
	}
	r.log.Info("sampled", "func", cfg.Func, "samples", len(rep.Noisy), "noise", gen.Amplitude(), "seed", gen.Seed())

	// The sampler may emit count+1 points; fit at the positions it used.
	filterOpts = append(filterOpts, stochastic.WithPositions(signal.Positions(rep.NoisyPoints)))

	rep.Orders = make([]OrderResult, len(cfg.Orders))
	g, gctx := errgroup.WithContext(ctx)
	for i, order := range cfg.Orders {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := filterOrder(rep, order, filterOpts, taper)
			if err != nil {
				return fmt.Errorf("order %d: %w", order, err)
			}
			rep.Orders[i] = res
			r.log.Debug("filtered", "order", order, "rmse", res.Fidelity.RMSE, "diagnostics", len(res.Filter.Diagnostics))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !cfg.Output.Plots {
		return rep, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	charts, err := writeCharts(rep, cfg)
	if err != nil {
		return nil, err
	}
	rep.Charts = charts
	r.log.Info("charts written", "dir", cfg.Output.Dir, "files", len(charts))
	return rep, nil
}

func sample(cfg *config.Config) (*Report, *signal.Generator, error) {
	f, ok := signal.Lookup(cfg.Func)
	if !ok {
		return nil, nil, fmt.Errorf("pipeline: unknown func %q", cfg.Func)
	}
	d := cfg.Domain()
	gen := signal.NewGenerator(signal.WithSeed(cfg.Seed), signal.WithAmplitude(cfg.Noise))

	rep := &Report{Domain: d}
	var err error
	if cfg.NoiseMode == config.NoiseBlock {
		rep.Clean, rep.CleanPoints, err = signal.Sample(f, d, cfg.Count)
		if err != nil {
			return nil, nil, err
		}
		rep.Noisy, err = gen.AddNoise(rep.Clean)
		if err != nil {
			return nil, nil, err
		}
		rep.NoisyPoints = make([]core.Point, len(rep.Noisy))
		for i, v := range rep.Noisy {
			rep.NoisyPoints[i] = core.Point{X: rep.CleanPoints[i].X, Y: v}
		}
		return rep, gen, nil
	}

	rep.Noisy, rep.NoisyPoints, err = signal.Sample(gen.Noisy(f), d, cfg.Count)
	if err != nil {
		return nil, nil, err
	}
	rep.CleanPoints, err = signal.Evaluate(f, rep.NoisyPoints)
	if err != nil {
		return nil, nil, err
	}
	rep.Clean = make([]float64, len(rep.CleanPoints))
	for i, p := range rep.CleanPoints {
		rep.Clean[i] = p.Y
	}
	return rep, gen, nil
}

// filterOrder only reads rep.
func filterOrder(rep *Report, order int, opts []stochastic.Option, taper window.Type) (OrderResult, error) {
	res, err := stochastic.Apply(rep.Noisy, order, rep.Domain, opts...)
	if err != nil {
		return OrderResult{}, err
	}
	pts := make([]core.Point, len(res.Denoised))
	for i, v := range res.Denoised {
		pts[i] = core.Point{X: rep.NoisyPoints[i].X, Y: v}
	}
	box, err := bounds.Padded(res.Diagnostics)
	if err != nil {
		return OrderResult{}, err
	}
	fid, err := timestats.Compare(rep.Clean, res.Denoised)
	if err != nil {
		return OrderResult{}, err
	}
	nr, err := timestats.NoiseReduction(rep.Clean, rep.Noisy, res.Denoised)
	if err != nil {
		return OrderResult{}, err
	}
	snr, err := timestats.SNR(rep.Clean, res.Denoised)
	if err != nil {
		return OrderResult{}, err
	}
	spec, err := frequency.Residual(rep.Noisy, res.Denoised, frequency.WithTaper(taper))
	if err != nil {
		return OrderResult{}, err
	}

	return OrderResult{
		Order:          order,
		Filter:         res,
		Points:         pts,
		Bounds:         box,
		Fidelity:       fid,
		NoiseReduction: nr,
		SNR:            snr,
		Residual:       spec,
		Flatness:       frequency.Flatness(frequency.Magnitudes(spec)),
	}, nil
}

// writeCharts writes task<i>.png, task<i>_coeffs.png and task<i>_residual.png
// for the i-th order, counting from 1.
func writeCharts(rep *Report, cfg *config.Config) ([]string, error) {
	var files []string
	for i, o := range rep.Orders {
		base := filepath.Join(cfg.Output.Dir, fmt.Sprintf("task%d", i+1))

		signals := base + ".png"
		err := render.Signals(signals, fmt.Sprintf("%s, order %d", o.Filter.Method, o.Order), []render.Series{
			{Name: "noisy", Points: rep.NoisyPoints, Color: render.NoisyColor},
			{Name: "original", Points: rep.CleanPoints, Color: render.OriginalColor},
			{Name: "filtered", Points: o.Points, Color: render.FilteredColor},
		}, render.WithXRange(rep.Domain.Start, rep.Domain.End), render.WithYRange(cfg.Output.YMin, cfg.Output.YMax))
		if err != nil {
			return files, err
		}
		files = append(files, signals)

		coeffs := base + "_coeffs.png"
		diagOpts := []render.Option{render.WithTitle(fmt.Sprintf("diagnostics, order %d", o.Order))}
		if o.Filter.Method == stochastic.MethodWindowSearch {
			// (ω, δ) trade-off points are judged by their distance to the origin.
			diagOpts = append(diagOpts, render.WithOriginMarker())
		}
		if err := render.Diagnostics(coeffs, o.Filter.Diagnostics, o.Bounds, diagOpts...); err != nil {
			return files, err
		}
		files = append(files, coeffs)

		residual := base + "_residual.png"
		if err := render.Signals(residual, fmt.Sprintf("residual spectrum, order %d", o.Order),
			[]render.Series{{Name: "|R(f)|", Points: o.Residual}},
			render.WithAutoY(), render.WithLabels("cycles/sample", "magnitude")); err != nil {
			return files, err
		}
		files = append(files, residual)
	}
	return files, nil
}
