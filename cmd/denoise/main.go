// Command denoise samples a function with noise, filters it with the
// stochastic filter at one or more orders, and reports how well each order
// recovered the clean signal.
//
// Usage:
//
//	denoise run [flags]
//	denoise funcs
//
// Examples:
//
//	denoise run
//	denoise run --order 3 --order 5 --out plots
//	denoise run --method window-search --count 200 --no-plots
//	denoise run --config run.yaml --seed 7
//
// Flags given on the command line override values from --config.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"

	dspsignal "github.com/cwbudde/algo-denoise/dsp/signal"
	"github.com/cwbudde/algo-denoise/internal/config"
	"github.com/cwbudde/algo-denoise/internal/pipeline"
)

type cli struct {
	LogLevel string `name:"log-level" enum:"debug,info,warn,error" default:"info" help:"log level (${enum})"`

	Run   runCmd   `cmd:"" help:"sample, denoise and report"`
	Funcs funcsCmd `cmd:"" help:"list the source functions"`
}

// Flags without a default tag so kong only marks the ones the user gave.
type runCmd struct {
	Config    string  `name:"config" short:"c" type:"path" help:"YAML run file"`
	Func      string  `name:"func" short:"f" help:"source function (default sin+0.5)"`
	Start     float64 `name:"start" help:"domain start (default 0)"`
	End       float64 `name:"end" help:"domain end, exclusive (default π)"`
	Count     int     `name:"count" short:"n" help:"number of samples (default 100)"`
	Noise     float64 `name:"noise" help:"uniform noise amplitude (default 0.25)"`
	NoiseMode string  `name:"noise-mode" help:"function (per evaluation) or block (added after sampling)"`
	Seed      int64   `name:"seed" help:"noise seed (default 1)"`
	Order     []int   `name:"order" short:"o" help:"filter order, repeatable (default 3 and 5)"`
	Method    string  `name:"method" short:"m" help:"least-squares or window-search"`
	Basis     string  `name:"basis" help:"cosine or legendre"`
	Mean      string  `name:"mean" help:"window-search mean: arithmetic or geometric"`
	Distance  string  `name:"distance" help:"window-search distance: chebyshev or euclidean"`
	Trials    int     `name:"trials" help:"window-search trials per λ (default derived from the domain)"`
	Taper     string  `name:"taper" help:"residual spectrum window (default hann)"`
	Out       string  `name:"out" help:"chart directory (default .)"`
	NoPlots   bool    `name:"no-plots" help:"skip the charts"`
}

type funcsCmd struct{}

// env is bound into every command's Run.
type env struct {
	ctx    context.Context
	log    *slog.Logger
	stdout io.Writer
	set    map[string]bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var c cli
	exited := false
	parser, err := kong.New(&c,
		kong.Name("denoise"),
		kong.Description("Stochastic denoising of a sampled function."),
		kong.HelpOptions{Compact: true, FlagsLast: true},
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }),
	)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	kctx, err := parser.Parse(args)
	if exited {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	e := &env{
		ctx:    ctx,
		log:    newLogger(stderr, c.LogLevel),
		stdout: stdout,
		set:    make(map[string]bool),
	}
	for _, f := range kctx.Flags() {
		if f.Set {
			e.set[f.Name] = true
		}
	}

	if err := kctx.Run(e); err != nil {
		e.log.Error("denoise failed", "error", err)
		if errors.Is(err, context.Canceled) {
			return 130
		}
		return 1
	}
	return 0
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func (r *runCmd) Run(e *env) error {
	cfg, err := r.config(e.set)
	if err != nil {
		return err
	}
	e.log.Debug("config", "func", cfg.Func, "orders", cfg.Orders, "method", cfg.Filter.Method, "count", cfg.Count)

	rep, err := pipeline.Run(e.ctx, cfg, pipeline.WithLogger(e.log))
	if err != nil {
		return err
	}
	return printReport(e.stdout, cfg, rep)
}

// config loads --config when given and applies the flags the user set.
func (r *runCmd) config(set map[string]bool) (*config.Config, error) {
	cfg := config.Default()
	if r.Config != "" {
		loaded, err := config.Load(r.Config)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", r.Config, err)
		}
		cfg = loaded
	}

	if set["func"] {
		cfg.Func = r.Func
	}
	if set["start"] {
		cfg.Start = r.Start
	}
	if set["end"] {
		cfg.End = r.End
	}
	if set["count"] {
		cfg.Count = r.Count
	}
	if set["noise"] {
		cfg.Noise = r.Noise
	}
	if set["noise-mode"] {
		cfg.NoiseMode = r.NoiseMode
	}
	if set["seed"] {
		cfg.Seed = r.Seed
	}
	if set["order"] {
		cfg.Orders = r.Order
	}
	if set["method"] {
		cfg.Filter.Method = r.Method
	}
	if set["basis"] {
		cfg.Filter.Basis = r.Basis
	}
	if set["mean"] {
		cfg.Filter.Mean = r.Mean
	}
	if set["distance"] {
		cfg.Filter.Distance = r.Distance
	}
	if set["trials"] {
		cfg.Filter.Trials = r.Trials
	}
	if set["taper"] {
		cfg.Output.Taper = r.Taper
	}
	if set["out"] {
		cfg.Output.Dir = r.Out
	}
	if set["no-plots"] && r.NoPlots {
		cfg.Output.Plots = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (funcsCmd) Run(e *env) error {
	for _, name := range dspsignal.Names() {
		if _, err := fmt.Fprintln(e.stdout, name); err != nil {
			return err
		}
	}
	return nil
}
