// SPDX-License-Identifier: MIT

// Command cellmul multiplies two random integer matrices with concurrent
// workers and prints A, B and the product C.
//
// Usage:
//
//	cellmul [-config cellmul.yaml] [-seed N] [-workers N] [-strategy pool|per-cell] [-realtime] [-debug]
//
// Flags override the configuration file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/cellmul/config"
	"github.com/katalvlaran/cellmul/engine"
	"github.com/katalvlaran/cellmul/matrix"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without process globals; it returns the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("cellmul", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Path to YAML configuration file")
	seed := fs.Int64("seed", 0, "Random seed (default: clock)")
	workers := fs.Int("workers", 0, "Pool size (0: GOMAXPROCS)")
	strategy := fs.String("strategy", "", "Worker strategy: pool or per-cell")
	realtime := fs.Bool("realtime", false, "Run workers with round-robin scheduling at maximum priority")
	debug := fs.Bool("debug", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = seed
		case "workers":
			cfg.Engine.Workers = *workers
		case "strategy":
			cfg.Engine.Strategy = *strategy
		case "realtime":
			cfg.Profile.Realtime = *realtime
		case "debug":
			if *debug {
				cfg.Log.Level = "debug"
			}
		}
	})
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	logger := newLogger(stderr, cfg)
	logger.Debug("configuration loaded", slog.String("config", *configPath))

	if err := multiply(ctx, cfg, logger, stdout); err != nil {
		logger.Error("matrix multiplication failed", slog.Any("error", err))
		fmt.Fprintln(stderr, matrix.Style{Color: matrix.ColorRed}.Paint(describe(err)))
		return 1
	}

	return 0
}

func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel()}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func multiply(ctx context.Context, cfg *config.Config, logger *slog.Logger, out io.Writer) error {
	var fopts []matrix.FactoryOption
	if cfg.Seed != nil {
		fopts = append(fopts, matrix.WithSeed(*cfg.Seed))
	}
	f := matrix.NewFactory(fopts...)

	profile, err := cfg.SchedProfile()
	if err != nil {
		return err
	}
	opts := []engine.Option{
		engine.WithLogger(logger),
		engine.WithFactory(f),
		engine.WithValueRange(cfg.Values.Min, cfg.Values.Max),
		engine.WithStrategy(cfg.Strategy()),
		engine.WithWorkers(cfg.Engine.Workers),
		engine.WithExclusiveWrites(*cfg.Engine.ExclusiveWrites),
		engine.WithProfile(profile),
	}
	if cfg.Profile.BestEffort {
		opts = append(opts, engine.WithBestEffort())
	}

	d := engine.Dims{
		Rows:  f.NextInt(cfg.Dims.Min, cfg.Dims.Max),
		Inner: f.NextInt(cfg.Dims.Min, cfg.Dims.Max),
		Cols:  f.NextInt(cfg.Dims.Min, cfg.Dims.Max),
	}
	res, err := engine.New(opts...).Run(ctx, d)
	if err != nil {
		return err
	}

	for _, p := range []struct {
		m     *matrix.Dense
		label string
		color string
	}{
		{res.A, "A", matrix.ColorCyan},
		{res.B, "B", matrix.ColorPurple},
		{res.C, "C (A x B = C)", matrix.ColorGreen},
	} {
		if err := matrix.Render(out, p.m, p.label, matrix.Style{Color: p.color}); err != nil {
			return err
		}
	}

	return nil
}

// describe turns engine failures into the operator-facing message.
func describe(err error) string {
	var tce *engine.ThreadCreationError
	switch {
	case errors.As(err, &tce) && tce.Row >= 0:
		return fmt.Sprintf("Could not create thread %d (element at C[%d][%d]). Aborting matrix multiplication.", tce.Index, tce.Row, tce.Col)
	case errors.As(err, &tce):
		return fmt.Sprintf("Could not create worker %d. Aborting matrix multiplication.", tce.Index)
	case errors.Is(err, matrix.ErrAllocation):
		return "Could not allocate matrix memory!"
	default:
		return err.Error()
	}
}
