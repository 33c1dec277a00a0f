package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/pathbench/bench"
	"github.com/katalvlaran/pathbench/builder"
	"github.com/katalvlaran/pathbench/config"
	"github.com/katalvlaran/pathbench/pathfind"
	"github.com/katalvlaran/pathbench/report"
	"github.com/katalvlaran/pathbench/rng"
)

// runBench wires the configured generators, solvers and sinks and runs the
// sweep. Logs go to logOut.
func runBench(ctx context.Context, logOut io.Writer, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	runID := uuid.NewString()
	log := newLogger(logOut, cfg.LogLevel, cfg.LogFormat).With(slog.String("run_id", runID))

	src, err := newSource(cfg)
	if err != nil {
		return err
	}

	gens := make([]builder.Generator, 0, len(cfg.Topologies))
	for _, name := range cfg.Topologies {
		g, err := builder.ByName(name, src)
		if err != nil {
			return err
		}
		gens = append(gens, g)
	}
	solvers := make([]pathfind.Pathfinder, 0, len(cfg.Solvers))
	for _, name := range cfg.Solvers {
		s, err := pathfind.ByName(name)
		if err != nil {
			return err
		}
		solvers = append(solvers, s)
	}

	table, err := report.CreateCSV(cfg.Output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := table.Close(); cerr != nil {
			log.Error("closing output", slog.String("path", cfg.Output), slog.Any("error", cerr))
		}
	}()

	sinks := report.Multi{table}
	var metrics *report.Metrics
	if cfg.MetricsFile != "" {
		metrics = report.NewMetrics(runID)
		sinks = append(sinks, metrics)
	}

	log.Info("seeded", slog.Int64("seed", src.Seed()))
	runner, err := bench.New(cfg, src.Split(), gens, solvers, sinks,
		bench.WithLogger(log),
		bench.WithProgress(report.NewLogProgress(log)))
	if err != nil {
		return err
	}

	log.Info("writing results", slog.String("output", cfg.Output))
	sum, runErr := runner.Run(ctx)

	// Partial metrics are still worth keeping after an abort.
	if metrics != nil {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			log.Error("metrics not written", slog.Any("error", err))
		}
	}
	if runErr != nil {
		log.Error("benchmark aborted", slog.Int("cells", sum.Cells), slog.Any("error", runErr))
		return fmt.Errorf("run %s: %w", runID, runErr)
	}

	return nil
}

// newSource honors a configured seed, else seeds from OS entropy.
func newSource(cfg config.Config) (*rng.Source, error) {
	if cfg.Seed != nil {
		return rng.New(*cfg.Seed), nil
	}

	return rng.NewFromEntropy()
}

// newLogger builds the process logger. format "auto" picks text for a
// terminal and JSON otherwise.
func newLogger(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if strings.EqualFold(format, "auto") {
		format = "json"
		if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			format = "text"
		}
	}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
