package bench

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/pathbench/builder"
	"github.com/katalvlaran/pathbench/config"
	"github.com/katalvlaran/pathbench/core"
	"github.com/katalvlaran/pathbench/pathfind"
	"github.com/katalvlaran/pathbench/rng"
)

// Runner executes one benchmark configuration. It is not safe for
// concurrent use and is meant to be run once.
type Runner struct {
	cfg      config.Config
	src      *rng.Source
	gens     []builder.Generator
	solvers  []pathfind.Pathfinder
	sink     Sink
	progress Progress
	now      func() time.Time
	log      *slog.Logger
}

// New validates its inputs and returns a Runner. The Runner draws endpoint
// pairs from src only. The CLI passes a stream derived with Split from the
// generators' source, so the driver owns that stream and the generated
// graphs do not depend on Trials; passing the generators' own source works
// too and interleaves both kinds of draw.
func New(cfg config.Config, src *rng.Source, gens []builder.Generator, solvers []pathfind.Pathfinder, sink Sink, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("bench.New: %w", err)
	}
	if src == nil {
		return nil, fmt.Errorf("bench.New: %w", ErrNilSource)
	}
	if sink == nil {
		return nil, fmt.Errorf("bench.New: %w", ErrNilSink)
	}
	if len(gens) == 0 || len(solvers) == 0 {
		return nil, fmt.Errorf("bench.New: %d generators, %d solvers: %w", len(gens), len(solvers), ErrNothingToRun)
	}

	r := &Runner{
		cfg:      cfg,
		src:      src,
		gens:     gens,
		solvers:  solvers,
		sink:     sink,
		progress: ProgressFunc(func(Cell) {}),
		now:      time.Now,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// TotalCells returns the number of records a complete run emits.
func (r *Runner) TotalCells() int {
	return len(r.gens) * len(r.cfg.Sweep.Points()) * len(r.solvers)
}

// Run executes the sweep. On error the returned Summary covers the cells
// finished before the failure.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	var (
		sum    Summary
		start  = r.now()
		points = r.cfg.Sweep.Points()
		total  = r.TotalCells()
	)
	r.log.Info("benchmark started",
		slog.Int("cells", total),
		slog.Int("repeats", r.cfg.Repeats),
		slog.Int("trials", r.cfg.Trials),
		slog.Int64("endpoint_seed", r.src.Seed()))

	for _, gen := range r.gens {
		for _, n := range points {
			if err := ctx.Err(); err != nil {
				sum.Elapsed = r.now().Sub(start)
				return sum, fmt.Errorf("bench: stopped before %s n=%d: %w", gen.Name(), n, err)
			}

			g, err := gen.Generate(n)
			if err != nil {
				sum.Elapsed = r.now().Sub(start)
				return sum, fmt.Errorf("%w: %s n=%d: %w", ErrGenerate, gen.Name(), n, err)
			}
			sum.Graphs++
			r.log.Debug("graph generated",
				slog.String("topology", gen.Name()),
				slog.Int("vertices", g.VertexCount()),
				slog.Int("edges", g.EdgeCount()))

			records, err := r.measure(gen.Name(), n, g)
			if err != nil {
				sum.Elapsed = r.now().Sub(start)
				return sum, err
			}
			for _, rec := range records {
				if err = r.sink.Write(rec); err != nil {
					sum.Elapsed = r.now().Sub(start)
					return sum, fmt.Errorf("%w: %w", ErrSink, err)
				}
				sum.Cells++
				r.progress.CellDone(Cell{Index: sum.Cells, Total: total, Record: rec})
			}
		}
	}

	sum.Elapsed = r.now().Sub(start)
	r.log.Info("benchmark finished",
		slog.Int("cells", sum.Cells),
		slog.Int("graphs", sum.Graphs),
		slog.Duration("elapsed", sum.Elapsed))

	return sum, nil
}

// measure times every solver on g over all trials and returns one Record
// per solver, in solver order.
func (r *Runner) measure(topology string, configured int, g *core.Graph) ([]Record, error) {
	n := g.VertexCount()
	samples := make([][]float64, len(r.solvers))
	for i := range samples {
		samples[i] = make([]float64, 0, r.cfg.Trials*r.cfg.Repeats)
	}

	var from, to core.Vertex
	for trial := 0; trial < r.cfg.Trials; trial++ {
		from, to = r.src.Index(n), r.src.Index(n)
		for si, s := range r.solvers {
			for rep := 0; rep < r.cfg.Repeats; rep++ {
				t0 := r.now()
				_, err := s.Pathfind(g, from, to)
				elapsed := r.now().Sub(t0)
				if err != nil {
					return nil, fmt.Errorf("%w: %s on %s n=%d (%d -> %d): %w",
						ErrSolve, s.Name(), topology, configured, from, to, err)
				}
				samples[si] = append(samples[si], float64(elapsed))
			}
		}
	}

	records := make([]Record, len(r.solvers))
	for si, s := range r.solvers {
		records[si] = aggregate(samples[si])
		records[si].Topology = topology
		records[si].ConfiguredVertices = configured
		records[si].Vertices = n
		records[si].Edges = g.EdgeCount()
		records[si].Solver = s.Name()
	}

	return records, nil
}

// aggregate summarizes per-call durations given in nanoseconds.
func aggregate(xs []float64) Record {
	if len(xs) == 0 {
		return Record{}
	}
	rec := Record{
		Average: time.Duration(stat.Mean(xs, nil)),
		Min:     time.Duration(floats.Min(xs)),
		Max:     time.Duration(floats.Max(xs)),
		Samples: len(xs),
	}
	if len(xs) > 1 {
		rec.StdDev = time.Duration(stat.StdDev(xs, nil))
	}

	return rec
}
