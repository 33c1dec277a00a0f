package report

import (
	"log/slog"

	"github.com/katalvlaran/pathbench/bench"
)

// LogProgress logs one line per finished cell.
type LogProgress struct {
	log *slog.Logger
}

// NewLogProgress returns a progress observer logging at Info through l.
func NewLogProgress(l *slog.Logger) *LogProgress {
	return &LogProgress{log: l}
}

// CellDone logs c.
func (p *LogProgress) CellDone(c bench.Cell) {
	p.log.Info("cell done",
		slog.Int("cell", c.Index),
		slog.Int("of", c.Total),
		slog.String("topology", c.Record.Topology),
		slog.Int("vertices", c.Record.Vertices),
		slog.Int("edges", c.Record.Edges),
		slog.String("solver", c.Record.Solver),
		slog.Int64("time_nanos", c.Record.Average.Nanoseconds()))
}
