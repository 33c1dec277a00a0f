package bench

import (
	"strconv"
	"time"
)

// Record is the aggregated result of one cell.
type Record struct {
	Topology           string
	ConfiguredVertices int
	Vertices           int
	Edges              int
	Solver             string

	// Average is the mean duration of one Pathfind call.
	Average time.Duration
	// StdDev, Min and Max describe the spread of the individual calls.
	StdDev time.Duration
	Min    time.Duration
	Max    time.Duration
	// Samples is the number of timed calls, Trials × Repeats.
	Samples int
}

// Header returns the column names of the tabular form, in Fields order.
func Header() []string {
	return []string{
		"topology",
		"configured_vertex_count",
		"vertex_count",
		"edge_count",
		"pathfinder",
		"time_nanos",
	}
}

// Fields returns the tabular form of r; the duration is in nanoseconds.
func (r Record) Fields() []string {
	return []string{
		r.Topology,
		strconv.Itoa(r.ConfiguredVertices),
		strconv.Itoa(r.Vertices),
		strconv.Itoa(r.Edges),
		r.Solver,
		strconv.FormatInt(r.Average.Nanoseconds(), 10),
	}
}

// Cell is one finished unit of work, as seen by a Progress observer.
type Cell struct {
	// Index is 1-based; Total is the number of cells in the run.
	Index  int
	Total  int
	Record Record
}

// Sink receives every Record in run order.
type Sink interface {
	Write(Record) error
}

// Progress observes finished cells. It must not block for long.
type Progress interface {
	CellDone(Cell)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Record) error

// Write calls f(r).
func (f SinkFunc) Write(r Record) error { return f(r) }

// ProgressFunc adapts a function to Progress.
type ProgressFunc func(Cell)

// CellDone calls f(c).
func (f ProgressFunc) CellDone(c Cell) { f(c) }

// Summary describes a finished (or aborted) run.
type Summary struct {
	Cells   int
	Graphs  int
	Elapsed time.Duration
}
