package bench

import "errors"

// Sentinel errors returned by New and Run.
var (
	// ErrNilSource indicates a Runner without a random source.
	ErrNilSource = errors.New("bench: random source is nil")

	// ErrNilSink indicates a Runner without a record sink.
	ErrNilSink = errors.New("bench: sink is nil")

	// ErrNothingToRun indicates no generators or no solvers were supplied.
	ErrNothingToRun = errors.New("bench: no generators or no solvers")

	// ErrGenerate wraps a generator failure that aborted the run.
	ErrGenerate = errors.New("bench: graph generation failed")

	// ErrSolve wraps a solver failure that aborted the run.
	ErrSolve = errors.New("bench: solver failed")

	// ErrSink wraps a sink failure that aborted the run.
	ErrSink = errors.New("bench: sink write failed")
)
