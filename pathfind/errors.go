package pathfind

import "errors"

// Sentinel errors returned by every solver.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("pathfind: graph is nil")

	// ErrVertexOutOfRange indicates an endpoint outside [0, VertexCount()).
	ErrVertexOutOfRange = errors.New("pathfind: vertex out of range")

	// ErrNoPath indicates that the target is unreachable from the source.
	ErrNoPath = errors.New("pathfind: no path")

	// ErrUnknownSolver indicates ByName was given an unrecognized name.
	ErrUnknownSolver = errors.New("pathfind: unknown solver")
)
