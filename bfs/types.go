package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/pathbench/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start vertex is out of range.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a vertex BFS never reached.
	ErrNotReached = errors.New("bfs: vertex not reached")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by BFS.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation; checked once per dequeued vertex.
	Ctx context.Context

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v core.Vertex, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterEdge skips the edge curr-next when it returns false.
	FilterEdge func(curr, next core.Vertex) bool

	err error
}

// DefaultOptions returns Options with a background context, no depth
// limit, no filtering and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnVisit:    func(core.Vertex, int) error { return nil },
		FilterEdge: func(_, _ core.Vertex) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on visit; an error stops the BFS.
func WithOnVisit(fn func(v core.Vertex, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0:  limit to depth d
//	d == 0: no depth limit
//	d < 0:  ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithFilterEdge skips edges for which fn returns false. The filter sees
// the edge in traversal direction; for undirected removal check both
// orientations.
func WithFilterEdge(fn func(curr, next core.Vertex) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// WithoutEdge hides the undirected edge {u, v} from the traversal.
func WithoutEdge(u, v core.Vertex) Option {
	return WithFilterEdge(func(a, b core.Vertex) bool {
		return !(a == u && b == v || a == v && b == u)
	})
}

// Result holds the outcome of a BFS traversal.
type Result struct {
	// Order lists vertices in visit sequence.
	Order []core.Vertex

	depth   []int
	parent  []core.Vertex
	reached []bool
	start   core.Vertex
}

// Reached reports whether v was visited.
func (r *Result) Reached(v core.Vertex) bool {
	return v >= 0 && v < len(r.reached) && r.reached[v]
}

// Depth returns the hop distance of v from the start and whether v was reached.
func (r *Result) Depth(v core.Vertex) (int, bool) {
	if !r.Reached(v) {
		return 0, false
	}

	return r.depth[v], true
}

// Parent returns the BFS-tree parent of v. The start vertex and unreached
// vertices have no parent.
func (r *Result) Parent(v core.Vertex) (core.Vertex, bool) {
	if !r.Reached(v) || v == r.start {
		return 0, false
	}

	return r.parent[v], true
}

// PathTo reconstructs the hop-shortest path from the start vertex to dest.
func (r *Result) PathTo(dest core.Vertex) (core.Path, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("PathTo(%d): %w", dest, ErrNotReached)
	}
	path := core.Path{dest}
	for cur := dest; cur != r.start; {
		cur = r.parent[cur]
		path = append(path, cur)
	}

	return path.Reverse(), nil
}
