package bfs

import (
	"fmt"

	"github.com/katalvlaran/pathbench/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     core.Vertex
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation, or any
// error returned by the OnVisit hook.
func BFS(g *core.Graph, start core.Vertex, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:   make([]core.Vertex, 0, n),
			depth:   make([]int, n),
			parent:  make([]core.Vertex, n),
			reached: make([]bool, n),
			start:   start,
		},
	}
	w.enqueue(start, 0, start)

	return w.res, w.loop()
}

// enqueue marks v reached at depth d with the given parent.
func (w *walker) enqueue(v core.Vertex, d int, parent core.Vertex) {
	w.res.reached[v] = true
	w.res.depth[v] = d
	w.res.parent[v] = parent
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors enqueues every unseen, unfiltered neighbor within MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	arcs, _ := w.graph.Neighbors(item.v) // item.v is always in range
	for _, a := range arcs {
		if w.res.reached[a.To] || !w.opts.FilterEdge(item.v, a.To) {
			continue
		}
		w.enqueue(a.To, next, item.v)
	}
}

// Connected reports whether every vertex of g is reachable from vertex 0
// under the given options (filters apply, MaxDepth is honored).
func Connected(g *core.Graph, opts ...Option) (bool, error) {
	res, err := BFS(g, 0, opts...)
	if err != nil {
		return false, err
	}

	return len(res.Order) == g.VertexCount(), nil
}

// IsTree reports whether g is connected and has exactly V-1 edges,
// which together imply acyclicity.
func IsTree(g *core.Graph) (bool, error) {
	ok, err := Connected(g)
	if err != nil || !ok {
		return false, err
	}

	return g.EdgeCount() == g.VertexCount()-1, nil
}
