package core

import (
	"fmt"
	"sort"
)

// Builder stages edges for a Graph of a fixed vertex count.
// All validation happens in AddEdge, so Build cannot fail.
type Builder struct {
	n     int
	adj   []map[Vertex]Weight // adj[u][v] = w, mirrored
	edges int
}

// NewBuilder returns a Builder for a graph with n vertices [0, n).
// Returns ErrTooFewVertices if n < MinVertices.
// Complexity: O(n).
func NewBuilder(n int) (*Builder, error) {
	if n < MinVertices {
		return nil, fmt.Errorf("NewBuilder(%d): %w", n, ErrTooFewVertices)
	}
	adj := make([]map[Vertex]Weight, n)
	for i := range adj {
		adj[i] = make(map[Vertex]Weight)
	}

	return &Builder{n: n, adj: adj}, nil
}

// VertexCount returns the number of vertices the Builder was created with.
func (b *Builder) VertexCount() int { return b.n }

// EdgeCount returns the number of undirected edges added so far.
func (b *Builder) EdgeCount() int { return b.edges }

// AddEdge adds the undirected edge {u, v} with weight w.
//
// Errors (in order):
//  1. ErrVertexOutOfRange if u or v is not in [0, VertexCount()).
//  2. ErrLoopNotAllowed   if u == v.
//  3. ErrBadWeight        if w <= 0.
//  4. ErrDuplicateEdge    if {u, v} already exists.
//
// Complexity: O(1) amortized.
func (b *Builder) AddEdge(u, v Vertex, w Weight) error {
	if !b.inRange(u) || !b.inRange(v) {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrVertexOutOfRange)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	if w <= 0 {
		return fmt.Errorf("AddEdge(%d,%d,w=%d): %w", u, v, w, ErrBadWeight)
	}
	if _, ok := b.adj[u][v]; ok {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrDuplicateEdge)
	}

	b.adj[u][v] = w
	b.adj[v][u] = w
	b.edges++

	return nil
}

// HasEdge reports whether {u, v} was added. Out-of-range ids report false.
func (b *Builder) HasEdge(u, v Vertex) bool {
	if !b.inRange(u) || !b.inRange(v) {
		return false
	}
	_, ok := b.adj[u][v]

	return ok
}

// Weight returns the weight of {u, v} and whether the edge exists.
func (b *Builder) Weight(u, v Vertex) (Weight, bool) {
	if !b.inRange(u) || !b.inRange(v) {
		return 0, false
	}
	w, ok := b.adj[u][v]

	return w, ok
}

// Build freezes the staged edges into an immutable Graph.
// The Builder may keep being used afterwards; later edges do not affect the
// returned Graph.
// Complexity: O(V + E log E).
func (b *Builder) Build() *Graph {
	g := &Graph{
		adj:   make([][]Arc, b.n),
		edges: make([]Edge, 0, b.edges),
	}

	var (
		u, v Vertex
		w    Weight
	)
	for u = 0; u < b.n; u++ {
		arcs := make([]Arc, 0, len(b.adj[u]))
		for v, w = range b.adj[u] {
			arcs = append(arcs, Arc{To: v, Weight: w})
			if u < v {
				g.edges = append(g.edges, Edge{U: u, V: v, Weight: w})
			}
		}
		// map iteration is random; sort for deterministic neighbor order
		sort.Slice(arcs, func(i, j int) bool { return arcs[i].To < arcs[j].To })
		g.adj[u] = arcs
	}
	sort.Slice(g.edges, func(i, j int) bool {
		if g.edges[i].U != g.edges[j].U {
			return g.edges[i].U < g.edges[j].U
		}

		return g.edges[i].V < g.edges[j].V
	})

	return g
}

func (b *Builder) inRange(v Vertex) bool { return v >= 0 && v < b.n }
