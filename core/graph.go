package core

import (
	"fmt"
	"sort"
	"strings"
)

// Graph is an immutable weighted undirected graph over vertices [0, n).
// Build one with a Builder; the zero Graph is not usable.
type Graph struct {
	adj   [][]Arc // adj[u] sorted by Arc.To
	edges []Edge  // canonical U < V, sorted by (U, V)
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.adj) }

// EdgeCount returns the number of undirected edges actually present.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasVertex reports whether v is a vertex of g.
func (g *Graph) HasVertex(v Vertex) bool { return v >= 0 && v < len(g.adj) }

// Vertices returns the vertex ids in ascending order.
// Complexity: O(V).
func (g *Graph) Vertices() []Vertex {
	vs := make([]Vertex, len(g.adj))
	for i := range vs {
		vs[i] = i
	}

	return vs
}

// Neighbors returns the adjacency of v sorted by neighbor id.
// The returned slice is shared with the Graph and must not be modified.
// Returns ErrVertexOutOfRange for an unknown vertex.
// Complexity: O(1).
func (g *Graph) Neighbors(v Vertex) ([]Arc, error) {
	if !g.HasVertex(v) {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrVertexOutOfRange)
	}

	return g.adj[v], nil
}

// Degree returns the number of neighbors of v, or 0 for an unknown vertex.
func (g *Graph) Degree(v Vertex) int {
	if !g.HasVertex(v) {
		return 0
	}

	return len(g.adj[v])
}

// Edges returns every undirected edge once, canonical U < V, sorted by (U, V).
// The returned slice is shared with the Graph and must not be modified.
// Complexity: O(1).
func (g *Graph) Edges() []Edge { return g.edges }

// Weight returns the weight of {u, v} and whether the edge exists.
// Complexity: O(log deg(u)).
func (g *Graph) Weight(u, v Vertex) (Weight, bool) {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return 0, false
	}
	arcs := g.adj[u]
	i := sort.Search(len(arcs), func(i int) bool { return arcs[i].To >= v })
	if i < len(arcs) && arcs[i].To == v {
		return arcs[i].Weight, true
	}

	return 0, false
}

// HasEdge reports whether {u, v} is an edge of g.
func (g *Graph) HasEdge(u, v Vertex) bool {
	_, ok := g.Weight(u, v)

	return ok
}

// TotalWeight returns the sum of all edge weights.
func (g *Graph) TotalWeight() Weight {
	var sum Weight
	for _, e := range g.edges {
		sum += e.Weight
	}

	return sum
}

// Density returns EdgeCount / (n(n-1)/2).
func (g *Graph) Density() float64 {
	n := float64(len(g.adj))

	return float64(len(g.edges)) / (n * (n - 1) / 2)
}

// String dumps the graph one vertex per line: "v: a(w) b(w) ...".
func (g *Graph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Graph(vertices=%d, edges=%d)\n", g.VertexCount(), g.EdgeCount())
	for u, arcs := range g.adj {
		fmt.Fprintf(&sb, "%d:", u)
		for _, a := range arcs {
			fmt.Fprintf(&sb, " %d(%d)", a.To, a.Weight)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
