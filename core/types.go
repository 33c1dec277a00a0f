package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrTooFewVertices indicates a graph with fewer than MinVertices vertices.
	ErrTooFewVertices = errors.New("core: the number of vertices must be at least 2")

	// ErrVertexOutOfRange indicates a vertex id outside [0, VertexCount()).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrLoopNotAllowed indicates an attempt to add a self-loop.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates an attempt to add a second edge between the same pair.
	ErrDuplicateEdge = errors.New("core: edge already exists")

	// ErrBadWeight indicates a non-positive edge weight.
	ErrBadWeight = errors.New("core: edge weight must be positive")

	// ErrEdgeNotFound indicates a lookup of an absent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEmptyPath indicates an operation that needs at least one vertex.
	ErrEmptyPath = errors.New("core: path is empty")
)

// MinVertices is the smallest vertex count a Graph can be built with.
const MinVertices = 2

// Vertex is a dense, zero-based vertex identifier.
type Vertex = int

// Weight is a positive integer edge weight.
type Weight = int64

// Edge is one undirected edge in canonical orientation (U < V).
type Edge struct {
	U, V   Vertex
	Weight Weight
}

// Other returns the endpoint of e opposite to v.
func (e Edge) Other(v Vertex) Vertex {
	if v == e.U {
		return e.V
	}

	return e.U
}

// String renders the edge as "u-v(w)".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d(%d)", e.U, e.V, e.Weight)
}

// Arc is one directed view of an undirected edge, stored in adjacency lists.
type Arc struct {
	To     Vertex
	Weight Weight
}

// canonical orders a vertex pair so that u < v.
func canonical(u, v Vertex) (Vertex, Vertex) {
	if u > v {
		return v, u
	}

	return u, v
}
