package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Path is a sequence of vertices in traversal order, endpoints included.
type Path []Vertex

// From returns the first vertex of p. Panics on an empty path.
func (p Path) From() Vertex { return p[0] }

// To returns the last vertex of p. Panics on an empty path.
func (p Path) To() Vertex { return p[len(p)-1] }

// Hops returns the number of edges traversed by p.
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Weight returns the total edge weight of p in g.
//
// Errors:
//   - ErrEmptyPath        if p has no vertices.
//   - ErrVertexOutOfRange if any vertex is not in g.
//   - ErrEdgeNotFound     if two consecutive vertices are not adjacent.
//
// A single-vertex path weighs 0.
func (p Path) Weight(g *Graph) (Weight, error) {
	if len(p) == 0 {
		return 0, ErrEmptyPath
	}
	for _, v := range p {
		if !g.HasVertex(v) {
			return 0, fmt.Errorf("Path.Weight: vertex %d: %w", v, ErrVertexOutOfRange)
		}
	}

	var total Weight
	for i := 1; i < len(p); i++ {
		w, ok := g.Weight(p[i-1], p[i])
		if !ok {
			return 0, fmt.Errorf("Path.Weight: %d-%d: %w", p[i-1], p[i], ErrEdgeNotFound)
		}
		total += w
	}

	return total, nil
}

// Reverse reverses p in place and returns it.
func (p Path) Reverse() Path {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}

	return p
}

// String renders p as "0 -> 3 -> 1".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " -> ")
}
