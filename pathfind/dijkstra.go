package pathfind

import (
	"github.com/katalvlaran/pathbench/core"
)

// Dijkstra is the naive O(V²) variant: the next vertex is found by a linear
// scan over the working set rather than a priority queue.
type Dijkstra struct{}

// Name returns "Dijkstra".
func (Dijkstra) Name() string { return NameDijkstra }

// Pathfind runs Dijkstra from `from`, stopping as soon as `to` is selected.
//
// Steps:
//  1. Validate.
//  2. dist[from] = 0, every vertex in the working set.
//  3. Select the working-set vertex of least distance (first wins ties).
//     Stop if it is infinite (rest unreachable) or if it is `to`; a
//     reflexive query stops on the first selection.
//  4. Remove it and relax its neighbors still in the working set.
//
// Complexity: O(V² + E) time, O(V) space.
func (Dijkstra) Pathfind(g *core.Graph, from, to core.Vertex) (core.Path, error) {
	if err := validate(NameDijkstra, g, from, to); err != nil {
		return nil, err
	}

	n := g.VertexCount()
	s := newSingleSource(n, from)
	open := make([]bool, n)
	for i := range open {
		open[i] = true
	}

	var u, v core.Vertex
	for remaining := n; remaining > 0; remaining-- {
		// linear-scan selection
		u = -1
		for v = 0; v < n; v++ {
			if open[v] && (u < 0 || s.dist[v].Less(s.dist[u])) {
				u = v
			}
		}
		if s.dist[u].IsInf() || u == to {
			break
		}
		open[u] = false

		arcs, _ := g.Neighbors(u)
		for _, a := range arcs {
			if open[a.To] {
				s.relax(u, a.To, a.Weight)
			}
		}
	}

	return s.path(NameDijkstra, from, to)
}
