package pathfind

import (
	"github.com/katalvlaran/pathbench/core"
)

// SPFA is the Shortest Path Faster Algorithm: Bellman-Ford driven by a FIFO
// queue of vertices whose distance just improved.
type SPFA struct{}

// Name returns "SPFA".
func (SPFA) Name() string { return NameSPFA }

// Pathfind seeds the queue with `from` and relaxes until the queue drains.
// A vertex is never queued twice at once.
//
// Complexity: O(V·E) worst case, typically far less; O(V) space.
func (sp SPFA) Pathfind(g *core.Graph, from, to core.Vertex) (core.Path, error) {
	if err := validate(NameSPFA, g, from, to); err != nil {
		return nil, err
	}

	return sp.solve(g, from).path(NameSPFA, from, to)
}

// solve drains the queue and returns the single-source state.
func (SPFA) solve(g *core.Graph, from core.Vertex) *singleSource {
	n := g.VertexCount()
	s := newSingleSource(n, from)
	queued := make([]bool, n)
	queue := make([]core.Vertex, 0, n)
	queue = append(queue, from)
	queued[from] = true

	var u core.Vertex
	for len(queue) > 0 {
		u, queue = queue[0], queue[1:]
		queued[u] = false
		if s.dist[u].IsInf() {
			continue
		}

		arcs, _ := g.Neighbors(u)
		for _, a := range arcs {
			if s.relax(u, a.To, a.Weight) && !queued[a.To] {
				queue = append(queue, a.To)
				queued[a.To] = true
			}
		}
	}

	return s
}
