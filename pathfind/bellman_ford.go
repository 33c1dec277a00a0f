package pathfind

import (
	"github.com/katalvlaran/pathbench/core"
)

// BellmanFord relaxes every edge in both orientations for exactly V-1 passes.
// Weights are positive, so no negative-cycle detection pass is run.
type BellmanFord struct{}

// Name returns "Bellman-Ford".
func (BellmanFord) Name() string { return NameBellmanFord }

// Pathfind computes distances from `from` and walks back from `to`.
// All V-1 passes always run, even once distances have settled.
//
// Complexity: O(V·E) time, O(V) space.
func (bf BellmanFord) Pathfind(g *core.Graph, from, to core.Vertex) (core.Path, error) {
	if err := validate(NameBellmanFord, g, from, to); err != nil {
		return nil, err
	}

	s, _ := bf.solve(g, from)

	return s.path(NameBellmanFord, from, to)
}

// solve runs the relaxation passes and returns the state and the number of
// passes made.
func (BellmanFord) solve(g *core.Graph, from core.Vertex) (*singleSource, int) {
	n := g.VertexCount()
	s := newSingleSource(n, from)
	edges := g.Edges()

	passes := 0
	for ; passes < n-1; passes++ {
		for _, e := range edges {
			s.relax(e.U, e.V, e.Weight)
			s.relax(e.V, e.U, e.Weight)
		}
	}

	return s, passes
}
