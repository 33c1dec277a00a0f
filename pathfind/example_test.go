package pathfind_test

import (
	"fmt"

	"github.com/katalvlaran/pathbench/core"
	"github.com/katalvlaran/pathbench/pathfind"
)

// ExampleDijkstra finds the cheaper two-hop route around a heavy edge.
func ExampleDijkstra() {
	b, _ := core.NewBuilder(3)
	_ = b.AddEdge(0, 2, 9)
	_ = b.AddEdge(0, 1, 2)
	_ = b.AddEdge(1, 2, 3)
	g := b.Build()

	p, err := pathfind.Dijkstra{}.Pathfind(g, 0, 2)
	if err != nil {
		panic(err)
	}
	w, _ := p.Weight(g)
	fmt.Println(p, w)
	// Output: 0 -> 1 -> 2 5
}

// ExampleAllPairs reads distances from a Floyd-Warshall table.
func ExampleAllPairs() {
	b, _ := core.NewBuilder(3)
	_ = b.AddEdge(0, 1, 2)
	g := b.Build()

	t := pathfind.AllPairs(g)
	d01, _ := t.Distance(0, 1)
	d02, _ := t.Distance(0, 2)
	fmt.Println(d01, d02)
	// Output: 2 inf
}
