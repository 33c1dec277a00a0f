package builder_test

import (
	"fmt"

	"github.com/katalvlaran/pathbench/builder"
	"github.com/katalvlaran/pathbench/core"
	"github.com/katalvlaran/pathbench/rng"
)

// ExamplePruferDecode decodes a fixed sequence into its tree.
func ExamplePruferDecode() {
	g, err := builder.PruferDecode([]int{4, 4, 4, 5}, 6, func() core.Weight { return 1 })
	if err != nil {
		panic(err)
	}
	fmt.Println(g.Edges())
	// Output: [0-3(1) 1-3(1) 2-3(1) 3-4(1) 4-5(1)]
}

// ExampleNewFull shows the edge count of a complete graph.
func ExampleNewFull() {
	g, err := builder.NewFull(rng.New(1)).Generate(5)
	if err != nil {
		panic(err)
	}
	fmt.Println(g.VertexCount(), g.EdgeCount())
	// Output: 5 10
}
