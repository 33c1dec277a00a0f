package builder_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/pathbench/bfs"
	"github.com/katalvlaran/pathbench/builder"
	"github.com/katalvlaran/pathbench/core"
	"github.com/katalvlaran/pathbench/rng"
)

// componentsOf counts connected components with gonum as an independent check.
func componentsOf(g *core.Graph) int {
	ug := simple.NewUndirectedGraph()
	for _, v := range g.Vertices() {
		ug.AddNode(simple.Node(v))
	}
	for _, e := range g.Edges() {
		ug.SetEdge(simple.Edge{F: simple.Node(e.U), T: simple.Node(e.V)})
	}

	return len(topo.ConnectedComponents(ug))
}

// assertWeightsInRange checks every edge weight against [min, max].
func assertWeightsInRange(t *testing.T, g *core.Graph, min, max core.Weight) {
	t.Helper()
	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.Weight, min, "edge %s", e)
		assert.LessOrEqual(t, e.Weight, max, "edge %s", e)
	}
}

func TestGenerators_TooFewVertices(t *testing.T) {
	t.Parallel()

	for _, gen := range builder.All(rng.New(1)) {
		for _, n := range []int{-1, 0, 1} {
			_, err := gen.Generate(n)
			assert.ErrorIs(t, err, builder.ErrTooFewVertices, "%s(%d)", gen.Name(), n)
		}
	}
}

func TestGenerators_NilSource(t *testing.T) {
	t.Parallel()

	for _, gen := range builder.All(nil) {
		_, err := gen.Generate(4)
		assert.ErrorIs(t, err, builder.ErrNeedRandSource, gen.Name())
	}
}

func TestGenerators_SameErrorText(t *testing.T) {
	t.Parallel()

	for _, gen := range builder.All(rng.New(1)) {
		_, err := gen.Generate(1)
		require.Error(t, err)
		assert.Equal(t, gen.Name()+": n=1 < min=2: "+builder.ErrTooFewVertices.Error(), err.Error())
	}
	for _, gen := range builder.All(nil) {
		_, err := gen.Generate(3)
		require.Error(t, err)
		assert.Equal(t, gen.Name()+": "+builder.ErrNeedRandSource.Error(), err.Error())
	}
}

func TestFull_CompleteAndSymmetric(t *testing.T) {
	t.Parallel()

	g, err := builder.NewFull(rng.New(42)).Generate(5)
	require.NoError(t, err)

	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 10, g.EdgeCount())
	assertWeightsInRange(t, g, builder.MinRandomWeight, builder.MaxRandomWeight)

	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if i == j {
				assert.False(t, g.HasEdge(i, j))
				continue
			}
			wij, ok1 := g.Weight(i, j)
			wji, ok2 := g.Weight(j, i)
			require.True(t, ok1 && ok2, "edge %d-%d", i, j)
			assert.Equal(t, wij, wji)
		}
	}
}

func TestFull_EdgeCountAcrossSizes(t *testing.T) {
	t.Parallel()

	gen := builder.NewFull(rng.New(7))
	for _, n := range []int{2, 3, 10, 31} {
		g, err := gen.Generate(n)
		require.NoError(t, err)
		assert.Equal(t, n*(n-1)/2, g.EdgeCount(), "n=%d", n)
	}
}

func TestFull_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := builder.NewFull(rng.New(99)).Generate(12)
	require.NoError(t, err)
	b, err := builder.NewFull(rng.New(99)).Generate(12)
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges())
}

func TestPartial_ConnectedAndDenseEnough(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 8; seed++ {
		gen := builder.NewPartial(rng.New(seed))
		for _, n := range []int{2, 3, 4, 5, 10, 25, 60} {
			g, err := gen.Generate(n)
			require.NoError(t, err, "seed=%d n=%d", seed, n)

			ok, err := bfs.Connected(g)
			require.NoError(t, err)
			assert.True(t, ok, "seed=%d n=%d not connected", seed, n)
			assert.Equal(t, 1, componentsOf(g), "seed=%d n=%d", seed, n)

			assert.GreaterOrEqual(t, g.EdgeCount(), n-1)
			assert.LessOrEqual(t, g.EdgeCount(), n*(n-1)/2)
			assert.Len(t, g.Edges(), g.EdgeCount())
			assertWeightsInRange(t, g, builder.MinRandomWeight, builder.MaxRandomWeight)
		}
	}
}

func TestPartial_DensityWithinRange(t *testing.T) {
	t.Parallel()

	gen := builder.NewPartial(rng.New(3))
	n := 100
	g, err := gen.Generate(n)
	require.NoError(t, err)

	// For n=100 the walk's 99 edges are well below the target, so the
	// fill-in decides the count.
	lo := builder.TargetEdges(n, builder.MinDensity)
	hi := builder.TargetEdges(n, builder.MaxDensity)
	assert.GreaterOrEqual(t, g.EdgeCount(), lo)
	assert.LessOrEqual(t, g.EdgeCount(), hi)
}

func TestPartial_FullDensityClampsToComplete(t *testing.T) {
	t.Parallel()

	gen := builder.NewPartial(rng.New(5), builder.WithDensityRange(1, 1))
	g, err := gen.Generate(9)
	require.NoError(t, err)
	assert.Equal(t, 36, g.EdgeCount())
}

func TestTargetEdges(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, builder.TargetEdges(2, 0.4))
	assert.Equal(t, 18, builder.TargetEdges(10, 0.4))
	assert.Equal(t, 22, builder.TargetEdges(10, 0.5))
	assert.Equal(t, 45, builder.TargetEdges(10, 1.7))
}

func TestTree_EdgeCountAndBridges(t *testing.T) {
	t.Parallel()

	g, err := builder.NewTree(rng.New(11)).Generate(6)
	require.NoError(t, err)
	assert.Equal(t, 5, g.EdgeCount())

	ok, err := bfs.IsTree(g)
	require.NoError(t, err)
	assert.True(t, ok)

	// Removing any edge of a tree disconnects it.
	for _, e := range g.Edges() {
		connected, err := bfs.Connected(g, bfs.WithoutEdge(e.U, e.V))
		require.NoError(t, err)
		assert.False(t, connected, "graph still connected without %s", e)
	}
}

func TestTree_ManySeeds(t *testing.T) {
	t.Parallel()

	for seed := int64(0); seed < 20; seed++ {
		gen := builder.NewTree(rng.New(seed))
		for _, n := range []int{2, 3, 7, 40} {
			g, err := gen.Generate(n)
			require.NoError(t, err)
			assert.Equal(t, n-1, g.EdgeCount())
			assert.Equal(t, 1, componentsOf(g), "seed=%d n=%d", seed, n)
		}
	}
}

func TestPruferDecode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		seq  []int
		n    int
		want [][2]core.Vertex
	}{
		{"pair", nil, 2, [][2]core.Vertex{{0, 1}}},
		{"path3", []int{2}, 3, [][2]core.Vertex{{0, 1}, {1, 2}}},
		{"star-ish", []int{4, 4, 4, 5}, 6, [][2]core.Vertex{{0, 3}, {1, 3}, {2, 3}, {3, 4}, {4, 5}}},
		{"chain", []int{2, 3, 4}, 5, [][2]core.Vertex{{0, 1}, {1, 2}, {2, 3}, {3, 4}}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.PruferDecode(tc.seq, tc.n, func() core.Weight { return 3 })
			require.NoError(t, err)

			got := make([][2]core.Vertex, 0, g.EdgeCount())
			for _, e := range g.Edges() {
				got = append(got, [2]core.Vertex{e.U, e.V})
				assert.Equal(t, core.Weight(3), e.Weight)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPruferDecode_Invalid(t *testing.T) {
	t.Parallel()

	_, err := builder.PruferDecode([]int{1}, 4, nil)
	assert.ErrorIs(t, err, builder.ErrInvalidSequence)

	_, err = builder.PruferDecode([]int{0, 2}, 4, nil)
	assert.ErrorIs(t, err, builder.ErrInvalidSequence)

	_, err = builder.PruferDecode([]int{5, 2}, 4, nil)
	assert.ErrorIs(t, err, builder.ErrInvalidSequence)

	_, err = builder.PruferDecode(nil, 1, nil)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestByNameAndAll(t *testing.T) {
	t.Parallel()

	src := rng.New(1)
	names := make([]string, 0, 3)
	for _, g := range builder.All(src) {
		names = append(names, g.Name())
	}
	assert.Equal(t, builder.Names(), names)

	for _, in := range []string{"Full", "partial", "TREE"} {
		g, err := builder.ByName(in, src)
		require.NoError(t, err)
		assert.True(t, len(g.Name()) > 0)
	}

	_, err := builder.ByName("Grid", src)
	assert.ErrorIs(t, err, builder.ErrUnknownTopology)
}

func TestOptions(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithWeightRange(0, 5) })
	assert.Panics(t, func() { builder.WithWeightRange(5, 4) })
	assert.Panics(t, func() { builder.WithConstantWeight(0) })
	assert.Panics(t, func() { builder.WithDensityRange(0.6, 0.5) })
	assert.Panics(t, func() { builder.WithDensityRange(-0.1, 0.5) })

	g, err := builder.NewFull(rng.New(1), builder.WithConstantWeight(4)).Generate(4)
	require.NoError(t, err)
	assert.Equal(t, core.Weight(24), g.TotalWeight())

	g, err = builder.NewTree(rng.New(1), builder.WithWeightRange(20, 25)).Generate(30)
	require.NoError(t, err)
	assertWeightsInRange(t, g, 20, 25)
}

func BenchmarkGenerators(b *testing.B) {
	for _, n := range []int{50, 200} {
		for _, gen := range builder.All(rng.New(1)) {
			b.Run(fmt.Sprintf("%s/n=%d", gen.Name(), n), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					if _, err := gen.Generate(n); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
