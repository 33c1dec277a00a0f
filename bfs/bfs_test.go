package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathbench/bfs"
	"github.com/katalvlaran/pathbench/core"
)

// mustGraph builds an n-vertex graph from {u, v} pairs, all with weight 1.
func mustGraph(t testing.TB, n int, pairs ...[2]core.Vertex) *core.Graph {
	t.Helper()

	b, err := core.NewBuilder(n)
	require.NoError(t, err)
	for _, p := range pairs {
		require.NoError(t, b.AddEdge(p[0], p[1], 1))
	}

	return b.Build()
}

func TestBFS_Errors(t *testing.T) {
	t.Parallel()

	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := mustGraph(t, 2, [2]core.Vertex{0, 1})
	_, err = bfs.BFS(g, 5)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_CycleDepthsAndOrder(t *testing.T) {
	t.Parallel()

	// 0-1-2-3-0
	g := mustGraph(t, 4, [2]core.Vertex{0, 1}, [2]core.Vertex{1, 2}, [2]core.Vertex{2, 3}, [2]core.Vertex{3, 0})
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)

	assert.Equal(t, []core.Vertex{0, 1, 3, 2}, res.Order)
	for v, want := range map[core.Vertex]int{0: 0, 1: 1, 3: 1, 2: 2} {
		d, ok := res.Depth(v)
		require.True(t, ok)
		assert.Equal(t, want, d, "depth of %d", v)
	}

	_, ok := res.Parent(0)
	assert.False(t, ok, "start has no parent")
	p, ok := res.Parent(2)
	assert.True(t, ok)
	assert.Equal(t, 1, p)

	path, err := res.PathTo(2)
	require.NoError(t, err)
	assert.Equal(t, core.Path{0, 1, 2}, path)
}

func TestBFS_UnreachedVertex(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, 3, [2]core.Vertex{0, 1})
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)

	assert.False(t, res.Reached(2))
	_, ok := res.Depth(2)
	assert.False(t, ok)
	_, err = res.PathTo(2)
	assert.ErrorIs(t, err, bfs.ErrNotReached)

	ok, err = bfs.Connected(g)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBFS_MaxDepth(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, 4, [2]core.Vertex{0, 1}, [2]core.Vertex{1, 2}, [2]core.Vertex{2, 3})
	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []core.Vertex{0, 1, 2}, res.Order)
}

func TestBFS_WithoutEdge(t *testing.T) {
	t.Parallel()

	// path 0-1-2: dropping 1-2 (seen from either side) disconnects 2
	g := mustGraph(t, 3, [2]core.Vertex{0, 1}, [2]core.Vertex{1, 2})
	for _, drop := range [][2]core.Vertex{{1, 2}, {2, 1}} {
		ok, err := bfs.Connected(g, bfs.WithoutEdge(drop[0], drop[1]))
		require.NoError(t, err)
		assert.False(t, ok, "removing %v must disconnect", drop)
	}

	ok, err := bfs.Connected(g)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBFS_OnVisitAbort(t *testing.T) {
	t.Parallel()

	stop := errors.New("stop")
	g := mustGraph(t, 3, [2]core.Vertex{0, 1}, [2]core.Vertex{1, 2})
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(v core.Vertex, _ int) error {
		if v == 1 {
			return stop
		}

		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

func TestBFS_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := mustGraph(t, 2, [2]core.Vertex{0, 1})
	_, err := bfs.BFS(g, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsTree(t *testing.T) {
	t.Parallel()

	tree := mustGraph(t, 4, [2]core.Vertex{0, 1}, [2]core.Vertex{0, 2}, [2]core.Vertex{2, 3})
	ok, err := bfs.IsTree(tree)
	require.NoError(t, err)
	assert.True(t, ok)

	cycle := mustGraph(t, 3, [2]core.Vertex{0, 1}, [2]core.Vertex{1, 2}, [2]core.Vertex{2, 0})
	ok, err = bfs.IsTree(cycle)
	require.NoError(t, err)
	assert.False(t, ok)

	forest := mustGraph(t, 4, [2]core.Vertex{0, 1}, [2]core.Vertex{2, 3})
	ok, err = bfs.IsTree(forest)
	require.NoError(t, err)
	assert.False(t, ok)
}
