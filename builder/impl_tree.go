// SPDX-License-Identifier: MIT
// Package: pathbench/builder
//
// impl_tree.go - random labeled trees via Prüfer sequences.
//
// Algorithm:
//  1. Draw n-2 labels, each uniform in [1, n].
//  2. Decode: freq[v] = occurrences of v in the sequence. For each entry s
//     (left to right) join s with the smallest label whose freq is zero and
//     that is still unused, mark that label used and decrement freq[s].
//  3. Join the last two unused labels.
//  4. Shift labels from 1-indexed to 0-indexed vertices.
//
// Guarantees:
//   - Exactly n-1 edges, connected, acyclic.
//
// Complexity:
//   - Time:  O(n log n) using a min-heap of available leaves.
//   - Space: O(n).

package builder

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/pathbench/core"
	"github.com/katalvlaran/pathbench/rng"
)

// Tree generates random spanning trees.
type Tree struct {
	src *rng.Source
	cfg builderConfig
}

// NewTree returns the random-tree generator drawing from src.
func NewTree(src *rng.Source, opts ...Option) *Tree {
	return &Tree{src: src, cfg: newBuilderConfig(opts...)}
}

// Name returns "Tree".
func (t *Tree) Name() string { return NameTree }

// Generate builds a random tree on n vertices.
func (t *Tree) Generate(n int) (*core.Graph, error) {
	if err := checkArgs(NameTree, t.src, n); err != nil {
		return nil, err
	}

	seq := make([]int, n-2)
	for i := range seq {
		seq[i] = t.src.Int(1, n)
	}

	src, fn := t.src, t.cfg.weightFn
	g, err := PruferDecode(seq, n, func() core.Weight { return fn(src) })
	if err != nil {
		return nil, fmt.Errorf("%s: %w", NameTree, err)
	}

	return g, nil
}

// PruferDecode converts a Prüfer sequence over labels [1, n] into the tree it
// encodes, on 0-indexed vertices. weight is called once per edge in decode
// order. len(seq) must equal n-2 and n ≥ MinVertices.
func PruferDecode(seq []int, n int, weight func() core.Weight) (*core.Graph, error) {
	if n < MinVertices {
		return nil, fmt.Errorf("PruferDecode: n=%d < min=%d: %w", n, MinVertices, ErrTooFewVertices)
	}
	if len(seq) != n-2 {
		return nil, fmt.Errorf("PruferDecode: len=%d, want %d: %w", len(seq), n-2, ErrInvalidSequence)
	}
	if weight == nil {
		weight = func() core.Weight { return MinRandomWeight }
	}

	// freq is indexed by label; index 0 is unused.
	freq := make([]int, n+1)
	for i, s := range seq {
		if s < 1 || s > n {
			return nil, fmt.Errorf("PruferDecode: seq[%d]=%d outside [1,%d]: %w", i, s, n, ErrInvalidSequence)
		}
		freq[s]++
	}

	leaves := make(labelHeap, 0, n)
	for label := 1; label <= n; label++ {
		if freq[label] == 0 {
			leaves = append(leaves, label)
		}
	}
	heap.Init(&leaves)

	b, err := core.NewBuilder(n)
	if err != nil {
		return nil, fmt.Errorf("PruferDecode: %w", err)
	}
	join := func(a, c int) error {
		if err := b.AddEdge(a-1, c-1, weight()); err != nil {
			return fmt.Errorf("PruferDecode: %v: %w", err, ErrConstructFailed)
		}

		return nil
	}

	for _, s := range seq {
		leaf := heap.Pop(&leaves).(int)
		if err = join(leaf, s); err != nil {
			return nil, err
		}
		freq[s]--
		if freq[s] == 0 {
			heap.Push(&leaves, s)
		}
	}

	// Exactly two labels remain.
	a := heap.Pop(&leaves).(int)
	c := heap.Pop(&leaves).(int)
	if err = join(a, c); err != nil {
		return nil, err
	}

	return b.Build(), nil
}

// labelHeap is a min-heap of Prüfer labels.
type labelHeap []int

func (h labelHeap) Len() int           { return len(h) }
func (h labelHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h labelHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *labelHeap) Push(x any)        { *h = append(*h, x.(int)) }
func (h *labelHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}
