// SPDX-License-Identifier: MIT
// Package: pathbench/builder
//
// impl_full.go - the complete graph K_n.
//
// Contract:
//   - n ≥ MinVertices (else ErrTooFewVertices).
//   - Every unordered pair {i,j}, i<j, gets exactly one weight draw; the
//     reverse direction mirrors it, never a second draw.
//   - EdgeCount == n(n-1)/2.
//
// Complexity:
//   - Time:  O(n²) edge emission (+ O(n² log n) to freeze sorted adjacency).
//   - Space: O(n²).
//
// Determinism:
//   - Pair order is lexicographic by (i,j), so the weight stream is stable
//     for a fixed seed.

package builder

import (
	"github.com/katalvlaran/pathbench/core"
	"github.com/katalvlaran/pathbench/rng"
)

// Full generates complete graphs.
type Full struct {
	src *rng.Source
	cfg builderConfig
}

// NewFull returns the complete-graph generator drawing from src.
func NewFull(src *rng.Source, opts ...Option) *Full {
	return &Full{src: src, cfg: newBuilderConfig(opts...)}
}

// Name returns "Full".
func (f *Full) Name() string { return NameFull }

// Generate builds K_n with random weights.
func (f *Full) Generate(n int) (*core.Graph, error) {
	b, err := prepare(NameFull, f.src, n)
	if err != nil {
		return nil, err
	}

	var i, j core.Vertex
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if err = addEdge(NameFull, b, f.cfg, f.src, i, j); err != nil {
				return nil, err
			}
		}
	}

	return b.Build(), nil
}
