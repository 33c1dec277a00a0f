// SPDX-License-Identifier: MIT
// Package: pathbench/builder
//
// impl_partial.go - connected sparse graphs via random walk plus fill-in.
//
// Algorithm:
//  1. Draw density d ~ U[minDensity, maxDensity]; target = ⌊d·n(n-1)/2⌋,
//     clamped to n(n-1)/2.
//  2. Keep a pool of unvisited vertices. Pick one uniformly as current,
//     mark it visited and drop it from the pool.
//  3. While the pool is not empty, pick a candidate uniformly from it. If the
//     candidate is unvisited, join current-candidate, mark it visited and drop
//     it from the pool. Either way current advances to the candidate.
//  4. While fewer than target edges exist, join a uniformly drawn pair of
//     distinct non-adjacent vertices, redrawing the pair until one is found.
//
// Guarantees:
//   - Connected: step 3 reaches every vertex through a newly added edge.
//   - EdgeCount ≥ n-1, and EdgeCount == max(n-1, target).
//   - The reported edge count is the number of edges actually present.
//
// Complexity:
//   - Walk: O(n). Fill-in: expected O(target) draws since density ≤ 1/2
//     keeps the rejection rate bounded.

package builder

import (
	"math"

	"github.com/katalvlaran/pathbench/core"
	"github.com/katalvlaran/pathbench/rng"
)

// Partial generates connected sparse graphs.
type Partial struct {
	src *rng.Source
	cfg builderConfig
}

// NewPartial returns the sparse connected generator drawing from src.
func NewPartial(src *rng.Source, opts ...Option) *Partial {
	return &Partial{src: src, cfg: newBuilderConfig(opts...)}
}

// Name returns "Partial".
func (p *Partial) Name() string { return NamePartial }

// TargetEdges returns the edge count implied by density d for n vertices,
// floored and clamped to the complete graph's edge count.
func TargetEdges(n int, d float64) int {
	maxEdges := n * (n - 1) / 2
	target := int(math.Floor(0.5 * d * float64(n) * float64(n-1)))
	if target > maxEdges {
		return maxEdges
	}
	if target < 0 {
		return 0
	}

	return target
}

// Generate builds a connected graph on n vertices whose density lies in the
// configured range (or is n-1 edges when the range asks for fewer).
func (p *Partial) Generate(n int) (*core.Graph, error) {
	b, err := prepare(NamePartial, p.src, n)
	if err != nil {
		return nil, err
	}

	// 1) target edge count
	density := p.src.Float(p.cfg.minDensity, p.cfg.maxDensity)
	target := TargetEdges(n, density)

	// 2) random walk spanning structure
	if err = p.walk(b, n); err != nil {
		return nil, err
	}

	// 3) fill-in up to the target
	var u, v core.Vertex
	for b.EdgeCount() < target {
		u = p.src.Index(n)
		v = p.src.Index(n)
		if u == v || b.HasEdge(u, v) {
			continue
		}
		if err = addEdge(NamePartial, b, p.cfg, p.src, u, v); err != nil {
			return nil, err
		}
	}

	return b.Build(), nil
}

// walk lays down a spanning structure by walking over the unvisited pool.
func (p *Partial) walk(b *core.Builder, n int) error {
	pool := make([]core.Vertex, n)
	for i := range pool {
		pool[i] = i
	}
	visited := make([]bool, n)

	take := func(idx int) core.Vertex {
		v := pool[idx]
		last := len(pool) - 1
		pool[idx] = pool[last]
		pool = pool[:last]

		return v
	}

	current := take(p.src.Index(len(pool)))
	visited[current] = true

	for len(pool) > 0 {
		idx := p.src.Index(len(pool))
		candidate := pool[idx]
		if !visited[candidate] {
			if err := addEdge(NamePartial, b, p.cfg, p.src, current, candidate); err != nil {
				return err
			}
			visited[candidate] = true
			take(idx)
		}
		current = candidate
	}

	return nil
}
