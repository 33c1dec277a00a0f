// SPDX-License-Identifier: MIT
// Package: pathbench/builder
//
// api.go - the Generator contract and the closed list of topologies.
//
// Design contract:
//   - Every topology implements Generator; the benchmark driver iterates a
//     []Generator without knowing concrete types.
//   - The variant list is closed: {Full, Partial, Tree}, in that order.
//   - Determinism: the same seed, options and call order yield identical graphs.

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pathbench/core"
	"github.com/katalvlaran/pathbench/rng"
)

// Generator produces a graph of a requested vertex count.
type Generator interface {
	// Name returns the stable display name of the topology.
	Name() string

	// Generate builds a new graph with n vertices. n < MinVertices yields
	// ErrTooFewVertices; every result satisfies the core.Graph invariants.
	Generate(n int) (*core.Graph, error)
}

// All returns one generator per topology, sharing src, in the canonical
// order Full, Partial, Tree.
func All(src *rng.Source, opts ...Option) []Generator {
	return []Generator{
		NewFull(src, opts...),
		NewPartial(src, opts...),
		NewTree(src, opts...),
	}
}

// Names returns the display names of all topologies in canonical order.
func Names() []string {
	return []string{NameFull, NamePartial, NameTree}
}

// ByName returns the generator whose display name matches name
// (case-insensitive). Returns ErrUnknownTopology otherwise.
func ByName(name string, src *rng.Source, opts ...Option) (Generator, error) {
	switch {
	case strings.EqualFold(name, NameFull):
		return NewFull(src, opts...), nil
	case strings.EqualFold(name, NamePartial):
		return NewPartial(src, opts...), nil
	case strings.EqualFold(name, NameTree):
		return NewTree(src, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownTopology, name, strings.Join(Names(), ", "))
	}
}

// checkArgs validates the preconditions every generator shares.
func checkArgs(method string, src *rng.Source, n int) error {
	if n < MinVertices {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, MinVertices, ErrTooFewVertices)
	}
	if src == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}

// prepare runs checkArgs and returns a fresh builder.
func prepare(method string, src *rng.Source, n int) (*core.Builder, error) {
	if err := checkArgs(method, src, n); err != nil {
		return nil, err
	}
	b, err := core.NewBuilder(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return b, nil
}

// addEdge adds {u, v} with a weight from cfg, wrapping failures as
// ErrConstructFailed since generators only ever emit valid edges.
func addEdge(method string, b *core.Builder, cfg builderConfig, src *rng.Source, u, v core.Vertex) error {
	w := cfg.weightFn(src)
	if err := b.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d-%d, w=%d): %v: %w", method, u, v, w, err, ErrConstructFailed)
	}

	return nil
}
