// SPDX-License-Identifier: MIT
// Package: pathbench/builder
//
// options.go - functional options for the generators.
//
// Contract:
//   - Options are functional (type Option func(*builderConfig)).
//   - Option constructors validate and panic on meaningless inputs.
//     Generators themselves never panic.
//   - Later options override earlier ones.

package builder

import "fmt"

// Option customizes a generator by mutating its builderConfig.
type Option func(*builderConfig)

// builderConfig aggregates the knobs shared by all generators.
type builderConfig struct {
	weightFn   WeightFn
	minDensity float64 // Partial only
	maxDensity float64 // Partial only
}

// newBuilderConfig applies opts over the defaults.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		weightFn:   DefaultWeightFn,
		minDensity: MinDensity,
		maxDensity: MaxDensity,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithWeightRange sets weights ~ U[min,max] via UniformWeightFn.
func WithWeightRange(min, max int64) Option {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w int64) Option {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithDensityRange sets the interval the Partial generator draws its target
// density from. Panics unless 0 ≤ min ≤ max ≤ 1.
func WithDensityRange(min, max float64) Option {
	if min < 0 || max > 1 || min > max {
		panic(fmt.Sprintf("builder: WithDensityRange requires 0 ≤ min ≤ max ≤ 1, got [%g,%g]", min, max))
	}

	return func(c *builderConfig) {
		c.minDensity, c.maxDensity = min, max
	}
}
