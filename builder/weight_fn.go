// SPDX-License-Identifier: MIT
// Package: pathbench/builder
//
// weight_fn.go - edge-weight distributions for the generators.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathbench/core"
	"github.com/katalvlaran/pathbench/rng"
)

// WeightFn produces one edge weight from the shared random source.
// It must be deterministic for a given source state and always return a
// positive weight.
type WeightFn func(src *rng.Source) core.Weight

// DefaultWeightFn draws uniformly from [MinRandomWeight, MaxRandomWeight].
func DefaultWeightFn(src *rng.Source) core.Weight {
	return src.Int64(MinRandomWeight, MaxRandomWeight)
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max]
// inclusive. Panics if min < 1 or max < min.
// Complexity: O(1) time, O(1) space.
func UniformWeightFn(min, max core.Weight) WeightFn {
	if min < 1 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(src *rng.Source) core.Weight {
		return src.Int64(min, max)
	}
}

// ConstantWeightFn returns a WeightFn that always yields value and never
// consumes randomness. Panics if value < 1.
func ConstantWeightFn(value core.Weight) WeightFn {
	if value < 1 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 1, got %d", value))
	}

	return func(*rng.Source) core.Weight {
		return value
	}
}
