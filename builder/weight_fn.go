// SPDX-License-Identifier: MIT
// Package: graphdp/builder
//
// weight_fn.go: edge weight generators.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight produced by DefaultWeightFn.
const DefaultEdgeWeight int64 = 1

// WeightFn produces an edge weight from an optional RNG. It must be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn yielding value. It panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn samples uniformly in [min, max]. It panics unless
// 0 ≤ min ≤ max. With a nil RNG it yields min.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Int63n(max-min+1)
	}
}
