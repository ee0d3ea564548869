// SPDX-License-Identifier: MIT
// Package: graphdp/builder
//
// options.go: functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs; constructors
// themselves never panic.

package builder

import "math/rand"

// BuilderOption customizes the resolved builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. It panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed attaches a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. It panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
