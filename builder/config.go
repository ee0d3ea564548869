// SPDX-License-Identifier: MIT
// Package: graphdp/builder
//
// config.go: resolved configuration and the edge buffer constructors write to.
//
// Deterministic defaults:
//   • rng      = nil   (stochastic constructors fail with ErrNeedRandSource)
//   • weightFn = DefaultWeightFn (constant 1)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/graphdp/core"
)

// builderConfig is passed by value to constructors.
type builderConfig struct {
	rng      *rand.Rand
	weightFn WeightFn
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{weightFn: DefaultWeightFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// buffer accumulates nodes and weighted edges across constructors.
type buffer struct {
	n     int
	edges []core.WeightedEdge
	cfg   builderConfig
}

// reserve appends k nodes and returns the id of the first.
func (b *buffer) reserve(k int) int {
	base := b.n
	b.n += k

	return base
}

// edge records u→v with the next generated weight.
func (b *buffer) edge(u, v int) {
	b.edges = append(b.edges, core.WeightedEdge{From: u, To: v, Weight: b.cfg.weightFn(b.cfg.rng)})
}
