// SPDX-License-Identifier: MIT
// Package: graphdp/builder
//
// impl_random.go: stochastic topologies: RandomSparse, RandomDigraph.
//
// Trial order is fixed (i ascending, then j ascending), so a fixed seed
// reproduces the same edge set.

package builder

import "fmt"

const minRandomNodes = 1

func checkRandom(method string, n int, p float64, cfg builderConfig) error {
	if n < minRandomNodes {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minRandomNodes, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", method, p, ErrInvalidProbability)
	}
	if cfg.rng == nil && p > 0 && p < 1 {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}

// include runs one Bernoulli trial; p of 0 or 1 needs no RNG.
func include(b *buffer, p float64) bool {
	switch p {
	case 0:
		return false
	case 1:
		return true
	}

	return b.cfg.rng.Float64() < p
}

// RandomSparse samples each pair i < j with probability p and emits i→j.
func RandomSparse(n int, p float64) Constructor {
	return func(b *buffer) error {
		if err := checkRandom("RandomSparse", n, p, b.cfg); err != nil {
			return err
		}
		base := b.reserve(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if include(b, p) {
					b.edge(base+i, base+j)
				}
			}
		}

		return nil
	}
}

// RandomDigraph samples each ordered pair i ≠ j with probability p.
func RandomDigraph(n int, p float64) Constructor {
	return func(b *buffer) error {
		if err := checkRandom("RandomDigraph", n, p, b.cfg); err != nil {
			return err
		}
		base := b.reserve(n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j && include(b, p) {
					b.edge(base+i, base+j)
				}
			}
		}

		return nil
	}
}
