// SPDX-License-Identifier: MIT
// Package: graphdp/builder
//
// impl_simple.go: deterministic topologies: Path, Cycle, Star, Complete, Grid.

package builder

import "fmt"

const (
	minPathNodes     = 1
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
	minGridDim       = 1
)

// Path builds P_n: edges i→i+1.
func Path(n int) Constructor {
	return func(b *buffer) error {
		if n < minPathNodes {
			return fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
		}
		base := b.reserve(n)
		for i := 0; i+1 < n; i++ {
			b.edge(base+i, base+i+1)
		}

		return nil
	}
}

// Cycle builds C_n: edges i→(i+1) mod n.
func Cycle(n int) Constructor {
	return func(b *buffer) error {
		if n < minCycleNodes {
			return fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
		}
		base := b.reserve(n)
		for i := 0; i < n; i++ {
			b.edge(base+i, base+(i+1)%n)
		}

		return nil
	}
}

// Star builds a center (the first node) with n-1 leaves.
func Star(n int) Constructor {
	return func(b *buffer) error {
		if n < minStarNodes {
			return fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
		}
		base := b.reserve(n)
		for i := 1; i < n; i++ {
			b.edge(base, base+i)
		}

		return nil
	}
}

// Complete builds K_n with one edge i→j per pair i < j.
func Complete(n int) Constructor {
	return func(b *buffer) error {
		if n < minCompleteNodes {
			return fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
		}
		base := b.reserve(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				b.edge(base+i, base+j)
			}
		}

		return nil
	}
}

// Grid builds a rows×cols lattice in row-major order; each cell links to its
// right neighbor, then to the cell below.
func Grid(rows, cols int) Constructor {
	return func(b *buffer) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("Grid: rows=%d, cols=%d (each must be ≥ %d): %w",
				rows, cols, minGridDim, ErrTooFewVertices)
		}
		base := b.reserve(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := base + r*cols + c
				if c+1 < cols {
					b.edge(u, u+1)
				}
				if r+1 < rows {
					b.edge(u, u+cols)
				}
			}
		}

		return nil
	}
}
