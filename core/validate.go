package core

import "fmt"

// Validate checks the structural invariants of g:
//  1. g is non-nil (ErrNilGraph);
//  2. len(Adjacency) == NumNodes (ErrSizeMismatch);
//  3. every listed neighbor lies in [0, NumNodes) (ErrOutOfBounds).
//
// Complexity: O(V + E).
func (g *Graph) Validate() error {
	if g == nil {
		return ErrNilGraph
	}
	if len(g.Adjacency) != g.NumNodes {
		return fmt.Errorf("%w: %d lists for %d nodes", ErrSizeMismatch, len(g.Adjacency), g.NumNodes)
	}
	for u, nbrs := range g.Adjacency {
		for _, v := range nbrs {
			if v < 0 || v >= g.NumNodes {
				return fmt.Errorf("%w: edge %d→%d with %d nodes", ErrOutOfBounds, u, v, g.NumNodes)
			}
		}
	}

	return nil
}

// Validate checks the same invariants as (*Graph).Validate for map keys.
// Weights are not inspected.
func (g *WeightedGraph) Validate() error {
	if g == nil {
		return ErrNilGraph
	}
	if len(g.Adjacency) != g.NumNodes {
		return fmt.Errorf("%w: %d maps for %d nodes", ErrSizeMismatch, len(g.Adjacency), g.NumNodes)
	}
	for u, nbrs := range g.Adjacency {
		for v := range nbrs {
			if v < 0 || v >= g.NumNodes {
				return fmt.Errorf("%w: edge %d→%d with %d nodes", ErrOutOfBounds, u, v, g.NumNodes)
			}
		}
	}

	return nil
}
