// SPDX-License-Identifier: MIT
// Package: graphdp/builder
//
// api.go: public entry points.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphdp/core"
)

// Constructor appends one topology to the buffer.
type Constructor func(b *buffer) error

// collect resolves the options and runs every constructor in order.
func collect(bopts []BuilderOption, cons []Constructor) (*buffer, error) {
	b := &buffer{cfg: newBuilderConfig(bopts...)}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("builder: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b); err != nil {
			return nil, fmt.Errorf("builder: %w", err)
		}
	}

	return b, nil
}

// BuildGraph assembles an unweighted graph from the constructors; weights
// are generated and discarded.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	b, err := collect(bopts, cons)
	if err != nil {
		return nil, err
	}
	edges := make([]core.Edge, len(b.edges))
	for i, e := range b.edges {
		edges[i] = core.Edge{From: e.From, To: e.To}
	}

	return core.FromEdges(b.n, edges, gopts...)
}

// BuildWeighted assembles a weighted graph from the constructors. A repeated
// (u, v) pair keeps the last generated weight.
func BuildWeighted(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.WeightedGraph, error) {
	b, err := collect(bopts, cons)
	if err != nil {
		return nil, err
	}

	return core.FromWeightedEdges(b.n, b.edges, gopts...)
}
