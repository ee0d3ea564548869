// SPDX-License-Identifier: MIT
// Package: graphdp/builder
//
// doc.go: package overview.

// Package builder generates deterministic graph fixtures over integer node
// ids for tests, examples and benchmarks.
//
// A Constructor appends a topology to an edge buffer. Constructors compose
// as a disjoint union: each one numbers its nodes after those added by the
// constructors before it. BuildGraph and BuildWeighted then hand the buffer
// to core.FromEdges / core.FromWeightedEdges with the given core options,
// so core.WithUndirected mirrors every emitted edge.
//
// Topologies (each edge is emitted once, lower id first where it matters):
//
//   - Path(n):             i→i+1
//   - Cycle(n):            i→(i+1) mod n
//   - Star(n):             0→i for i ≥ 1
//   - Complete(n):         i→j for all i < j (acyclic when directed)
//   - Grid(rows, cols):    right and down neighbors, node r*cols+c
//   - RandomSparse(n, p):  i→j for i < j with probability p (acyclic when directed)
//   - RandomDigraph(n, p): i→j for i ≠ j with probability p
//
// Weights come from the configured WeightFn and are drawn for every edge in
// emission order, so a fixed seed yields the same graph for both builders.
//
// Errors:
//
//   - ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource
//   - ErrConstructFailed for a nil constructor
//   - core errors from graph assembly
package builder
