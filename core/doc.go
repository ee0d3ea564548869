// Package core defines the adjacency-list graphs every other graphdp package
// consumes, together with their validation rules and the cheap degree-based
// analyses (max degree, indegrees, out-degrees, sink test).
//
// Nodes are the integers 0..NumNodes-1. Two representations are provided:
//
//   - Graph: unweighted; Adjacency[u] is the ordered list of targets of u.
//     The list may contain duplicates (parallel edges) and u itself (self-loop).
//   - WeightedGraph: Adjacency[u] maps a target to a non-negative int64 weight;
//     keys are unique per node.
//
// Both are directed. An undirected graph is encoded by inserting both (u,v)
// and (v,u); WithUndirected makes AddEdge do exactly that.
//
// Validation:
//
//	Validate() fails with
//	  ErrNilGraph      – nil receiver
//	  ErrSizeMismatch  – len(Adjacency) != NumNodes
//	  ErrOutOfBounds   – some neighbor id outside [0, NumNodes)
//
// Every traversal and analysis in bfs, dfs and dijkstra validates first.
// The degree helpers are the deliberate exception: MaxDegree and Indegrees
// tolerate loosely sized input and answer with a sentinel (-1 or an empty
// slice) instead of an error. Out-of-range targets are still reported.
//
// Structures are plain values owned by the caller; nothing here locks.
// Concurrent reads are safe, concurrent AddEdge on the same graph is not.
//
// Complexity:
//
//	Validate, EdgeCount, Indegrees, OutDegrees  O(V + E)
//	MaxDegree                                   O(V)
//	AddEdge, IsSink, Neighbors                  O(1)
package core
