// Package bfs provides breadth-first algorithms over a core.Graph:
// unweighted shortest-hop distances, a full BFS tree with path recovery,
// and Kahn's topological sort.
//
// BFS explores nodes in increasing hop count from a start node using a FIFO
// frontier. Each node is enqueued at most once (first discovery wins), which
// is what makes the recorded depth the shortest hop count.
//
// Sentinels vs. errors:
//
//   - An unreachable node has distance Unreachable (-1). This is a normal
//     outcome, not an error.
//   - TopologicalSort answers an empty, non-nil slice when the graph has a
//     cycle.
//   - Invalid graphs (core.ErrSizeMismatch, core.ErrOutOfBounds) and an
//     out-of-range start node are errors.
//
// Complexity:
//
//	Distances, BFS, TopologicalSort   Time O(V + E), Memory O(V)
package bfs
