// Package dfs implements depth-first traversal and the undirected analyses
// built on it: cycle detection, the tree test and connected components.
//
// No function here recurses. Order uses a plain LIFO frontier; the analyses
// use explicit frames (node, parent, next-neighbor cursor) that replay the
// neighbor scan of a recursive parent-tracking DFS step for step, so stack
// depth never grows with the input.
//
// What:
//
//   - Order(g, start, opts...): nodes in the order they are popped from a LIFO
//     frontier seeded with start. A node is marked when pushed and its
//     neighbors are pushed in adjacency order, so the next node visited is the
//     last-pushed neighbor. The result is reproducible but is not the order a
//     recursive DFS would produce.
//   - HasCycle(g): parent-tracking DFS over every component; a visited
//     neighbor that is not the immediate parent is a cycle. Self-loops and
//     parallel edges therefore count as cycles.
//   - IsTree(g): no cycle reachable from node 0, every node reached, and
//     NumNodes == edges+1 with edges = sum(degrees)/2.
//   - CountComponents(g), Components(g): one DFS launch per component.
//
// The undirected analyses expect both (u,v) and (v,u) to be present
// (see core.WithUndirected). They do not check that.
//
// Complexity:
//
//	all functions: Time O(V + E), Memory O(V)
//
// Errors:
//
//   - core.ErrNilGraph, core.ErrSizeMismatch, core.ErrOutOfBounds from validation
//   - core.ErrOutOfBounds for a bad start node in Order
//   - any error returned by an OnVisit hook
package dfs
