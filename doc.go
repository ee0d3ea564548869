// Package graphdp is a set of in-memory graph algorithms and tabulated
// dynamic-programming engines over dense integer-indexed inputs.
//
// What is graphdp?
//
//	Graphs are adjacency lists over node ids 0..n-1, in an unweighted
//	(core.Graph) and an int64-weighted (core.WeightedGraph) flavor.
//	Every algorithm is a plain function of its inputs: no hidden state,
//	no locks, safe to call from many goroutines on graphs nobody mutates.
//
// Packages:
//
//	core/: Graph and WeightedGraph, edge-list constructors, validation,
//	degree queries and cloning
//	bfs/: breadth-first traversal, hop distances, Kahn topological sort
//	dfs/: depth-first order, cycle test, tree test, connected components
//	dijkstra/: non-negative single-source shortest paths with path recovery
//	dp/: subset counting, LCS/LPS, common substring, LIS, non-adjacent
//	sums, grid paths and dynamic time warping
//	gridgraph/: 2D grids viewed as graphs (islands, hop maps, cheapest paths)
//	builder/: deterministic topology and random graph generators
//
// Quick example:
//
//	0 ── 1
//	│    │
//	3 ── 2
//
//	g, _ := core.FromEdges(4, []core.Edge{{0, 1}, {1, 2}, {2, 3}, {3, 0}}, core.WithUndirected())
//	dist, _ := bfs.Distances(g, 0) // [0 1 2 1]
//	cyclic, _ := dfs.HasCycle(g)   // true
//
// Errors are package-prefixed sentinels wrapped with context; match them
// with errors.Is.
package graphdp
