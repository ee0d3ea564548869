package core

// MaxDegree returns the largest adjacency-list length in g.
//
// It returns -1 when g is nil, NumNodes <= 0, or len(Adjacency) != NumNodes.
// -1 is distinct from the valid answer 0 (nodes but no edges). Neighbor ids
// are not inspected: the answer does not depend on them.
func MaxDegree(g *Graph) int {
	if g == nil || g.NumNodes <= 0 || len(g.Adjacency) != g.NumNodes {
		return -1
	}
	maxDeg := 0
	for _, nbrs := range g.Adjacency {
		if len(nbrs) > maxDeg {
			maxDeg = len(nbrs)
		}
	}

	return maxDeg
}

// Indegrees counts, for every node, how many times it appears as a target
// across all adjacency lists. Self-loops and parallel edges each count.
//
// Size problems are tolerated: a nil graph, NumNodes <= 0, or a length
// mismatch yields an empty slice and a nil error. A target outside
// [0, NumNodes) is still an error (ErrOutOfBounds).
func Indegrees(g *Graph) ([]int, error) {
	if g == nil || g.NumNodes <= 0 || len(g.Adjacency) != g.NumNodes {
		return []int{}, nil
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	in := make([]int, g.NumNodes)
	for _, nbrs := range g.Adjacency {
		for _, v := range nbrs {
			in[v]++
		}
	}

	return in, nil
}

// OutDegrees returns len(Adjacency[u]) for every node of a valid graph.
func OutDegrees(g *Graph) ([]int, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	out := make([]int, g.NumNodes)
	for u, nbrs := range g.Adjacency {
		out[u] = len(nbrs)
	}

	return out, nil
}

// IsSink reports whether node has out-degree zero.
// The graph is validated and node must be in range.
func IsSink(g *Graph, node int) (bool, error) {
	if err := g.Validate(); err != nil {
		return false, err
	}
	if err := CheckNode(g.NumNodes, node); err != nil {
		return false, err
	}

	return len(g.Adjacency[node]) == 0, nil
}
