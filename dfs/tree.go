package dfs

import "github.com/katalvlaran/graphdp/core"

// IsTree reports whether the undirected graph g is a tree. All three
// conditions are required:
//  1. the parent-tracking DFS from node 0 finds no cycle;
//  2. that DFS reaches every node;
//  3. NumNodes == E+1, where E = sum(degrees)/2.
//
// A graph with zero nodes is a tree; it is accepted before validation.
func IsTree(g *core.Graph) (bool, error) {
	if g != nil && g.NumNodes == 0 {
		return true, nil
	}
	if err := g.Validate(); err != nil {
		return false, err
	}

	w := newWalker(g)
	if w.walk(0, true) {
		return false, nil
	}
	for _, seen := range w.visited {
		if !seen {
			return false, nil
		}
	}

	edges := g.EdgeCount() / 2

	return g.NumNodes == edges+1, nil
}
