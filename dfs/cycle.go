package dfs

import "github.com/katalvlaran/graphdp/core"

// HasCycle reports whether the undirected graph g contains a cycle.
//
// Every component is searched with a parent-tracking DFS; the first visited
// neighbor that is not the immediate parent ends the search with true.
// Every adjacency entry of a node that points at its parent is skipped, but
// a parallel edge u=v is still found when u resumes its scan and meets the
// already visited v a second time. A self-loop is reported as a cycle.
func HasCycle(g *core.Graph) (bool, error) {
	if err := g.Validate(); err != nil {
		return false, err
	}
	w := newWalker(g)
	for v := 0; v < g.NumNodes; v++ {
		if !w.visited[v] && w.walk(v, true) {
			return true, nil
		}
	}

	return false, nil
}
