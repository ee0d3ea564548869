package dfs

import "github.com/katalvlaran/graphdp/core"

// CountComponents returns the number of connected components of the
// undirected graph g: one per DFS launched from the next unvisited node.
func CountComponents(g *core.Graph) (int, error) {
	if err := g.Validate(); err != nil {
		return 0, err
	}
	w := newWalker(g)
	count := 0
	for v := 0; v < g.NumNodes; v++ {
		if !w.visited[v] {
			w.walk(v, false)
			count++
		}
	}

	return count, nil
}

// Components returns the node sets of the connected components of g.
// Groups are ordered by their smallest node; inside a group nodes appear in
// DFS discovery order.
func Components(g *core.Graph) ([][]int, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	w := newWalker(g)
	var groups [][]int
	var current []int
	w.onDiscover = func(node int) { current = append(current, node) }

	for v := 0; v < g.NumNodes; v++ {
		if w.visited[v] {
			continue
		}
		current = nil
		w.walk(v, false)
		groups = append(groups, current)
	}
	if groups == nil {
		groups = [][]int{}
	}

	return groups, nil
}
