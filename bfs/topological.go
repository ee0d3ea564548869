package bfs

import "github.com/katalvlaran/graphdp/core"

// TopologicalSort orders the nodes of a directed graph with Kahn's algorithm:
//  1. count indegrees;
//  2. seed a FIFO queue with every indegree-0 node, ascending;
//  3. repeatedly dequeue u, append it, decrement the indegree of each target
//     of u (once per adjacency entry) and enqueue targets that reach zero.
//
// If fewer than NumNodes nodes were emitted the graph has a cycle and the
// result is an empty, non-nil slice. The only errors are validation errors.
func TopologicalSort(g *core.Graph) ([]int, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	n := g.NumNodes
	in, err := core.Indegrees(g)
	if err != nil {
		return nil, err
	}

	queue := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if in[v] == 0 {
			queue = append(queue, v)
		}
	}

	order := make([]int, 0, n)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)
		for _, v := range g.Adjacency[u] {
			in[v]--
			if in[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	if len(order) != n {
		return []int{}, nil
	}

	return order, nil
}
