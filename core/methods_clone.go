package core

// Clone returns a deep copy of g: neighbor lists are copied so the clone can
// be mutated without affecting the original. A nil receiver yields nil.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	if g == nil {
		return nil
	}
	adj := make([][]int, len(g.Adjacency))
	for u, nbrs := range g.Adjacency {
		adj[u] = append([]int{}, nbrs...)
	}

	return &Graph{NumNodes: g.NumNodes, Adjacency: adj, undirected: g.undirected}
}

// Clone returns a deep copy of g.
func (g *WeightedGraph) Clone() *WeightedGraph {
	if g == nil {
		return nil
	}
	adj := make([]map[int]int64, len(g.Adjacency))
	for u, nbrs := range g.Adjacency {
		cp := make(map[int]int64, len(nbrs))
		for v, w := range nbrs {
			cp[v] = w
		}
		adj[u] = cp
	}

	return &WeightedGraph{NumNodes: g.NumNodes, Adjacency: adj, undirected: g.undirected}
}
