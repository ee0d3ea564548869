package core

import "fmt"

// CheckNode reports ErrOutOfBounds unless 0 <= id < n.
func CheckNode(n, id int) error {
	if id < 0 || id >= n {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfBounds, id, n)
	}

	return nil
}

// AddEdge appends v to the neighbor list of u; for graphs built with
// WithUndirected it also appends u to the list of v (a self-loop is
// appended once).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if g == nil {
		return ErrNilGraph
	}
	if err := CheckNode(g.NumNodes, u); err != nil {
		return err
	}
	if err := CheckNode(g.NumNodes, v); err != nil {
		return err
	}
	g.grow()
	g.Adjacency[u] = append(g.Adjacency[u], v)
	if g.undirected && u != v {
		g.Adjacency[v] = append(g.Adjacency[v], u)
	}

	return nil
}

// grow pads Adjacency up to NumNodes so hand-assembled graphs can be extended.
func (g *Graph) grow() {
	for len(g.Adjacency) < g.NumNodes {
		g.Adjacency = append(g.Adjacency, []int{})
	}
}

// Neighbors returns the adjacency list of u. The slice is shared with the
// graph and must not be modified.
func (g *Graph) Neighbors(u int) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := CheckNode(len(g.Adjacency), u); err != nil {
		return nil, err
	}

	return g.Adjacency[u], nil
}

// EdgeCount returns the number of directed adjacency entries, i.e. the sum of
// all list lengths. For an undirected encoding it is twice the edge count.
func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}
	total := 0
	for _, nbrs := range g.Adjacency {
		total += len(nbrs)
	}

	return total
}

// AddEdge sets the weight of u→v, replacing any previous weight; for graphs
// built with WithUndirected it also sets v→u.
func (g *WeightedGraph) AddEdge(u, v int, w int64) error {
	if g == nil {
		return ErrNilGraph
	}
	if err := CheckNode(g.NumNodes, u); err != nil {
		return err
	}
	if err := CheckNode(g.NumNodes, v); err != nil {
		return err
	}
	for len(g.Adjacency) < g.NumNodes {
		g.Adjacency = append(g.Adjacency, make(map[int]int64))
	}
	if g.Adjacency[u] == nil {
		g.Adjacency[u] = make(map[int]int64)
	}
	g.Adjacency[u][v] = w
	if g.undirected {
		if g.Adjacency[v] == nil {
			g.Adjacency[v] = make(map[int]int64)
		}
		g.Adjacency[v][u] = w
	}

	return nil
}

// EdgeCount returns the number of directed (u,v) entries.
func (g *WeightedGraph) EdgeCount() int {
	if g == nil {
		return 0
	}
	total := 0
	for _, nbrs := range g.Adjacency {
		total += len(nbrs)
	}

	return total
}
