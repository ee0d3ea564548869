package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and validation.
var (
	// ErrNilGraph indicates a nil *Graph or *WeightedGraph was supplied.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrSizeMismatch indicates len(Adjacency) differs from NumNodes.
	ErrSizeMismatch = errors.New("core: adjacency length does not match node count")

	// ErrOutOfBounds indicates a node id outside [0, NumNodes).
	ErrOutOfBounds = errors.New("core: node id out of bounds")

	// ErrNegativeNodeCount indicates a constructor was asked for a negative size.
	ErrNegativeNodeCount = errors.New("core: node count must be non-negative")
)

// Graph is a directed, unweighted adjacency-list graph over nodes 0..NumNodes-1.
//
// Adjacency[u] lists the targets of u in insertion order. A nil entry is an
// empty list. The fields are exported so that callers which already hold a
// parsed adjacency structure can wrap it without copying.
type Graph struct {
	// NumNodes is the declared number of nodes.
	NumNodes int

	// Adjacency holds one neighbor list per node.
	Adjacency [][]int

	undirected bool // AddEdge mirrors (u,v) as (v,u)
}

// WeightedGraph is a directed adjacency-map graph over nodes 0..NumNodes-1.
//
// Adjacency[u][v] is the weight of the edge u→v. Weights are expected to be
// non-negative; this is documented, not enforced (see dijkstra).
type WeightedGraph struct {
	// NumNodes is the declared number of nodes.
	NumNodes int

	// Adjacency holds one target→weight map per node.
	Adjacency []map[int]int64

	undirected bool
}

// GraphOption configures a graph at construction time.
type GraphOption func(*graphConfig)

type graphConfig struct {
	undirected bool
}

// WithUndirected makes AddEdge insert both (u,v) and (v,u), producing the
// encoding that the undirected analyses (cycle test, tree test, components) expect.
func WithUndirected() GraphOption {
	return func(c *graphConfig) { c.undirected = true }
}

func applyOptions(opts []GraphOption) graphConfig {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// NewGraph returns a graph with n nodes and no edges.
// A negative n is clamped to zero.
func NewGraph(n int, opts ...GraphOption) *Graph {
	if n < 0 {
		n = 0
	}
	cfg := applyOptions(opts)
	adj := make([][]int, n)
	for i := range adj {
		adj[i] = []int{}
	}

	return &Graph{NumNodes: n, Adjacency: adj, undirected: cfg.undirected}
}

// NewWeightedGraph returns a weighted graph with n nodes and no edges.
// A negative n is clamped to zero.
func NewWeightedGraph(n int, opts ...GraphOption) *WeightedGraph {
	if n < 0 {
		n = 0
	}
	cfg := applyOptions(opts)
	adj := make([]map[int]int64, n)
	for i := range adj {
		adj[i] = make(map[int]int64)
	}

	return &WeightedGraph{NumNodes: n, Adjacency: adj, undirected: cfg.undirected}
}

// Edge is an unweighted (From, To) pair used by FromEdges.
type Edge struct {
	From, To int
}

// WeightedEdge is a (From, To, Weight) triple used by FromWeightedEdges.
type WeightedEdge struct {
	From, To int
	Weight   int64
}

// FromEdges builds a Graph with n nodes from an edge list, preserving edge
// order in each adjacency list. It fails on the first out-of-range endpoint.
func FromEdges(n int, edges []Edge, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeNodeCount, n)
	}
	g := NewGraph(n, opts...)
	for i, e := range edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("core: edge #%d: %w", i, err)
		}
	}

	return g, nil
}

// FromWeightedEdges builds a WeightedGraph with n nodes from weighted triples.
// A repeated (From, To) pair keeps the last weight.
func FromWeightedEdges(n int, edges []WeightedEdge, opts ...GraphOption) (*WeightedGraph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeNodeCount, n)
	}
	g := NewWeightedGraph(n, opts...)
	for i, e := range edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("core: edge #%d: %w", i, err)
		}
	}

	return g, nil
}
