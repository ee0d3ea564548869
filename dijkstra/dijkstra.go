package dijkstra

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/katalvlaran/graphdp/core"
)

// Dijkstra returns the shortest distance from start to every node of g and,
// with WithReturnPath, the predecessor of each node on one shortest path
// (-1 for start and for unreached nodes).
//
// Steps:
//  1. Apply options and validate g and start.
//  2. Optionally reject negative weights.
//  3. Run the lazy heap loop (see the package doc).
func Dijkstra(g *core.WeightedGraph, start int, opts ...Option) ([]int64, []int, error) {
	// 1) Configuration and validation.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := g.Validate(); err != nil {
		return nil, nil, err
	}
	if err := core.CheckNode(g.NumNodes, start); err != nil {
		return nil, nil, fmt.Errorf("dijkstra: start node: %w", err)
	}

	// 2) Optional O(E) negative-weight pre-scan.
	if cfg.CheckNegative {
		for u, nbrs := range g.Adjacency {
			for v, w := range nbrs {
				if w < 0 {
					return nil, nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, u, v, w)
				}
			}
		}
	}

	// 3) Search.
	r := newRunner(g, cfg)
	r.init(start)
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the state of one search.
type runner struct {
	g       *core.WeightedGraph
	options Options
	dist    []int64
	prev    []int
	settled []bool
	pq      nodePQ
	keys    []int // reusable buffer for the ordered neighbor scan
}

func newRunner(g *core.WeightedGraph, cfg Options) *runner {
	return &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, g.NumNodes),
		prev:    make([]int, g.NumNodes),
		settled: make([]bool, g.NumNodes),
		pq:      make(nodePQ, 0, g.NumNodes),
	}
}

func (r *runner) init(start int) {
	for v := range r.dist {
		r.dist[v] = Infinity
		r.prev[v] = noPredecessor
	}
	r.dist[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: start, dist: 0})
}

// process pops until the heap is empty or the frontier passes MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		if d > r.dist[u] || r.settled[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		r.settled[u] = true
		r.relax(u)
	}
}

// relax scans the outgoing edges of u in ascending target order.
func (r *runner) relax(u int) {
	nbrs := r.g.Adjacency[u]
	r.keys = r.keys[:0]
	for v := range nbrs {
		r.keys = append(r.keys, v)
	}
	sort.Ints(r.keys)

	du := r.dist[u]
	for _, v := range r.keys {
		w := nbrs[v]
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		// du+w must stay representable
		if w > 0 && du > Infinity-w {
			continue
		}
		cand := du + w
		if cand > r.options.MaxDistance || cand >= r.dist[v] {
			continue
		}
		r.dist[v] = cand
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: cand})
	}
}

// nodeItem is one (possibly stale) heap entry.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap on (dist, id).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
