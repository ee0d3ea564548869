package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphdp/core"
)

// Order returns the nodes reachable from start in LIFO-frontier order.
//
// Algorithm:
//  1. push start and mark it;
//  2. pop u, append it to the result, run OnVisit;
//  3. push every unmarked neighbor of u in adjacency order, marking each.
//
// Returns a validation error, core.ErrOutOfBounds for a bad start, the
// hook error or the context error (with the order collected so far).
func Order(g *core.Graph, start int, opts ...Option) ([]int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if err := core.CheckNode(g.NumNodes, start); err != nil {
		return nil, fmt.Errorf("dfs: start node: %w", err)
	}

	visited := make([]bool, g.NumNodes)
	order := make([]int, 0, g.NumNodes)
	stack := []int{start}
	visited[start] = true

	for len(stack) > 0 {
		select {
		case <-o.Ctx.Done():
			return order, o.Ctx.Err()
		default:
		}

		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, u)

		if o.OnVisit != nil {
			if err := o.OnVisit(u); err != nil {
				return order, fmt.Errorf("dfs: OnVisit hook for %d: %w", u, err)
			}
		}

		for _, v := range g.Adjacency[u] {
			if !visited[v] {
				visited[v] = true
				stack = append(stack, v)
			}
		}
	}

	return order, nil
}

// walker drives the frame-based, parent-tracking DFS shared by the analyses.
type walker struct {
	adj        [][]int
	visited    []bool
	stack      []frame
	onDiscover func(node int)
}

func newWalker(g *core.Graph) *walker {
	return &walker{
		adj:     g.Adjacency,
		visited: make([]bool, g.NumNodes),
		stack:   make([]frame, 0, g.NumNodes),
	}
}

// walk explores the component of root. It reports whether a back-edge to a
// visited node other than the current node's parent was seen; when
// stopAtCycle is set it returns on the first such edge, leaving the rest of
// the component unexplored.
func (w *walker) walk(root int, stopAtCycle bool) bool {
	cycle := false
	w.discover(root)
	w.stack = append(w.stack[:0], frame{node: root, parent: noParent})

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		nbrs := w.adj[top.node]
		if top.next == len(nbrs) {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}
		v := nbrs[top.next]
		top.next++

		if !w.visited[v] {
			u := top.node
			w.discover(v)
			w.stack = append(w.stack, frame{node: v, parent: u})
			continue
		}
		if v != top.parent {
			cycle = true
			if stopAtCycle {
				return true
			}
		}
	}

	return cycle
}

func (w *walker) discover(node int) {
	w.visited[node] = true
	if w.onDiscover != nil {
		w.onDiscover(node)
	}
}
