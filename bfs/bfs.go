package bfs

import (
	"fmt"

	"github.com/katalvlaran/graphdp/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []int
	res   *Result
}

// BFS runs breadth-first search on g from start.
// Returns core validation errors for a malformed graph, core.ErrOutOfBounds
// for a bad start, ErrOptionViolation for bad options, or a hook error.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if err := core.CheckNode(g.NumNodes, start); err != nil {
		return nil, fmt.Errorf("bfs: start node: %w", err)
	}

	n := g.NumNodes
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]int, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = Unreachable
		w.res.Parent[v] = noParent
	}

	w.enqueue(start, 0, noParent)

	return w.res, w.loop()
}

// Distances returns the hop distance from start to every node, with
// Unreachable (-1) for nodes that cannot be reached. dist[start] is 0.
func Distances(g *core.Graph, start int) ([]int, error) {
	res, err := BFS(g, start)
	if err != nil {
		return nil, err
	}

	return res.Depth, nil
}

// enqueue records depth and parent of node and appends it to the frontier.
func (w *walker) enqueue(node, depth, parent int) {
	w.res.Depth[node] = depth
	w.res.Parent[node] = parent
	w.queue = append(w.queue, node)
}

// loop processes the frontier until it is empty, a hook fails, or the
// context is cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		u := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, u)
		if err := w.opts.OnVisit(u, w.res.Depth[u]); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", u, err)
		}

		next := w.res.Depth[u] + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, v := range w.graph.Adjacency[u] {
			// first discovery wins
			if w.res.Depth[v] == Unreachable {
				w.enqueue(v, next, u)
			}
		}
	}

	return nil
}
