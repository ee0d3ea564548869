package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Unreachable is the distance reported for nodes not reachable from the start.
const Unreachable = -1

// noParent marks the root and unreached nodes in Result.Parent.
const noParent = -1

// Sentinel errors for BFS execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo when the destination was not reached.
	ErrNoPath = errors.New("bfs: no path to destination")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when BFS runs.
type Option func(*Options)

// Options holds parameters and callbacks for BFS.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a node is dequeued. Returning an error aborts
	// the traversal and the error is propagated.
	OnVisit func(node, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth. 0 means no limit.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with a no-op hook and no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  func(int, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on every visited node.
func WithOnVisit(fn func(node, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits exploration to nodes at most d hops from the start.
//
//	d > 0:  limit to depth d
//	d == 0: no limit
//	d < 0:  ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a BFS traversal.
//
//   - Order:  nodes in visit (dequeue) sequence.
//   - Depth:  Depth[v] is the hop distance from the start, or Unreachable.
//   - Parent: Parent[v] is v's predecessor in the BFS tree, -1 for the start
//     and for unreached nodes.
type Result struct {
	Start  int
	Order  []int
	Depth  []int
	Parent []int
}

// PathTo reconstructs the shortest-hop path from the start node to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Depth) || r.Depth[dest] == Unreachable {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, dest)
	}
	// build reversed path
	path := make([]int, 0, r.Depth[dest]+1)
	for cur := dest; cur != noParent; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
