package dfs

import "context"

// Option configures optional behavior of Order.
type Option func(*Options)

// Options holds configurable parameters for Order.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is popped from the frontier.
	// Returning an error aborts the traversal with that error.
	OnVisit func(node int) error
}

// DefaultOptions returns Options with no hook.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), OnVisit: nil}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the visit hook.
func WithOnVisit(fn func(node int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// noParent is the parent of a DFS root.
const noParent = -1

// frame is one level of an emulated recursive DFS.
type frame struct {
	node   int // node being expanded
	parent int // node it was discovered from, noParent for roots
	next   int // index of the next neighbor to examine
}
