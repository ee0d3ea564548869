package dijkstra

import (
	"errors"
	"math"
)

// Infinity marks a node that was not reached from the start.
const Infinity int64 = math.MaxInt64

// noPredecessor marks the start node and unreached nodes in prev.
const noPredecessor = -1

// Sentinel errors for Dijkstra and PathTo.
var (
	// ErrNegativeWeight indicates a negative edge weight found by the
	// optional pre-scan.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was zero or negative,
	// which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath indicates that the destination has no recorded path.
	ErrNoPath = errors.New("dijkstra: no path to destination")
)

// Options configures the behavior of Dijkstra.
//
// ReturnPath       – if true, the predecessor slice is returned; otherwise prev is nil.
// MaxDistance      – nodes whose distance would exceed this value are left at Infinity.
// InfEdgeThreshold – edges with weight ≥ this threshold are skipped.
// CheckNegative    – scan all weights first and fail with ErrNegativeWeight.
type Options struct {
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64
	CheckNegative    bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns the defaults: no predecessor slice, no distance
// cap, no impassable edges, no negative-weight scan.
func DefaultOptions() Options {
	return Options{
		ReturnPath:       false,
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
		CheckNegative:    false,
	}
}

// WithReturnPath enables the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps exploration at max. It panics with ErrBadMaxDistance
// on a negative value.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance)
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as absent.
// It panics with ErrBadInfThreshold when threshold <= 0.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold)
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithNegativeWeightCheck makes Dijkstra reject graphs holding any negative
// weight before the search starts.
func WithNegativeWeightCheck() Option {
	return func(o *Options) {
		o.CheckNegative = true
	}
}
