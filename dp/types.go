package dp

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var (
	// ErrNegativeElement indicates a negative value in a subset-sum input.
	ErrNegativeElement = errors.New("dp: subset elements must be non-negative")

	// ErrRaggedGrid indicates that grid rows differ in length.
	ErrRaggedGrid = errors.New("dp: grid rows must have equal length")

	// ErrBadTieBreak indicates an unknown TieBreak value.
	ErrBadTieBreak = errors.New("dp: unknown tie-break rule")
)

// Number is the element constraint of the arithmetic engines.
type Number interface {
	constraints.Integer | constraints.Float
}

// TieBreak selects the backtracking move in an LCS table when the cell
// above and the cell to the left hold the same length.
//
//   - PreferUp: move up (drop a character of the first string).
//   - PreferLeft: move left (drop a character of the second string); this
//     reproduces the witnesses of the classic "up only when strictly larger"
//     backtrack.
type TieBreak int

const (
	// PreferUp resolves ties by moving up. Default.
	PreferUp TieBreak = iota

	// PreferLeft resolves ties by moving left.
	PreferLeft
)

// Options configures the witness-producing sequence engines.
type Options struct {
	TieBreak TieBreak
}

// Option represents a functional option for the sequence engines.
type Option func(*Options)

// DefaultOptions returns Options with TieBreak = PreferUp.
func DefaultOptions() Options {
	return Options{TieBreak: PreferUp}
}

// WithTieBreak sets the LCS backtracking rule. It panics with ErrBadTieBreak
// for values other than PreferUp and PreferLeft.
func WithTieBreak(tb TieBreak) Option {
	if tb != PreferUp && tb != PreferLeft {
		panic(ErrBadTieBreak)
	}
	return func(o *Options) {
		o.TieBreak = tb
	}
}

func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Coord is a (row, column) cell of a grid.
type Coord struct {
	Row, Col int
}
