package dp

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptySequence indicates that a time-warp input is empty.
	ErrEmptySequence = errors.New("dp: time-warp sequences must be non-empty")

	// ErrBadWindow indicates a negative warping window.
	ErrBadWindow = errors.New("dp: warping window must be >= 0")

	// ErrBadSlopePenalty indicates a negative or NaN slope penalty.
	ErrBadSlopePenalty = errors.New("dp: slope penalty must be a non-negative number")

	// ErrWindowTooNarrow indicates that the band excludes every alignment
	// of the two sequences.
	ErrWindowTooNarrow = errors.New("dp: warping window too narrow for sequence lengths")
)

// WarpOptions configures TimeWarp and TimeWarpDistance.
//
//   - Window: Sakoe-Chiba band width, cells with |i-j| > Window are skipped.
//     0 means no band.
//   - SlopePenalty: extra cost of a step that advances only one sequence.
type WarpOptions struct {
	Window       int
	SlopePenalty float64
}

// WarpOption represents a functional option for the time-warp engines.
type WarpOption func(*WarpOptions)

// DefaultWarpOptions returns WarpOptions with no band and no penalty.
func DefaultWarpOptions() WarpOptions {
	return WarpOptions{Window: 0, SlopePenalty: 0}
}

// WithWindow restricts alignments to the band |i-j| <= w. It panics with
// ErrBadWindow for w < 0.
func WithWindow(w int) WarpOption {
	if w < 0 {
		panic(ErrBadWindow)
	}
	return func(o *WarpOptions) {
		o.Window = w
	}
}

// WithSlopePenalty charges p for every insertion or deletion step. It panics
// with ErrBadSlopePenalty for negative or NaN p.
func WithSlopePenalty(p float64) WarpOption {
	if p < 0 || math.IsNaN(p) {
		panic(ErrBadSlopePenalty)
	}
	return func(o *WarpOptions) {
		o.SlopePenalty = p
	}
}

// warp holds the validated inputs of one time-warp run.
type warp[T Number] struct {
	a, b    []T
	opts    WarpOptions
	penalty float64
}

func newWarp[T Number](a, b []T, opts []WarpOption) (*warp[T], error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, fmt.Errorf("%w: len(a)=%d, len(b)=%d", ErrEmptySequence, len(a), len(b))
	}
	o := DefaultWarpOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Window > 0 && absInt(len(a)-len(b)) > o.Window {
		return nil, fmt.Errorf("%w: window %d, lengths %d and %d", ErrWindowTooNarrow, o.Window, len(a), len(b))
	}

	return &warp[T]{a: a, b: b, opts: o, penalty: o.SlopePenalty}, nil
}

// outside reports whether cell (i,j) of the 1-based table lies off the band.
func (w *warp[T]) outside(i, j int) bool {
	return w.opts.Window > 0 && absInt(i-j) > w.opts.Window
}

func (w *warp[T]) cost(i, j int) float64 {
	return math.Abs(float64(w.a[i-1]) - float64(w.b[j-1]))
}

// TimeWarpDistance returns the dynamic time warping distance of a and b:
//
//	D[0][0] = 0, D[i][0] = D[0][j] = +Inf
//	D[i][j] = |a[i-1]-b[j-1]| + min(D[i-1][j-1], D[i-1][j]+p, D[i][j-1]+p)
//
// It keeps two rows with the shorter sequence on the columns.
func TimeWarpDistance[T Number](a, b []T, opts ...WarpOption) (float64, error) {
	if len(b) > len(a) {
		a, b = b, a
	}
	w, err := newWarp(a, b, opts)
	if err != nil {
		return 0, err
	}

	n, m := len(a), len(b)
	inf := math.Inf(1)
	r := newRolling[float64](m + 1)
	for j := 1; j <= m; j++ {
		r.prev[j] = inf
	}
	for i := 1; i <= n; i++ {
		r.cur[0] = inf
		for j := 1; j <= m; j++ {
			if w.outside(i, j) {
				r.cur[j] = inf
				continue
			}
			r.cur[j] = w.cost(i, j) + min(r.prev[j-1], r.prev[j]+w.penalty, r.cur[j-1]+w.penalty)
		}
		r.advance()
	}

	return r.prev[m], nil
}

// TimeWarp returns the time warping distance of a and b together with one
// optimal alignment: a monotone list of (index in a, index in b) pairs from
// (0,0) to (len(a)-1, len(b)-1). On ties the backtrack prefers the diagonal,
// then a step back in a alone.
func TimeWarp[T Number](a, b []T, opts ...WarpOption) (float64, []Coord, error) {
	w, err := newWarp(a, b, opts)
	if err != nil {
		return 0, nil, err
	}

	// 1) Fill the full table.
	n, m := len(a), len(b)
	inf := math.Inf(1)
	t := newTable[float64](n+1, m+1)
	for i := 0; i <= n; i++ {
		for j := 0; j <= m; j++ {
			if i > 0 || j > 0 {
				t.set(i, j, inf)
			}
		}
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if w.outside(i, j) {
				continue
			}
			best := min(t.at(i-1, j-1), t.at(i-1, j)+w.penalty, t.at(i, j-1)+w.penalty)
			t.set(i, j, w.cost(i, j)+best)
		}
	}

	// 2) Backtrack from (n, m).
	path := newWitness[Coord](n + m - 1)
	i, j := n, m
	path.add(Coord{Row: i - 1, Col: j - 1})
	for i > 1 || j > 1 {
		switch {
		case i == 1:
			j--
		case j == 1:
			i--
		default:
			diag, up, left := t.at(i-1, j-1), t.at(i-1, j)+w.penalty, t.at(i, j-1)+w.penalty
			switch {
			case diag <= up && diag <= left:
				i--
				j--
			case up <= left:
				i--
			default:
				j--
			}
		}
		path.add(Coord{Row: i - 1, Col: j - 1})
	}

	return t.at(n, m), path.build(), nil
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
