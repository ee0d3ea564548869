package gridgraph

import (
	"errors"

	"github.com/katalvlaran/graphdp/dp"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")

	// ErrCellOutOfRange indicates a coordinate outside the grid.
	ErrCellOutOfRange = errors.New("gridgraph: cell outside the grid")

	// ErrWaterCell indicates a land-only query started on a water cell.
	ErrWaterCell = errors.New("gridgraph: cell is not land")
)

// Connectivity selects which neighbors a cell links to.
type Connectivity int

const (
	// Conn4 links orthogonal neighbors.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals.
	Conn8
	// ConnDownRight links only the cell below and the cell to the right.
	ConnDownRight
)

var (
	offsets4         = []dp.Coord{{Row: -1, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 0, Col: -1}}
	offsets8         = []dp.Coord{{Row: -1, Col: 0}, {Row: -1, Col: 1}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: -1}, {Row: 0, Col: -1}, {Row: -1, Col: -1}}
	offsetsDownRight = []dp.Coord{{Row: 1, Col: 0}, {Row: 0, Col: 1}}
)

// Options configures a GridGraph.
type Options struct {
	// LandThreshold is the smallest value counted as land.
	LandThreshold int64
	// Conn chooses the neighbor offsets.
	Conn Connectivity
}

// Option represents a functional option for New.
type Option func(*Options)

// DefaultOptions returns LandThreshold=1 and Conn4.
func DefaultOptions() Options {
	return Options{LandThreshold: 1, Conn: Conn4}
}

// WithConnectivity sets the neighbor offsets.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}

// WithLandThreshold sets the smallest value counted as land.
func WithLandThreshold(t int64) Option {
	return func(o *Options) {
		o.LandThreshold = t
	}
}

// GridGraph is an immutable view of a grid as a graph.
type GridGraph struct {
	Rows, Cols int
	Cells      [][]int64
	opts       Options
	offsets    []dp.Coord
}
