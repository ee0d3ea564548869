package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/graphdp/core"
	"github.com/katalvlaran/graphdp/dp"
)

// New builds a GridGraph from a non-empty rectangular grid. The cells are
// deep-copied. An unknown Connectivity falls back to Conn4.
func New(cells [][]int64, opts ...Option) (*GridGraph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])
	copied := make([][]int64, rows)
	for r, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
		copied[r] = append([]int64(nil), row...)
	}

	gg := &GridGraph{Rows: rows, Cols: cols, Cells: copied, opts: o}
	switch o.Conn {
	case Conn8:
		gg.offsets = offsets8
	case ConnDownRight:
		gg.offsets = offsetsDownRight
	default:
		gg.offsets = offsets4
	}

	return gg, nil
}

// InBounds reports whether c lies inside the grid.
func (gg *GridGraph) InBounds(c dp.Coord) bool {
	return c.Row >= 0 && c.Row < gg.Rows && c.Col >= 0 && c.Col < gg.Cols
}

// Index maps c to its row-major node id.
func (gg *GridGraph) Index(c dp.Coord) int { return c.Row*gg.Cols + c.Col }

// Coord maps a node id back to its cell.
func (gg *GridGraph) Coord(idx int) dp.Coord {
	return dp.Coord{Row: idx / gg.Cols, Col: idx % gg.Cols}
}

// IsLand reports whether the value at c reaches LandThreshold.
func (gg *GridGraph) IsLand(c dp.Coord) bool {
	return gg.Cells[c.Row][c.Col] >= gg.opts.LandThreshold
}

func (gg *GridGraph) check(c dp.Coord) error {
	if !gg.InBounds(c) {
		return fmt.Errorf("%w: (%d,%d) in %d×%d", ErrCellOutOfRange, c.Row, c.Col, gg.Rows, gg.Cols)
	}

	return nil
}

// LandGraph returns the adjacency of land cells. Every link is stored in
// both directions; water cells become isolated nodes. ConnDownRight grids
// use the Conn4 offsets here so the result stays symmetric.
func (gg *GridGraph) LandGraph() *core.Graph {
	offs := gg.offsets
	if gg.opts.Conn == ConnDownRight {
		offs = offsets4
	}

	g := core.NewGraph(gg.Rows * gg.Cols)
	for r := 0; r < gg.Rows; r++ {
		for c := 0; c < gg.Cols; c++ {
			from := dp.Coord{Row: r, Col: c}
			if !gg.IsLand(from) {
				continue
			}
			for _, d := range offs {
				to := dp.Coord{Row: r + d.Row, Col: c + d.Col}
				if gg.InBounds(to) && gg.IsLand(to) {
					_ = g.AddEdge(gg.Index(from), gg.Index(to))
				}
			}
		}
	}

	return g
}

// CostGraph returns a directed weighted graph in which entering a cell
// costs its value.
func (gg *GridGraph) CostGraph() *core.WeightedGraph {
	g := core.NewWeightedGraph(gg.Rows * gg.Cols)
	for r := 0; r < gg.Rows; r++ {
		for c := 0; c < gg.Cols; c++ {
			from := dp.Coord{Row: r, Col: c}
			for _, d := range gg.offsets {
				to := dp.Coord{Row: r + d.Row, Col: c + d.Col}
				if gg.InBounds(to) {
					_ = g.AddEdge(gg.Index(from), gg.Index(to), gg.Cells[to.Row][to.Col])
				}
			}
		}
	}

	return g
}
