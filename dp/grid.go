package dp

import "fmt"

// gridShape returns the dimensions of a rectangular grid. A grid with no
// rows or an empty first row has shape 0×0 unless a later row is non-empty.
func gridShape[T Number](grid [][]T) (rows, cols int, err error) {
	if len(grid) == 0 {
		return 0, 0, nil
	}
	cols = len(grid[0])
	for i, row := range grid {
		if len(row) != cols {
			return 0, 0, fmt.Errorf("%w: row %d has %d cells, row 0 has %d", ErrRaggedGrid, i, len(row), cols)
		}
	}
	if cols == 0 {
		return 0, 0, nil
	}

	return len(grid), cols, nil
}

// MinPathSum returns the smallest sum along a top-left to bottom-right path
// that only moves down or right.
//
// The grid is overwritten with the prefix costs:
//
//	grid[i][j] += min(grid[i-1][j], grid[i][j-1])
//
// with the first row and column accumulated first, so a second call on the
// same grid returns the already accumulated corner. Use MinPathSumCopy or
// MinPath to keep the input.
//
// An empty grid yields 0; rows of unequal length return ErrRaggedGrid
// without touching the grid.
func MinPathSum[T Number](grid [][]T) (T, error) {
	rows, cols, err := gridShape(grid)
	if err != nil || rows == 0 {
		return 0, err
	}

	for j := 1; j < cols; j++ {
		grid[0][j] += grid[0][j-1]
	}
	for i := 1; i < rows; i++ {
		grid[i][0] += grid[i-1][0]
	}
	for i := 1; i < rows; i++ {
		for j := 1; j < cols; j++ {
			grid[i][j] += min(grid[i-1][j], grid[i][j-1])
		}
	}

	return grid[rows-1][cols-1], nil
}

// MinPathSumCopy runs MinPathSum on a copy of grid.
func MinPathSumCopy[T Number](grid [][]T) (T, error) {
	clone := make([][]T, len(grid))
	for i, row := range grid {
		clone[i] = append([]T(nil), row...)
	}

	return MinPathSum(clone)
}

// MinPath returns the minimum path sum together with the cells of one
// optimal path, from (0,0) to the bottom-right corner. The grid is not
// modified. When both predecessors cost the same, the path comes from
// above.
func MinPath[T Number](grid [][]T) (T, []Coord, error) {
	rows, cols, err := gridShape(grid)
	if err != nil {
		return 0, nil, err
	}
	if rows == 0 {
		return 0, []Coord{}, nil
	}

	// 1) Prefix costs in a separate table.
	c := newTable[T](rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := grid[i][j]
			switch {
			case i == 0 && j == 0:
			case i == 0:
				v += c.at(0, j-1)
			case j == 0:
				v += c.at(i-1, 0)
			default:
				v += min(c.at(i-1, j), c.at(i, j-1))
			}
			c.set(i, j, v)
		}
	}

	// 2) Backtrack from the corner.
	w := newWitness[Coord](rows + cols - 1)
	i, j := rows-1, cols-1
	w.add(Coord{Row: i, Col: j})
	for i > 0 || j > 0 {
		switch {
		case i == 0:
			j--
		case j == 0:
			i--
		case c.at(i-1, j) <= c.at(i, j-1):
			i--
		default:
			j--
		}
		w.add(Coord{Row: i, Col: j})
	}

	return c.at(rows-1, cols-1), w.build(), nil
}
