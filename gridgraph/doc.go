// Package gridgraph treats a rectangular grid of int64 cells as a graph so
// the traversal, component and shortest-path engines can run on it.
//
// What:
//
//   - GridGraph wraps a deep copy of the grid; cell (r, c) is node r*Cols+c.
//   - LandGraph links adjacent "land" cells (value ≥ LandThreshold) in both
//     directions; Islands groups them with dfs.Components and HopDistances
//     counts steps with bfs.Distances.
//   - CostGraph adds a directed edge u→v weighted by the value of v for every
//     neighbor offset; CheapestPath runs dijkstra on it and adds the source
//     cell, so with ConnDownRight the result equals dp.MinPath.
//
// Connectivity:
//
//   - Conn4:         N, E, S, W
//   - Conn8:         N, NE, E, SE, S, SW, W, NW
//   - ConnDownRight: S, E (monotone paths); LandGraph uses Conn4 offsets
//
// Complexity:
//
//	New:                    O(R×C)
//	LandGraph, CostGraph:   O(R×C×d), d = number of offsets
//	Islands, HopDistances:  O(R×C×d)
//	CheapestPath:           O(R×C×d log(R×C))
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular from New
//   - ErrCellOutOfRange for coordinates outside the grid
//   - ErrWaterCell for a HopDistances source that is not land
//   - dijkstra.ErrNoPath, dijkstra.ErrNegativeWeight from CheapestPath
package gridgraph
