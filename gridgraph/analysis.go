package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/graphdp/bfs"
	"github.com/katalvlaran/graphdp/dfs"
	"github.com/katalvlaran/graphdp/dijkstra"
	"github.com/katalvlaran/graphdp/dp"
)

// Islands returns the connected groups of land cells, ordered by their
// first cell in row-major order, each in DFS discovery order.
func (gg *GridGraph) Islands() ([][]dp.Coord, error) {
	groups, err := dfs.Components(gg.LandGraph())
	if err != nil {
		return nil, err
	}

	islands := make([][]dp.Coord, 0, len(groups))
	for _, group := range groups {
		if !gg.IsLand(gg.Coord(group[0])) {
			continue
		}
		cells := make([]dp.Coord, len(group))
		for i, idx := range group {
			cells[i] = gg.Coord(idx)
		}
		islands = append(islands, cells)
	}

	return islands, nil
}

// HopDistances returns, per cell, the number of land steps from src
// (bfs.Unreachable when no land route exists, which includes every water
// cell). A water src returns ErrWaterCell.
func (gg *GridGraph) HopDistances(src dp.Coord) ([][]int, error) {
	if err := gg.check(src); err != nil {
		return nil, err
	}
	if !gg.IsLand(src) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrWaterCell, src.Row, src.Col)
	}
	dist, err := bfs.Distances(gg.LandGraph(), gg.Index(src))
	if err != nil {
		return nil, err
	}

	out := make([][]int, gg.Rows)
	for r := range out {
		out[r] = dist[r*gg.Cols : (r+1)*gg.Cols]
	}

	return out, nil
}

// CheapestPath returns the smallest total of cell values along a path from
// src to dst, both ends included, and the cells of one such path. Negative
// cells are rejected with dijkstra.ErrNegativeWeight.
func (gg *GridGraph) CheapestPath(src, dst dp.Coord) (int64, []dp.Coord, error) {
	if err := gg.check(src); err != nil {
		return 0, nil, err
	}
	if err := gg.check(dst); err != nil {
		return 0, nil, err
	}
	if v := gg.Cells[src.Row][src.Col]; v < 0 {
		return 0, nil, fmt.Errorf("%w: source cell holds %d", dijkstra.ErrNegativeWeight, v)
	}

	dist, prev, err := dijkstra.Dijkstra(gg.CostGraph(), gg.Index(src),
		dijkstra.WithReturnPath(), dijkstra.WithNegativeWeightCheck())
	if err != nil {
		return 0, nil, err
	}
	ids, err := dijkstra.PathTo(prev, dist, gg.Index(dst))
	if err != nil {
		return 0, nil, err
	}

	path := make([]dp.Coord, len(ids))
	for i, idx := range ids {
		path[i] = gg.Coord(idx)
	}

	return gg.Cells[src.Row][src.Col] + dist[gg.Index(dst)], path, nil
}
