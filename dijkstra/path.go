package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/graphdp/core"
)

// IsReachable reports whether node v received a finite distance.
func IsReachable(dist []int64, v int) bool {
	return v >= 0 && v < len(dist) && dist[v] != Infinity
}

// PathTo rebuilds the start→dest path from the slices returned by
// Dijkstra with WithReturnPath. It returns core.ErrOutOfBounds for a bad
// dest and ErrNoPath when dest was not reached or prev is missing.
func PathTo(prev []int, dist []int64, dest int) ([]int, error) {
	if err := core.CheckNode(len(dist), dest); err != nil {
		return nil, fmt.Errorf("dijkstra: destination: %w", err)
	}
	if dist[dest] == Infinity || len(prev) != len(dist) {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, dest)
	}

	path := []int{dest}
	for v := prev[dest]; v != noPredecessor; v = prev[v] {
		// a well-formed tree never has more than len(prev) nodes on a path
		if len(path) > len(prev) {
			return nil, fmt.Errorf("%w: predecessor loop at %d", ErrNoPath, v)
		}
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
