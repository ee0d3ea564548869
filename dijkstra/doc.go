// Package dijkstra computes single-source shortest paths on a
// core.WeightedGraph with non-negative int64 weights.
//
// Algorithm (lazy decrease-key):
//
//  1. dist[*] = Infinity, dist[start] = 0, push (start, 0).
//  2. Pop the smallest (node, d). Skip it when d > dist[node] (a stale
//     entry) or when the node is already settled.
//  3. Relax every outgoing edge u→v in ascending v: when dist[u]+w < dist[v],
//     store the candidate, record u as the predecessor of v and push (v, cand).
//
// Equal distances pop in ascending node order, so predecessor trees are
// reproducible.
//
// Infinity (math.MaxInt64) is the exact "unreachable" marker; compare against
// it or use IsReachable. A relaxation whose sum would pass Infinity is
// dropped instead of overflowing.
//
// Negative weights are not validated unless WithNegativeWeightCheck is set;
// results for such graphs carry no guarantee, but the search still stops
// because every node is settled at most once.
//
// Complexity:
//
//	Time:   O((V + E) log V) plus O(deg log deg) per settled node for the ordered scan
//	Memory: O(V + E) for dist, prev and the lazy heap
//
// Errors:
//
//   - core.ErrNilGraph, core.ErrSizeMismatch, core.ErrOutOfBounds on a bad graph
//   - core.ErrOutOfBounds (wrapped) for a bad start node
//   - ErrNegativeWeight when the check is enabled and a weight is < 0
//   - ErrBadMaxDistance, ErrBadInfThreshold (panics from the option constructors)
//   - ErrNoPath from PathTo
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(g, 0, dijkstra.WithReturnPath())
//	if err != nil {
//		return err
//	}
//	path, err := dijkstra.PathTo(prev, dist, 4)
package dijkstra
