package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphdp/core"
)

// TestNewGraph_Empty verifies constructor shape and clamping of negative sizes.
func TestNewGraph_Empty(t *testing.T) {
	g := core.NewGraph(3)
	assert.Equal(t, 3, g.NumNodes)
	assert.Len(t, g.Adjacency, 3)
	assert.Zero(t, g.EdgeCount())
	assert.NoError(t, g.Validate())

	neg := core.NewGraph(-2)
	assert.Equal(t, 0, neg.NumNodes)
	assert.NoError(t, neg.Validate())
}

// TestAddEdge_DirectedAndUndirected checks insertion order and mirroring.
func TestAddEdge_DirectedAndUndirected(t *testing.T) {
	g := core.NewGraph(3)
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2)) // parallel edge kept
	assert.Equal(t, []int{2, 1, 2}, g.Adjacency[0])
	assert.Equal(t, 3, g.EdgeCount())

	u := core.NewGraph(3, core.WithUndirected())
	require.NoError(t, u.AddEdge(0, 1))
	require.NoError(t, u.AddEdge(2, 2))
	assert.Equal(t, []int{1}, u.Adjacency[0])
	assert.Equal(t, []int{0}, u.Adjacency[1])
	assert.Equal(t, []int{2}, u.Adjacency[2], "self-loop stored once")
}

// TestAddEdge_OutOfBounds rejects endpoints outside [0,n).
func TestAddEdge_OutOfBounds(t *testing.T) {
	g := core.NewGraph(2)
	assert.ErrorIs(t, g.AddEdge(0, 2), core.ErrOutOfBounds)
	assert.ErrorIs(t, g.AddEdge(-1, 0), core.ErrOutOfBounds)
	assert.Zero(t, g.EdgeCount(), "failed insert must not mutate")

	var nilG *core.Graph
	assert.ErrorIs(t, nilG.AddEdge(0, 0), core.ErrNilGraph)
}

// TestValidate covers every failure mode of the unweighted validator.
func TestValidate(t *testing.T) {
	var nilG *core.Graph
	assert.ErrorIs(t, nilG.Validate(), core.ErrNilGraph)

	short := &core.Graph{NumNodes: 3, Adjacency: [][]int{{1}, {}}}
	assert.ErrorIs(t, short.Validate(), core.ErrSizeMismatch)

	bad := &core.Graph{NumNodes: 2, Adjacency: [][]int{{1}, {2}}}
	err := bad.Validate()
	assert.ErrorIs(t, err, core.ErrOutOfBounds)
	assert.Contains(t, err.Error(), "1→2")

	nilList := &core.Graph{NumNodes: 2, Adjacency: [][]int{nil, {0}}}
	assert.NoError(t, nilList.Validate(), "nil neighbor list is an empty list")
}

// TestFromEdges builds graphs from edge lists and reports the failing edge.
func TestFromEdges(t *testing.T) {
	g, err := core.FromEdges(4, []core.Edge{{0, 1}, {0, 2}, {2, 3}})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {}, {3}, {}}, g.Adjacency)

	_, err = core.FromEdges(2, []core.Edge{{0, 1}, {1, 5}})
	assert.ErrorIs(t, err, core.ErrOutOfBounds)
	assert.Contains(t, err.Error(), "edge #1")

	_, err = core.FromEdges(-1, nil)
	assert.ErrorIs(t, err, core.ErrNegativeNodeCount)
}

// TestWeightedGraph covers construction, overwrite semantics and validation.
func TestWeightedGraph(t *testing.T) {
	g, err := core.FromWeightedEdges(3, []core.WeightedEdge{{0, 1, 4}, {0, 1, 7}, {1, 2, 1}})
	require.NoError(t, err)
	assert.Equal(t, int64(7), g.Adjacency[0][1], "last weight wins")
	assert.Equal(t, 2, g.EdgeCount())
	assert.NoError(t, g.Validate())

	u, err := core.FromWeightedEdges(2, []core.WeightedEdge{{0, 1, 3}}, core.WithUndirected())
	require.NoError(t, err)
	assert.Equal(t, int64(3), u.Adjacency[1][0])

	bad := &core.WeightedGraph{NumNodes: 1, Adjacency: []map[int]int64{{3: 1}}}
	assert.ErrorIs(t, bad.Validate(), core.ErrOutOfBounds)

	mismatch := &core.WeightedGraph{NumNodes: 2, Adjacency: []map[int]int64{{}}}
	assert.ErrorIs(t, mismatch.Validate(), core.ErrSizeMismatch)

	assert.ErrorIs(t, g.AddEdge(0, 3, 1), core.ErrOutOfBounds)
}

// TestClone ensures clones are independent of the source.
func TestClone(t *testing.T) {
	g, err := core.FromEdges(3, []core.Edge{{0, 1}, {1, 2}})
	require.NoError(t, err)
	c := g.Clone()
	require.NoError(t, c.AddEdge(2, 0))
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 3, c.EdgeCount())

	w, err := core.FromWeightedEdges(2, []core.WeightedEdge{{0, 1, 5}})
	require.NoError(t, err)
	wc := w.Clone()
	wc.Adjacency[0][1] = 9
	assert.Equal(t, int64(5), w.Adjacency[0][1])

	var nilG *core.Graph
	assert.Nil(t, nilG.Clone())
}

// TestNeighbors returns the shared list and rejects bad ids.
func TestNeighbors(t *testing.T) {
	g, err := core.FromEdges(2, []core.Edge{{0, 1}})
	require.NoError(t, err)
	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, nbrs)

	_, err = g.Neighbors(2)
	assert.ErrorIs(t, err, core.ErrOutOfBounds)
}
