package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphdp/core"
)

func mustGraph(t *testing.T, n int, edges []core.Edge, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.FromEdges(n, edges, opts...)
	require.NoError(t, err)

	return g
}

// TestMaxDegree covers the -1 sentinel and ordinary answers.
func TestMaxDegree(t *testing.T) {
	assert.Equal(t, -1, core.MaxDegree(nil))
	assert.Equal(t, -1, core.MaxDegree(core.NewGraph(0)))
	assert.Equal(t, -1, core.MaxDegree(&core.Graph{NumNodes: 3, Adjacency: [][]int{{}}}))

	assert.Equal(t, 0, core.MaxDegree(core.NewGraph(1)))
	assert.Equal(t, 0, core.MaxDegree(core.NewGraph(3)))

	g := mustGraph(t, 5, []core.Edge{{0, 1}, {0, 2}, {0, 3}, {4, 0}})
	assert.Equal(t, 3, core.MaxDegree(g))
}

// TestIndegrees checks counting, self-loops and the tolerant size policy.
func TestIndegrees(t *testing.T) {
	g := mustGraph(t, 4, []core.Edge{{0, 1}, {0, 2}, {1, 2}, {1, 3}, {2, 3}})
	in, err := core.Indegrees(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 2}, in)

	loop := mustGraph(t, 3, []core.Edge{{0, 1}, {1, 1}})
	in, err = core.Indegrees(loop)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 0}, in)

	in, err = core.Indegrees(nil)
	assert.NoError(t, err)
	assert.Empty(t, in)

	in, err = core.Indegrees(&core.Graph{NumNodes: 2, Adjacency: [][]int{{1}}})
	assert.NoError(t, err, "size mismatch is tolerated")
	assert.Empty(t, in)

	_, err = core.Indegrees(&core.Graph{NumNodes: 1, Adjacency: [][]int{{4}}})
	assert.ErrorIs(t, err, core.ErrOutOfBounds, "bad targets are never a sentinel")
}

// TestDegreeSums verifies the handshake identities over an undirected encoding.
func TestDegreeSums(t *testing.T) {
	undirected := []core.Edge{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}}
	g := mustGraph(t, 4, undirected, core.WithUndirected())

	in, err := core.Indegrees(g)
	require.NoError(t, err)
	out, err := core.OutDegrees(g)
	require.NoError(t, err)

	sum := func(xs []int) int {
		s := 0
		for _, x := range xs {
			s += x
		}
		return s
	}
	assert.Equal(t, g.EdgeCount(), sum(in))
	assert.Equal(t, 2*len(undirected), sum(out))
}

// TestIsSink covers sinks, sources, isolated nodes and bad ids.
func TestIsSink(t *testing.T) {
	g := mustGraph(t, 3, []core.Edge{{0, 1}, {1, 2}})
	ok, err := core.IsSink(g, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = core.IsSink(g, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	iso := mustGraph(t, 3, []core.Edge{{0, 2}})
	ok, err = core.IsSink(iso, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = core.IsSink(g, 3)
	assert.ErrorIs(t, err, core.ErrOutOfBounds)

	_, err = core.IsSink(&core.Graph{NumNodes: 2}, 0)
	assert.ErrorIs(t, err, core.ErrSizeMismatch)
}
