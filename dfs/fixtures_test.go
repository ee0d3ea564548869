package dfs_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphdp/builder"
	"github.com/katalvlaran/graphdp/core"
)

// scenario is one entry of testdata/undirected.yaml.
type scenario struct {
	Name       string  `yaml:"name"`
	Nodes      int     `yaml:"nodes"`
	Edges      [][]int `yaml:"edges"`
	Cycle      bool    `yaml:"cycle"`
	Tree       bool    `yaml:"tree"`
	Components [][]int `yaml:"components"`
}

func (s scenario) graph(t *testing.T) *core.Graph {
	t.Helper()
	edges := make([]core.Edge, len(s.Edges))
	for i, e := range s.Edges {
		edges[i] = core.Edge{From: e[0], To: e[1]}
	}
	g, err := core.FromEdges(s.Nodes, edges, core.WithUndirected())
	require.NoError(t, err, s.Name)

	return g
}

func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	raw, err := os.ReadFile("testdata/undirected.yaml")
	require.NoError(t, err)
	var out []scenario
	require.NoError(t, yaml.Unmarshal(raw, &out))
	require.NotEmpty(t, out)

	return out
}

// path builds an undirected path 0-1-...-(n-1).
func path(tb testing.TB, n int) *core.Graph {
	tb.Helper()
	g, err := builder.BuildGraph([]core.GraphOption{core.WithUndirected()}, nil, builder.Path(n))
	require.NoError(tb, err)

	return g
}
