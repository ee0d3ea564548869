package bfs_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphdp/core"
)

// scenario is one entry of testdata/graphs.yaml.
type scenario struct {
	Name      string  `yaml:"name"`
	Nodes     int     `yaml:"nodes"`
	Edges     [][]int `yaml:"edges"`
	Start     int     `yaml:"start"`
	Distances []int   `yaml:"distances"`
	Acyclic   bool    `yaml:"acyclic"`
}

func (s scenario) graph(t *testing.T) *core.Graph {
	t.Helper()
	edges := make([]core.Edge, len(s.Edges))
	for i, e := range s.Edges {
		edges[i] = core.Edge{From: e[0], To: e[1]}
	}
	g, err := core.FromEdges(s.Nodes, edges)
	require.NoError(t, err, s.Name)

	return g
}

// loadScenarios decodes the shared graph fixtures.
func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	raw, err := os.ReadFile("testdata/graphs.yaml")
	require.NoError(t, err)
	var out []scenario
	require.NoError(t, yaml.Unmarshal(raw, &out))
	require.NotEmpty(t, out)

	return out
}
