package dijkstra_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphdp/builder"
	"github.com/katalvlaran/graphdp/core"
	"github.com/katalvlaran/graphdp/dijkstra"
)

// scenario is one entry of testdata/weighted.yaml.
type scenario struct {
	Name  string    `yaml:"name"`
	Nodes int       `yaml:"nodes"`
	Edges [][]int64 `yaml:"edges"`
	Start int       `yaml:"start"`
	Dist  []int64   `yaml:"dist"`
}

func (s scenario) graph(t *testing.T) *core.WeightedGraph {
	t.Helper()
	edges := make([]core.WeightedEdge, len(s.Edges))
	for i, e := range s.Edges {
		edges[i] = core.WeightedEdge{From: int(e[0]), To: int(e[1]), Weight: e[2]}
	}
	g, err := core.FromWeightedEdges(s.Nodes, edges)
	require.NoError(t, err, s.Name)

	return g
}

// want maps the fixture's -1 to Infinity.
func (s scenario) want() []int64 {
	out := make([]int64, len(s.Dist))
	for i, d := range s.Dist {
		if d < 0 {
			d = dijkstra.Infinity
		}
		out[i] = d
	}

	return out
}

func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	raw, err := os.ReadFile("testdata/weighted.yaml")
	require.NoError(t, err)
	var out []scenario
	require.NoError(t, yaml.Unmarshal(raw, &out))
	require.NotEmpty(t, out)

	return out
}

// grid builds an undirected side×side lattice with seeded weights in [1, 9].
func grid(tb testing.TB, side int) *core.WeightedGraph {
	tb.Helper()
	g, err := builder.BuildWeighted(
		[]core.GraphOption{core.WithUndirected()},
		[]builder.BuilderOption{builder.WithSeed(int64(side)), builder.WithWeightFn(builder.UniformWeightFn(1, 9))},
		builder.Grid(side, side),
	)
	require.NoError(tb, err)

	return g
}
