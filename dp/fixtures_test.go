package dp_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphdp/dp"
)

type countCase struct {
	Arr  []int `yaml:"arr"`
	K    int   `yaml:"k"`
	Diff int   `yaml:"diff"`
	Want int   `yaml:"want"`
}

type pairCase struct {
	S1   string `yaml:"s1"`
	S2   string `yaml:"s2"`
	Up   string `yaml:"up"`
	Left string `yaml:"left"`
	Want string `yaml:"want"`
}

type palindromeCase struct {
	S          string `yaml:"s"`
	Up         string `yaml:"up"`
	Left       string `yaml:"left"`
	Insertions int    `yaml:"insertions"`
}

type lisCase struct {
	Arr  []int `yaml:"arr"`
	Want []int `yaml:"want"`
}

type gridCase struct {
	Name string  `yaml:"name"`
	Grid [][]int `yaml:"grid"`
	Sum  int     `yaml:"sum"`
	Path [][]int `yaml:"path"`
}

// coords converts the fixture's [row, col] pairs.
func (g gridCase) coords() []dp.Coord {
	out := make([]dp.Coord, len(g.Path))
	for i, p := range g.Path {
		out[i] = dp.Coord{Row: p[0], Col: p[1]}
	}

	return out
}

// clone returns a deep copy of the fixture grid.
func (g gridCase) clone() [][]int {
	out := make([][]int, len(g.Grid))
	for i, row := range g.Grid {
		out[i] = append([]int(nil), row...)
	}

	return out
}

type warpCase struct {
	Name    string    `yaml:"name"`
	A       []float64 `yaml:"a"`
	B       []float64 `yaml:"b"`
	Window  int       `yaml:"window"`
	Penalty float64   `yaml:"penalty"`
	Dist    float64   `yaml:"dist"`
	Path    [][]int   `yaml:"path"`
}

func (w warpCase) options() []dp.WarpOption {
	return []dp.WarpOption{dp.WithWindow(w.Window), dp.WithSlopePenalty(w.Penalty)}
}

func (w warpCase) coords() []dp.Coord {
	return gridCase{Path: w.Path}.coords()
}

// cases mirrors testdata/cases.yaml.
type cases struct {
	Subsets     []countCase      `yaml:"subsets"`
	Partitions  []countCase      `yaml:"partitions"`
	NonAdjacent []countCase      `yaml:"nonadjacent"`
	LCS         []pairCase       `yaml:"lcs"`
	Palindromes []palindromeCase `yaml:"palindromes"`
	Substrings  []pairCase       `yaml:"substrings"`
	LIS         []lisCase        `yaml:"lis"`
	Grids       []gridCase       `yaml:"grids"`
	Warps       []warpCase       `yaml:"warps"`
}

func loadCases(t *testing.T) cases {
	t.Helper()
	raw, err := os.ReadFile("testdata/cases.yaml")
	require.NoError(t, err)
	var c cases
	require.NoError(t, yaml.Unmarshal(raw, &c))
	require.NotEmpty(t, c.Subsets)
	require.NotEmpty(t, c.Grids)

	return c
}
