package bfs_test

import (
	"testing"

	"github.com/katalvlaran/graphdp/bfs"
	"github.com/katalvlaran/graphdp/core"
)

// chain builds a directed path of n nodes with an extra skip edge per node.
func chain(n int) *core.Graph {
	g := core.NewGraph(n)
	for i := 0; i+1 < n; i++ {
		_ = g.AddEdge(i, i+1)
		if i+2 < n {
			_ = g.AddEdge(i, i+2)
		}
	}

	return g
}

// BenchmarkDistances measures BFS distances on a 10k-node chain.
func BenchmarkDistances(b *testing.B) {
	g := chain(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.Distances(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkTopologicalSort measures Kahn's algorithm on the same chain.
func BenchmarkTopologicalSort(b *testing.B) {
	g := chain(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.TopologicalSort(g); err != nil {
			b.Fatal(err)
		}
	}
}
