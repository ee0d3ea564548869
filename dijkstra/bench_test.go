package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/graphdp/dijkstra"
)

// BenchmarkDijkstra_Grid measures a full search on a 100×100 lattice.
func BenchmarkDijkstra_Grid(b *testing.B) {
	g := grid(b, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := dijkstra.Dijkstra(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}
