package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// BenchmarkDijkstra_RandomWeights runs corner to corner on an N×N board of weights 1..5.
func BenchmarkDijkstra_RandomWeights(b *testing.B) {
	const n = 200
	rng := rand.New(rand.NewSource(42))
	g, _ := gridgraph.NewUniform(n, n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			_ = g.SetWeight(gridgraph.Coord{Row: r, Col: c}, 1+rng.Intn(gridgraph.MaxWeight))
		}
	}
	src, dst := gridgraph.Coord{}, gridgraph.Coord{Row: n - 1, Col: n - 1}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Dijkstra(g, src, dst)
	}
}
