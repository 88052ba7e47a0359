package dfs_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/dfs"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// BenchmarkDFS_Serpentine drives DFS through a long snake corridor.
func BenchmarkDFS_Serpentine(b *testing.B) {
	const n = 201
	g, _ := gridgraph.NewUniform(n, n)
	// wall every other row, leaving a gap alternately at the right and left end
	for r := 1; r < n; r += 2 {
		gap := n - 1
		if (r/2)%2 == 1 {
			gap = 0
		}
		for c := 0; c < n; c++ {
			if c != gap {
				_ = g.SetKind(gridgraph.Coord{Row: r, Col: c}, gridgraph.Blocked)
			}
		}
	}
	src, dst := gridgraph.Coord{}, gridgraph.Coord{Row: n - 1, Col: n - 1}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, src, dst)
	}
}
