package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// ExampleBFS searches an open 3×3 board from corner to corner.
// Level order visits cells by non-decreasing step count.
func ExampleBFS() {
	g, _ := gridgraph.NewUniform(3, 3)
	res, err := bfs.BFS(g, gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: 2, Col: 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("trace:", res.Trace)
	fmt.Println("path: ", res.Path)
	// Output:
	// trace: [(0,0) (0,1) (1,0) (0,2) (1,1) (2,0) (1,2) (2,1) (2,2)]
	// path:  [(0,0) (0,1) (0,2) (1,2) (2,2)]
}

// ExampleBFS_noPath shows that an unreachable target is a normal result.
func ExampleBFS_noPath() {
	g, _ := gridgraph.Parse([]string{
		"...",
		"###",
		"...",
	})
	res, _ := bfs.BFS(g, gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: 2, Col: 2})
	fmt.Println("found:", res.Found(), "visited:", len(res.Trace))
	// Output: found: false visited: 3
}
