package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/dfs"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// ExampleDFS shows the search diving right into a dead end before turning down.
func ExampleDFS() {
	g, _ := gridgraph.Parse([]string{
		"...",
		".##",
		"...",
	})
	res, err := dfs.DFS(g, gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: 2, Col: 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("trace:", res.Trace)
	fmt.Println("path: ", res.Path)
	// Output:
	// trace: [(0,0) (0,1) (0,2) (1,0) (2,0) (2,1) (2,2)]
	// path:  [(0,0) (1,0) (2,0) (2,1) (2,2)]
}
