package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// ExampleParse builds a small board from text and queries it.
func ExampleParse() {
	g, err := gridgraph.Parse([]string{
		"..#",
		"3..",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	c := gridgraph.Coord{Row: 1, Col: 0}
	fmt.Println(g.Rows(), g.Cols(), g.Weight(c), g.IsBlocked(gridgraph.Coord{Row: 0, Col: 2}))
	fmt.Println(g.Neighbors(c))
	// Output:
	// 2 3 3 true
	// [(0,0) (1,1) (2,0) (1,-1)]
}

// ExampleGrid_Breach reports how many walls separate two cells.
func ExampleGrid_Breach() {
	g, _ := gridgraph.Parse([]string{
		"...",
		"###",
		"...",
	})
	_, walls, _ := g.Breach(gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: 2, Col: 2})
	fmt.Println("walls to open:", walls)
	// Output: walls to open: 1
}
