package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// TestConnectedComponents_Counts covers typical layouts.
func TestConnectedComponents_Counts(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		want  int
	}{
		{"AllOpen", []string{"...", "..."}, 1},
		{"AllBlocked", []string{"##", "##"}, 0},
		{"SplitByColumn", []string{".#.", ".#.", ".#."}, 2},
		{"Checkerboard", []string{".#.", "#.#", ".#."}, 5},
		{"WeightsDoNotSplit", []string{"1234", "5..."}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := gridgraph.Parse(tc.lines)
			if err != nil {
				t.Fatalf("Parse error: %v", err)
			}
			if got := len(g.ConnectedComponents()); got != tc.want {
				t.Errorf("components = %d; want %d", got, tc.want)
			}
		})
	}
}

// TestConnectedComponents_Membership checks which cells land in which region.
func TestConnectedComponents_Membership(t *testing.T) {
	g, _ := gridgraph.Parse([]string{
		"..#.",
		"###.",
	})
	comps := g.ConnectedComponents()
	if len(comps) != 2 {
		t.Fatalf("components = %d; want 2", len(comps))
	}
	// first component starts at (0,0): {(0,0),(0,1)}
	if len(comps[0]) != 2 || comps[0][0] != 0 || comps[0][1] != 1 {
		t.Errorf("comps[0] = %v; want [0 1]", comps[0])
	}
	// second: {(0,3),(1,3)} → indices 3, 7
	if len(comps[1]) != 2 || comps[1][0] != 3 || comps[1][1] != 7 {
		t.Errorf("comps[1] = %v; want [3 7]", comps[1])
	}

	if got := g.ComponentOf(gridgraph.Coord{Row: 1, Col: 3}); got != 1 {
		t.Errorf("ComponentOf(1,3) = %d; want 1", got)
	}
	if got := g.ComponentOf(gridgraph.Coord{Row: 1, Col: 0}); got != -1 {
		t.Errorf("ComponentOf(wall) = %d; want -1", got)
	}
	if got := g.ComponentOf(gridgraph.Coord{Row: 9, Col: 0}); got != -1 {
		t.Errorf("ComponentOf(out of bounds) = %d; want -1", got)
	}
}
