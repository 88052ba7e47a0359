package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty, ragged or badly weighted inputs.
func TestNew_Errors(t *testing.T) {
	o := gridgraph.OpenCell(1)
	cases := []struct {
		name  string
		cells [][]gridgraph.Cell
		err   error
	}{
		{"EmptyRows", [][]gridgraph.Cell{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]gridgraph.Cell{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]gridgraph.Cell{{o, o}, {o}}, gridgraph.ErrNonRectangular},
		{"WeightZero", [][]gridgraph.Cell{{gridgraph.OpenCell(0)}}, gridgraph.ErrBadWeight},
		{"WeightSix", [][]gridgraph.Cell{{o, gridgraph.OpenCell(6)}}, gridgraph.ErrBadWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.New(tc.cells)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.cells, err, tc.err)
			}
		})
	}
}

func TestNew_DeepCopy(t *testing.T) {
	cells := [][]gridgraph.Cell{{gridgraph.OpenCell(1), gridgraph.OpenCell(2)}}
	g, err := gridgraph.New(cells)
	require.NoError(t, err)

	cells[0][0] = gridgraph.Wall()
	assert.False(t, g.IsBlocked(gridgraph.Coord{Row: 0, Col: 0}), "grid must not alias input")
}

func TestNewUniform(t *testing.T) {
	g, err := gridgraph.NewUniform(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, 6, g.Size())
	assert.Equal(t, "...\n...", g.String())

	_, err = gridgraph.NewUniform(0, 3)
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}

func TestParse_RoundTrip(t *testing.T) {
	lines := []string{
		".#3",
		"5..",
	}
	g, err := gridgraph.Parse(lines)
	require.NoError(t, err)
	assert.Equal(t, ".#3\n5..", g.String())
	assert.True(t, g.IsBlocked(gridgraph.Coord{Row: 0, Col: 1}))
	assert.Equal(t, 3, g.Weight(gridgraph.Coord{Row: 0, Col: 2}))
	assert.Equal(t, 5, g.Weight(gridgraph.Coord{Row: 1, Col: 0}))
}

func TestParse_Errors(t *testing.T) {
	_, err := gridgraph.Parse([]string{"..x"})
	assert.ErrorIs(t, err, gridgraph.ErrBadCell)

	_, err = gridgraph.Parse([]string{"..6"})
	assert.ErrorIs(t, err, gridgraph.ErrBadCell)

	// The column counts runes, not bytes.
	_, err = gridgraph.Parse([]string{"...", ".é."})
	assert.ErrorIs(t, err, gridgraph.ErrBadCell)
	assert.Contains(t, err.Error(), "at (1,1)")

	_, err = gridgraph.Parse([]string{"...", ".."})
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)

	_, err = gridgraph.Parse(nil)
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}

//----------------------------------------------------------------------------//
// Queries
//----------------------------------------------------------------------------//

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.NewUniform(2, 3)
	require.NoError(t, err)

	valid := []gridgraph.Coord{{0, 0}, {1, 2}, {1, 1}}
	for _, c := range valid {
		if !g.InBounds(c) {
			t.Errorf("InBounds(%v)=false; want true", c)
		}
	}
	invalid := []gridgraph.Coord{{-1, 0}, {0, 3}, {2, 1}, {1, -1}}
	for _, c := range invalid {
		if g.InBounds(c) {
			t.Errorf("InBounds(%v)=true; want false", c)
		}
	}
}

// TestNeighbors_Order pins the up, right, down, left order.
func TestNeighbors_Order(t *testing.T) {
	g, _ := gridgraph.NewUniform(3, 3)
	got := g.Neighbors(gridgraph.Coord{Row: 1, Col: 1})
	want := [4]gridgraph.Coord{{0, 1}, {1, 2}, {2, 1}, {1, 0}}
	assert.Equal(t, want, got)

	// corner neighbors are returned even when out of bounds
	corner := g.Neighbors(gridgraph.Coord{Row: 0, Col: 0})
	assert.False(t, g.InBounds(corner[0]))
	assert.False(t, g.InBounds(corner[3]))
}

func TestIndexCoordinate(t *testing.T) {
	g, _ := gridgraph.NewUniform(3, 4)
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			co := gridgraph.Coord{Row: r, Col: c}
			idx := g.Index(co)
			assert.Equal(t, r*4+c, idx)
			assert.Equal(t, co, g.Coordinate(idx))
		}
	}
}

func TestPassable(t *testing.T) {
	g, _ := gridgraph.Parse([]string{".#"})
	assert.True(t, g.Passable(gridgraph.Coord{Row: 0, Col: 0}))
	assert.False(t, g.Passable(gridgraph.Coord{Row: 0, Col: 1}))
	assert.False(t, g.Passable(gridgraph.Coord{Row: 0, Col: 2}))
}

func TestAt_PanicsOutOfBounds(t *testing.T) {
	g, _ := gridgraph.NewUniform(1, 1)
	assert.Panics(t, func() { g.Weight(gridgraph.Coord{Row: 1, Col: 0}) })
}

func TestCheckEndpoints(t *testing.T) {
	g, _ := gridgraph.NewUniform(2, 2)
	assert.NoError(t, g.CheckEndpoints(gridgraph.Coord{}, gridgraph.Coord{Row: 1, Col: 1}))
	assert.ErrorIs(t, g.CheckEndpoints(gridgraph.Coord{Row: -1}, gridgraph.Coord{}), gridgraph.ErrOutOfBounds)
	assert.ErrorIs(t, g.CheckEndpoints(gridgraph.Coord{}, gridgraph.Coord{Row: 2}), gridgraph.ErrOutOfBounds)
}

func TestManhattanAdjacent(t *testing.T) {
	a, b := gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: 2, Col: 3}
	assert.Equal(t, 5, gridgraph.Manhattan(a, b))
	assert.Equal(t, 5, gridgraph.Manhattan(b, a))
	assert.True(t, gridgraph.Adjacent(a, gridgraph.Coord{Row: 0, Col: 1}))
	assert.False(t, gridgraph.Adjacent(a, gridgraph.Coord{Row: 1, Col: 1}))
	assert.False(t, gridgraph.Adjacent(a, a))
}

//----------------------------------------------------------------------------//
// Edits
//----------------------------------------------------------------------------//

// TestCycle walks one cell through the full edit cycle.
func TestCycle(t *testing.T) {
	g, _ := gridgraph.NewUniform(1, 1)
	c := gridgraph.Coord{}
	for want := 2; want <= gridgraph.MaxWeight; want++ {
		cell, err := g.Cycle(c)
		require.NoError(t, err)
		assert.Equal(t, gridgraph.OpenCell(want), cell)
	}
	cell, _ := g.Cycle(c)
	assert.Equal(t, gridgraph.Blocked, cell.Kind)
	cell, _ = g.Cycle(c)
	assert.Equal(t, gridgraph.OpenCell(1), cell)

	_, err := g.Cycle(gridgraph.Coord{Row: 5})
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}

func TestSetters(t *testing.T) {
	g, _ := gridgraph.NewUniform(2, 2)
	c := gridgraph.Coord{Row: 1, Col: 0}

	require.NoError(t, g.SetWeight(c, 4))
	require.NoError(t, g.SetKind(c, gridgraph.Blocked))
	assert.True(t, g.IsBlocked(c))
	assert.Equal(t, 4, g.Weight(c), "SetKind keeps the weight")

	assert.ErrorIs(t, g.SetWeight(c, 9), gridgraph.ErrBadWeight)
	assert.ErrorIs(t, g.SetWeight(gridgraph.Coord{Row: 3}, 1), gridgraph.ErrOutOfBounds)
	assert.ErrorIs(t, g.SetKind(gridgraph.Coord{Col: -1}, gridgraph.Open), gridgraph.ErrOutOfBounds)

	require.NoError(t, g.SetKind(gridgraph.Coord{Row: 0, Col: 1}, gridgraph.Blocked))
	g.Clear()
	assert.Equal(t, "..\n4.", g.String(), "Clear opens walls and keeps weights")
}

func TestClone_Independent(t *testing.T) {
	g, _ := gridgraph.NewUniform(2, 2)
	snap := g.Clone()
	_ = g.SetKind(gridgraph.Coord{}, gridgraph.Blocked)

	assert.True(t, g.IsBlocked(gridgraph.Coord{}))
	assert.False(t, snap.IsBlocked(gridgraph.Coord{}))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "open", gridgraph.Open.String())
	assert.Equal(t, "blocked", gridgraph.Blocked.String())
	assert.Equal(t, "(2,7)", gridgraph.Coord{Row: 2, Col: 7}.String())
}
