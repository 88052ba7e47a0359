package gridgraph

import "fmt"

// Weight bounds for Open cells.
const (
	MinWeight = 1
	MaxWeight = 5
)

// Kind tells whether a cell can be entered.
type Kind uint8

const (
	// Open cells may be entered at the cost of their Weight.
	Open Kind = iota
	// Blocked cells are never entered nor expanded, whatever their Weight.
	Blocked
)

// String returns "open" or "blocked".
func (k Kind) String() string {
	if k == Blocked {
		return "blocked"
	}
	return "open"
}

// Cell is a single board position.
type Cell struct {
	Kind   Kind
	Weight int
}

// OpenCell returns an Open cell of weight w.
func OpenCell(w int) Cell { return Cell{Kind: Open, Weight: w} }

// Wall returns a Blocked cell. Its weight is kept at MinWeight so that
// cycling it back to Open yields the lightest cell.
func Wall() Cell { return Cell{Kind: Blocked, Weight: MinWeight} }

// Coord identifies a cell by row and column. It is comparable and may be
// used as a map key.
type Coord struct {
	Row, Col int
}

// String formats the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Manhattan returns |Δrow| + |Δcol| between a and b.
func Manhattan(a, b Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// Adjacent reports whether a and b differ by exactly one orthogonal step.
func Adjacent(a, b Coord) bool {
	return Manhattan(a, b) == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Grid is a rectangular rows×cols board. Search packages treat it as an
// immutable snapshot; only the owner of the board should call the edit
// methods, and never while a search over the same Grid is running.
type Grid struct {
	rows, cols int
	cells      []Cell // row-major
}

// offsets lists neighbor deltas in the fixed order up, right, down, left.
var offsets = [4]Coord{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
