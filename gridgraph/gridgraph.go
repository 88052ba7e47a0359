package gridgraph

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice of cells.
// It deep-copies the input so later changes to cells do not leak into the grid.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrBadWeight if a
// cell weight lies outside [MinWeight, MaxWeight].
// Complexity: O(R×C) time and memory.
func New(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]Cell, 0, rows*cols)}
	for r, row := range cells {
		for c, cell := range row {
			if cell.Weight < MinWeight || cell.Weight > MaxWeight {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrBadWeight, cell.Weight, r, c)
			}
			g.cells = append(g.cells, cell)
		}
	}

	return g, nil
}

// NewUniform returns a rows×cols grid of Open cells of weight MinWeight.
func NewUniform(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
	for i := range g.cells {
		g.cells[i] = OpenCell(MinWeight)
	}

	return g, nil
}

// Parse builds a Grid from its textual form, one string per row.
// See the package documentation for the symbol set.
func Parse(lines []string) (*Grid, error) {
	cells := make([][]Cell, len(lines))
	for r, line := range lines {
		row := make([]Cell, 0, len(line))
		for _, ch := range line {
			switch {
			case ch == '.':
				row = append(row, OpenCell(MinWeight))
			case ch == '#':
				row = append(row, Wall())
			case ch >= '0'+MinWeight && ch <= '0'+MaxWeight:
				row = append(row, OpenCell(int(ch-'0')))
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, ch, r, len(row))
			}
		}
		cells[r] = row
	}

	return New(cells)
}

// String renders the grid in the textual format accepted by Parse,
// rows separated by newlines.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			cell := g.cells[r*g.cols+c]
			switch {
			case cell.Kind == Blocked:
				sb.WriteByte('#')
			case cell.Weight == MinWeight:
				sb.WriteByte('.')
			default:
				sb.WriteByte(byte('0' + cell.Weight))
			}
		}
	}

	return sb.String()
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns rows×cols, the length of any per-cell index array.
func (g *Grid) Size() int { return g.rows * g.cols }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Index maps c to its row-major index row*cols+col. c must be in bounds.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// Neighbors returns the four orthogonal neighbors of c in the fixed order
// up, right, down, left. Some may be out of bounds; callers filter with InBounds.
func (g *Grid) Neighbors(c Coord) [4]Coord {
	var out [4]Coord
	for i, d := range offsets {
		out[i] = Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
	}

	return out
}

// At returns the cell at c. It panics if c is out of bounds.
func (g *Grid) At(c Coord) Cell {
	g.mustInBounds(c)
	return g.cells[g.Index(c)]
}

// IsBlocked reports whether the cell at c is Blocked. It panics if c is out of bounds.
func (g *Grid) IsBlocked(c Coord) bool {
	return g.At(c).Kind == Blocked
}

// Weight returns the traversal cost of entering c. It is meaningful only for
// in-bounds Open cells and panics if c is out of bounds.
func (g *Grid) Weight(c Coord) int {
	return g.At(c).Weight
}

// Passable reports whether c is in bounds and Open. It is the single test
// every search applies before entering a neighbor.
func (g *Grid) Passable(c Coord) bool {
	return g.InBounds(c) && g.cells[g.Index(c)].Kind == Open
}

// CheckEndpoints returns an error wrapping ErrOutOfBounds if src or dst lies
// outside the grid.
func (g *Grid) CheckEndpoints(src, dst Coord) error {
	if !g.InBounds(src) {
		return fmt.Errorf("%w: source %v in %dx%d grid", ErrOutOfBounds, src, g.rows, g.cols)
	}
	if !g.InBounds(dst) {
		return fmt.Errorf("%w: target %v in %dx%d grid", ErrOutOfBounds, dst, g.rows, g.cols)
	}

	return nil
}

// Clone returns a deep copy. Use it to hand a stable snapshot to a search
// while the source grid keeps being edited.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)

	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Clear removes every wall. Weights are kept.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].Kind = Open
	}
}

// SetKind changes the kind of the cell at c, keeping its weight.
func (g *Grid) SetKind(c Coord, k Kind) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	g.cells[g.Index(c)].Kind = k

	return nil
}

// SetWeight changes the weight of the cell at c.
func (g *Grid) SetWeight(c Coord, w int) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	if w < MinWeight || w > MaxWeight {
		return fmt.Errorf("%w: %d", ErrBadWeight, w)
	}
	g.cells[g.Index(c)].Weight = w

	return nil
}

// Cycle advances the cell at c through the edit cycle
// 1 → 2 → 3 → 4 → 5 → Blocked → 1 and returns the new cell.
func (g *Grid) Cycle(c Coord) (Cell, error) {
	if !g.InBounds(c) {
		return Cell{}, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	i := g.Index(c)
	switch cell := g.cells[i]; {
	case cell.Kind == Blocked:
		g.cells[i] = OpenCell(MinWeight)
	case cell.Weight >= MaxWeight:
		g.cells[i] = Wall()
	default:
		g.cells[i].Weight++
	}

	return g.cells[i], nil
}

func (g *Grid) mustInBounds(c Coord) {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("gridgraph: %v outside %dx%d grid", c, g.rows, g.cols))
	}
}
