package render

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Glyphs drawn for each overlay. Plain cells use '.' or their weight digit,
// walls use '#', matching the textual grid format.
const (
	GlyphSource  = "S"
	GlyphTarget  = "T"
	GlyphVisited = "o"
	GlyphPath    = "*"
)

// Board is a grid plus the "visited" and "path" overlays a search leaves
// behind. Overlays never apply to walls or to the endpoints.
type Board struct {
	grid    *gridgraph.Grid
	src     gridgraph.Coord
	dst     gridgraph.Coord
	visited []bool
	onPath  []bool
	styles  Styles
}

// NewBoard returns a board with no overlays.
func NewBoard(g *gridgraph.Grid, src, dst gridgraph.Coord, styles Styles) *Board {
	return &Board{
		grid:    g,
		src:     src,
		dst:     dst,
		visited: make([]bool, g.Size()),
		onPath:  make([]bool, g.Size()),
		styles:  styles,
	}
}

// MarkVisited adds c to the visited overlay. Out-of-bounds cells are ignored.
func (b *Board) MarkVisited(c gridgraph.Coord) {
	if b.grid.InBounds(c) {
		b.visited[b.grid.Index(c)] = true
	}
}

// MarkPath adds c to the path overlay. Out-of-bounds cells are ignored.
func (b *Board) MarkPath(c gridgraph.Coord) {
	if b.grid.InBounds(c) {
		b.onPath[b.grid.Index(c)] = true
	}
}

// Reset clears both overlays.
func (b *Board) Reset() {
	clear(b.visited)
	clear(b.onPath)
}

// View renders the board one row per line, one glyph per cell.
func (b *Board) View() string {
	var sb strings.Builder
	for r := 0; r < b.grid.Rows(); r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.grid.Cols(); c++ {
			sb.WriteString(b.cell(gridgraph.Coord{Row: r, Col: c}))
		}
	}
	return sb.String()
}

func (b *Board) cell(c gridgraph.Coord) string {
	i := b.grid.Index(c)
	cell := b.grid.At(c)
	switch {
	case c == b.src:
		return b.styles.Source.Render(GlyphSource)
	case c == b.dst:
		return b.styles.Target.Render(GlyphTarget)
	case cell.Kind == gridgraph.Blocked:
		return b.styles.Wall.Render("#")
	case b.onPath[i]:
		return b.styles.Path.Render(GlyphPath)
	case b.visited[i]:
		return b.styles.Visited.Render(GlyphVisited)
	case cell.Weight > gridgraph.MinWeight:
		return b.styles.Weighted.Render(strconv.Itoa(cell.Weight))
	default:
		return b.styles.Open.Render(".")
	}
}
