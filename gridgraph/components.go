package gridgraph

// ConnectedComponents finds all 4-connected regions of Open cells.
// Returns a slice of components; each component is a slice of cell indices
// (row-major) in BFS discovery order. Components are ordered by their first
// cell in row-major order.
//
// To convert an index back to a Coord, use Coordinate(idx).
//
// Time:   O(R·C·4).
// Memory: O(R·C) for seen flags and output.
func (g *Grid) ConnectedComponents() [][]int {
	seen := make([]bool, len(g.cells))
	var comps [][]int

	for i0, cell := range g.cells {
		if cell.Kind == Blocked || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, n := range g.Neighbors(g.Coordinate(queue[qi])) {
				if !g.Passable(n) {
					continue
				}
				vi := g.Index(n)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// ComponentOf returns the index into ConnectedComponents() of the region
// containing c, or -1 if c is Blocked or out of bounds.
func (g *Grid) ComponentOf(c Coord) int {
	if !g.Passable(c) {
		return -1
	}
	target := g.Index(c)
	for ci, comp := range g.ConnectedComponents() {
		for _, idx := range comp {
			if idx == target {
				return ci
			}
		}
	}

	return -1
}
