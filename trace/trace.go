package trace

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// NoPredecessor marks a cell with no recorded predecessor.
const NoPredecessor = -1

var (
	// ErrBrokenChain is the panic value when a predecessor walk does not end at the source.
	ErrBrokenChain = errors.New("trace: predecessor chain does not lead back to source")
	// ErrInvalidPath is returned by Validate for a malformed path.
	ErrInvalidPath = errors.New("trace: invalid path")
)

// Result is the outcome of one search invocation.
type Result struct {
	Trace []gridgraph.Coord
	Path  []gridgraph.Coord
	Cost  int
}

// Found reports whether a path to the target was produced.
func (r *Result) Found() bool { return len(r.Path) > 0 }

// Predecessors maps a cell index to the index of the cell that discovered it.
type Predecessors []int

// NewPredecessors returns an array of n entries set to NoPredecessor.
func NewPredecessors(n int) Predecessors {
	p := make(Predecessors, n)
	for i := range p {
		p[i] = NoPredecessor
	}
	return p
}

// Reconstruct walks back from dst until a cell with no predecessor, then
// reverses the walk to produce the source → target path.
// It must only be called once dst has been reached. It panics with
// ErrBrokenChain if the walk does not stop at src or runs longer than the
// grid (a cycle).
func Reconstruct(g *gridgraph.Grid, prev Predecessors, src, dst gridgraph.Coord) []gridgraph.Coord {
	limit := len(prev)
	path := make([]gridgraph.Coord, 0, gridgraph.Manhattan(src, dst)+1)
	at := g.Index(dst)
	for ; at != NoPredecessor; at = prev[at] {
		if len(path) == limit {
			panic(fmt.Errorf("%w: cycle through %v", ErrBrokenChain, g.Coordinate(at)))
		}
		path = append(path, g.Coordinate(at))
	}
	if path[len(path)-1] != src {
		panic(fmt.Errorf("%w: walk ended at %v, source is %v", ErrBrokenChain, path[len(path)-1], src))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Cost sums the weights of every path cell after the first; weight is
// charged on entry. Empty and single-cell paths cost 0.
func Cost(g *gridgraph.Grid, path []gridgraph.Coord) int {
	total := 0
	for i := 1; i < len(path); i++ {
		total += g.Weight(path[i])
	}
	return total
}

// Validate checks that path runs from src to dst over in-bounds Open cells
// with 4-adjacent consecutive steps. An empty path is valid (no route).
func Validate(g *gridgraph.Grid, path []gridgraph.Coord, src, dst gridgraph.Coord) error {
	if len(path) == 0 {
		return nil
	}
	if path[0] != src || path[len(path)-1] != dst {
		return fmt.Errorf("%w: endpoints %v→%v, want %v→%v", ErrInvalidPath, path[0], path[len(path)-1], src, dst)
	}
	for i, c := range path {
		if !g.Passable(c) {
			return fmt.Errorf("%w: step %d at %v is not passable", ErrInvalidPath, i, c)
		}
		if i > 0 && !gridgraph.Adjacent(path[i-1], c) {
			return fmt.Errorf("%w: step %d %v→%v is not adjacent", ErrInvalidPath, i, path[i-1], c)
		}
	}

	return nil
}
