package gridpath

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/dfs"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/trace"
)

// ErrUnknownAlgorithm is returned for a name or value that maps to no search.
var ErrUnknownAlgorithm = errors.New("gridpath: unknown algorithm")

// Algorithm selects one of the four searches.
type Algorithm int

const (
	BFS Algorithm = iota
	DFS
	Dijkstra
	AStar
)

var algorithmNames = [...]string{
	BFS:      "bfs",
	DFS:      "dfs",
	Dijkstra: "dijkstra",
	AStar:    "astar",
}

// String returns the canonical lower-case name.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Algorithms lists every algorithm in canonical order.
func Algorithms() []Algorithm {
	return []Algorithm{BFS, DFS, Dijkstra, AStar}
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
// "a*" is accepted as an alias of "astar".
func ParseAlgorithm(name string) (Algorithm, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "a*" {
		return AStar, nil
	}
	for i, s := range algorithmNames {
		if s == n {
			return Algorithm(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Run executes alg on g from src to dst with default options.
// Errors from the underlying search are returned unchanged, so callers can
// match gridgraph.ErrOutOfBounds and the per-package ErrGridNil with errors.Is.
func Run(alg Algorithm, g *gridgraph.Grid, src, dst gridgraph.Coord) (*trace.Result, error) {
	switch alg {
	case BFS:
		return bfs.BFS(g, src, dst)
	case DFS:
		return dfs.DFS(g, src, dst)
	case Dijkstra:
		return dijkstra.Dijkstra(g, src, dst)
	case AStar:
		return astar.AStar(g, src, dst)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}
}
