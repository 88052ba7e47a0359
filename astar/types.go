package astar

import (
	"errors"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// ErrGridNil indicates that a nil *gridgraph.Grid was passed to AStar.
var ErrGridNil = errors.New("astar: grid is nil")

// Heuristic estimates the remaining cost from a cell to the target.
type Heuristic func(from, to gridgraph.Coord) int

// Manhattan is the default heuristic, admissible for 4-directional moves
// with weights ≥ 1.
func Manhattan(from, to gridgraph.Coord) int {
	return gridgraph.Manhattan(from, to)
}

// Zero is the trivial heuristic; with it A* degenerates to uniform-cost search.
func Zero(_, _ gridgraph.Coord) int { return 0 }

// Options configures the behavior of AStar.
type Options struct {
	OnVisit   func(c gridgraph.Coord, g, f int64)
	Heuristic Heuristic
}

// Option represents a functional option for configuring AStar.
type Option func(*Options)

// DefaultOptions returns Options with the Manhattan heuristic and a no-op hook.
func DefaultOptions() Options {
	return Options{
		OnVisit:   func(gridgraph.Coord, int64, int64) {},
		Heuristic: Manhattan,
	}
}

// WithOnVisit installs fn, called for each cell as it is finalized.
func WithOnVisit(fn func(c gridgraph.Coord, g, f int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithHeuristic replaces the Manhattan heuristic. A nil h is ignored.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}
