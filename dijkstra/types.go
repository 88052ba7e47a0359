package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrGridNil indicates that a nil *gridgraph.Grid was passed to Dijkstra.
	ErrGridNil = errors.New("dijkstra: grid is nil")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")
)

// Options configures the behavior of Dijkstra.
//
// MaxCost – cells whose accumulated cost would exceed this value are neither
// pushed nor expanded. Default is math.MaxInt64 (no cap).
type Options struct {
	OnVisit func(c gridgraph.Coord, cost int64)
	MaxCost int64

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with no cost cap and a no-op hook.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(gridgraph.Coord, int64) {},
		MaxCost: math.MaxInt64,
	}
}

// WithOnVisit installs fn, called for each cell as it is finalized.
func WithOnVisit(fn func(c gridgraph.Coord, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxCost caps exploration at the given accumulated cost.
// Negative values are reported as ErrBadMaxCost when Dijkstra runs.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadMaxCost, max)
			return
		}
		o.MaxCost = max
	}
}
