package maze

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

var (
	// ErrGridNil indicates that Generate was given a nil grid.
	ErrGridNil = errors.New("maze: grid is nil")

	// ErrBadDensity indicates a wall density outside [0,1].
	ErrBadDensity = errors.New("maze: density must be within [0,1]")

	// ErrBadWeights indicates a weight probability outside [0,1].
	ErrBadWeights = errors.New("maze: weight probability must be within [0,1]")
)

// DefaultDensity is the share of Open cells turned into walls.
const DefaultDensity = 0.3

// Options configures Generate.
type Options struct {
	Density float64 // probability of walling an Open cell
	Weights float64 // probability of re-weighting a surviving Open cell
	Seed    int64   // 0 selects defaultSeed
	Keep    []gridgraph.Coord

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Density=DefaultDensity, no weights, seed 0.
func DefaultOptions() Options {
	return Options{Density: DefaultDensity}
}

// WithDensity sets the wall probability.
func WithDensity(p float64) Option {
	return func(o *Options) {
		if p < 0 || p > 1 || math.IsNaN(p) {
			o.err = fmt.Errorf("%w: %v", ErrBadDensity, p)
			return
		}
		o.Density = p
	}
}

// WithWeights sets the probability that a surviving Open cell is given a
// random weight in 2..5.
func WithWeights(p float64) Option {
	return func(o *Options) {
		if p < 0 || p > 1 || math.IsNaN(p) {
			o.err = fmt.Errorf("%w: %v", ErrBadWeights, p)
			return
		}
		o.Weights = p
	}
}

// WithSeed fixes the random source.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithKeep protects the given cells from being walled or re-weighted.
// Out-of-bounds coordinates are ignored.
func WithKeep(cells ...gridgraph.Coord) Option {
	return func(o *Options) { o.Keep = append(o.Keep, cells...) }
}
