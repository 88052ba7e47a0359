package maze

import (
	"github.com/katalvlaran/gridpath/gridgraph"
)

const (
	minRandomWeight = gridgraph.MinWeight + 1
	weightSpan      = gridgraph.MaxWeight - gridgraph.MinWeight
)

// Generate returns a copy of g with random walls and, optionally, random
// weights. g itself is left untouched.
func Generate(g *gridgraph.Grid, opts ...Option) (*gridgraph.Grid, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	keep := make([]bool, g.Size())
	for _, c := range o.Keep {
		if g.InBounds(c) {
			keep[g.Index(c)] = true
		}
	}

	out := g.Clone()
	rng := rngFromSeed(o.Seed)
	for i := 0; i < out.Size(); i++ {
		c := out.Coordinate(i)
		if keep[i] || out.IsBlocked(c) {
			continue
		}
		// Every candidate consumes three draws: the wall layout for a seed
		// does not depend on Weights.
		wall := rng.Float64() < o.Density
		reweight := rng.Float64() < o.Weights
		w := minRandomWeight + rng.Intn(weightSpan)
		switch {
		case wall:
			_ = out.SetKind(c, gridgraph.Blocked)
		case reweight:
			_ = out.SetWeight(c, w)
		}
	}

	return out, nil
}
