package gridpath

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/trace"
)

// Outcome pairs an algorithm with the Result it produced.
type Outcome struct {
	Algorithm Algorithm
	Result    *trace.Result
}

// Compare runs each of algs (all four when empty) on the same grid snapshot
// concurrently and returns the outcomes in the order requested.
//
// The searches themselves cannot be interrupted. ctx only prevents searches
// that have not started yet from starting once it is done.
func Compare(ctx context.Context, g *gridgraph.Grid, src, dst gridgraph.Coord, algs ...Algorithm) ([]Outcome, error) {
	if len(algs) == 0 {
		algs = Algorithms()
	}
	out := make([]Outcome, len(algs))

	eg, egctx := errgroup.WithContext(ctx)
	for i, alg := range algs {
		i, alg := i, alg
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			res, err := Run(alg, g, src, dst)
			if err != nil {
				return fmt.Errorf("%v: %w", alg, err)
			}
			out[i] = Outcome{Algorithm: alg, Result: res}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
