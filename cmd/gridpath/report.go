package main

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath"
	"github.com/katalvlaran/gridpath/internal/render"
	"github.com/katalvlaran/gridpath/scenario"
	"github.com/katalvlaran/gridpath/trace"
)

// search runs alg on the scenario and logs how it went.
func (a *app) search(sc *scenario.Scenario, alg gridpath.Algorithm) (*trace.Result, error) {
	start := time.Now()
	res, err := gridpath.Run(alg, sc.Grid, sc.Source, sc.Target)
	if err != nil {
		return nil, err
	}
	a.logger.Info("search finished",
		zap.Stringer("algorithm", alg),
		zap.Int("visited", len(res.Trace)),
		zap.Int("path_len", len(res.Path)),
		zap.Int("cost", res.Cost),
		zap.Duration("elapsed", time.Since(start)),
	)
	return res, nil
}

// overlay returns a board carrying every visited and path cell of res.
func (a *app) overlay(sc *scenario.Scenario, res *trace.Result) *render.Board {
	b := render.NewBoard(sc.Grid, sc.Source, sc.Target, a.styles())
	for _, c := range res.Trace {
		b.MarkVisited(c)
	}
	for _, c := range res.Path {
		b.MarkPath(c)
	}
	return b
}

// summary writes the one-line outcome. When no path exists it adds how many
// walls stand in the way.
func summary(w io.Writer, sc *scenario.Scenario, alg gridpath.Algorithm, res *trace.Result) error {
	if res.Found() {
		_, err := fmt.Fprintf(w, "%s: path of %d cells, cost %d, %d cells visited\n",
			alg, len(res.Path), res.Cost, len(res.Trace))
		return err
	}
	_, walls, err := sc.Grid.Breach(sc.Source, sc.Target)
	if err != nil {
		return err
	}
	noun := "walls"
	if walls == 1 {
		noun = "wall"
	}
	_, err = fmt.Fprintf(w, "%s: no path, %d cells visited; opening %d %s would connect source and target\n",
		alg, len(res.Trace), walls, noun)
	return err
}
