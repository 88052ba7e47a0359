package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath"
	"github.com/katalvlaran/gridpath/internal/playback"
	"github.com/katalvlaran/gridpath/internal/render"
	"github.com/katalvlaran/gridpath/scenario"
	"github.com/katalvlaran/gridpath/trace"
)

const clearScreen = "\x1b[H\x1b[2J"

type runOptions struct {
	algorithm string
	animate   bool
	delay     time.Duration
}

func newRunCmd(a *app) *cobra.Command {
	o := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Run one search and print the board with its trace and path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := a.load(args[0])
			if err != nil {
				return err
			}
			return a.runScenario(cmd, sc, o)
		},
	}
	cmd.Flags().StringVarP(&o.algorithm, "algorithm", "a", "", "override the scenario algorithm (bfs, dfs, dijkstra, astar)")
	cmd.Flags().BoolVar(&o.animate, "animate", false, "replay the search step by step")
	cmd.Flags().DurationVar(&o.delay, "delay", playback.DefaultDelay, "pause between animation frames")
	return cmd
}

// load reads a scenario file and logs its shape.
func (a *app) load(path string) (*scenario.Scenario, error) {
	sc, err := scenario.Load(path)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("scenario loaded",
		zap.String("path", path),
		zap.Int("rows", sc.Grid.Rows()),
		zap.Int("cols", sc.Grid.Cols()),
		zap.Stringer("source", sc.Source),
		zap.Stringer("target", sc.Target),
		zap.Stringer("algorithm", sc.Algorithm),
	)
	return sc, nil
}

func (a *app) runScenario(cmd *cobra.Command, sc *scenario.Scenario, o *runOptions) error {
	alg := sc.Algorithm
	if o.algorithm != "" {
		var err error
		if alg, err = gridpath.ParseAlgorithm(o.algorithm); err != nil {
			return err
		}
	}

	res, err := a.search(sc, alg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if o.animate {
		if err := a.animate(cmd, sc, res, o.delay); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(out, a.overlay(sc, res).View())
	}
	return summary(out, sc, alg, res)
}

// animate redraws the board once per playback frame.
func (a *app) animate(cmd *cobra.Command, sc *scenario.Scenario, res *trace.Result, delay time.Duration) error {
	board := render.NewBoard(sc.Grid, sc.Source, sc.Target, a.styles())
	out := cmd.OutOrStdout()
	draw := func() error {
		_, err := fmt.Fprint(out, clearScreen+board.View()+"\n")
		return err
	}
	if err := draw(); err != nil {
		return err
	}
	return playback.Play(cmd.Context(), res, delay, func(f playback.Frame) error {
		if f.Stage == playback.StagePath {
			board.MarkPath(f.Cell)
		} else {
			board.MarkVisited(f.Cell)
		}
		return draw()
	})
}
