package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/scenario"
)

type mazeOptions struct {
	rows, cols int
	density    float64
	weights    float64
	seed       int64
	algorithm  string
	asYAML     bool
}

func newMazeCmd(a *app) *cobra.Command {
	o := &mazeOptions{}
	cmd := &cobra.Command{
		Use:   "maze",
		Short: "Print a random board, as text or as a scenario file",
		Long: `Generates a board with random walls (and optionally random weights).
The top-left and bottom-right corners are never walled, so the result can be
used as a scenario with default endpoints.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generate(cmd, o)
		},
	}
	f := cmd.Flags()
	f.IntVar(&o.rows, "rows", 10, "board height")
	f.IntVar(&o.cols, "cols", 20, "board width")
	f.Float64Var(&o.density, "density", maze.DefaultDensity, "probability that a cell becomes a wall")
	f.Float64Var(&o.weights, "weights", 0, "probability that an open cell gets a random weight 2-5")
	f.Int64Var(&o.seed, "seed", 0, "random seed (0 selects a fixed default)")
	f.StringVarP(&o.algorithm, "algorithm", "a", gridpath.BFS.String(), "algorithm written to the scenario (with --yaml)")
	f.BoolVar(&o.asYAML, "yaml", false, "print a complete scenario file instead of the bare board")
	return cmd
}

func (a *app) generate(cmd *cobra.Command, o *mazeOptions) error {
	base, err := gridgraph.NewUniform(o.rows, o.cols)
	if err != nil {
		return err
	}
	src := gridgraph.Coord{}
	dst := gridgraph.Coord{Row: o.rows - 1, Col: o.cols - 1}
	g, err := maze.Generate(base,
		maze.WithDensity(o.density),
		maze.WithWeights(o.weights),
		maze.WithSeed(o.seed),
		maze.WithKeep(src, dst),
	)
	if err != nil {
		return err
	}
	a.logger.Debug("maze generated",
		zap.Int("rows", o.rows),
		zap.Int("cols", o.cols),
		zap.Float64("density", o.density),
		zap.Int64("seed", o.seed),
	)

	out := cmd.OutOrStdout()
	if !o.asYAML {
		_, err = fmt.Fprintln(out, g)
		return err
	}

	alg, err := gridpath.ParseAlgorithm(o.algorithm)
	if err != nil {
		return err
	}
	data, err := (&scenario.Scenario{Grid: g, Source: src, Target: dst, Algorithm: alg}).Marshal()
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
