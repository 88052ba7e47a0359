package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath"
	"github.com/katalvlaran/gridpath/internal/render"
)

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <scenario.yaml>",
		Short: "Run all four algorithms on one scenario and tabulate the results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := a.load(args[0])
			if err != nil {
				return err
			}
			outcomes, err := gridpath.Compare(cmd.Context(), sc.Grid, sc.Source, sc.Target)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(outcomes))
			for _, o := range outcomes {
				pathLen, cost := "-", "-"
				if o.Result.Found() {
					pathLen = strconv.Itoa(len(o.Result.Path))
					cost = strconv.Itoa(o.Result.Cost)
				}
				rows = append(rows, []string{o.Algorithm.String(), strconv.Itoa(len(o.Result.Trace)), pathLen, cost})
			}
			a.logger.Debug("comparison finished")

			_, err = fmt.Fprint(cmd.OutOrStdout(),
				render.Table(a.styles(), []string{"algorithm", "visited", "path", "cost"}, rows))
			return err
		},
	}
}
