// Command gridpath runs grid searches from YAML scenario files.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/gridpath/internal/render"
)

// app carries the state shared by every subcommand.
type app struct {
	verbose bool
	plain   bool
	logger  *zap.Logger
}

// styles picks the board palette.
func (a *app) styles() render.Styles {
	if a.plain {
		return render.PlainStyles()
	}
	return render.DefaultStyles()
}

// newRootCmd builds the command tree. A non-nil logger is used as is;
// otherwise one is built from the --verbose flag before any subcommand runs.
func newRootCmd(logger *zap.Logger) *cobra.Command {
	a := &app{logger: logger}

	root := &cobra.Command{
		Use:   "gridpath",
		Short: "Grid pathfinding: BFS, DFS, Dijkstra and A* over YAML scenarios",
		Long: `gridpath searches a rectangular board of weighted cells for a route from a
source to a target and shows which cells each algorithm examined.

Boards are written one row per line: '.' is an open cell of weight 1,
'1'-'5' an open cell of that weight, '#' a wall.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger == nil {
				config := zap.NewProductionConfig()
				if a.verbose {
					config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
				}
				l, err := config.Build()
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
				a.logger = l
			}
			a.logger = a.logger.With(
				zap.String("run_id", uuid.New().String()),
				zap.String("command", cmd.Name()),
			)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&a.plain, "plain", false, "render the board without colors")

	root.AddCommand(
		newRunCmd(a),
		newCompareCmd(a),
		newWatchCmd(a),
		newMazeCmd(a),
	)
	return root
}

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
