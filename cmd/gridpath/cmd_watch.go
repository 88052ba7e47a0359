package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// watchDebounce batches the bursts of events editors emit on save.
const watchDebounce = 150 * time.Millisecond

func newWatchCmd(a *app) *cobra.Command {
	o := &runOptions{}
	cmd := &cobra.Command{
		Use:   "watch <scenario.yaml>",
		Short: "Re-run the search every time the scenario file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			rerun := func() error {
				sc, err := a.load(args[0])
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), clearScreen)
				return a.runScenario(cmd, sc, o)
			}
			if err := rerun(); err != nil {
				a.logger.Warn("scenario run failed", zap.Error(err))
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
			return a.watchFile(ctx, args[0], watchDebounce, func() error {
				if err := rerun(); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
					return err
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&o.algorithm, "algorithm", "a", "", "override the scenario algorithm (bfs, dfs, dijkstra, astar)")
	return cmd
}

// watchFile calls onChange after every settled write to path until ctx is
// done. It watches the parent directory so that editors replacing the file
// by rename are still seen. Errors from onChange are logged, not returned:
// a half-saved file should not end the session.
func (a *app) watchFile(ctx context.Context, path string, debounce time.Duration, onChange func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()

	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}
	a.logger.Info("watching scenario", zap.String("path", target))

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			name, _ := filepath.Abs(event.Name)
			if name != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			a.logger.Debug("scenario changed", zap.Stringer("op", event.Op))
			fire = time.After(debounce)

		case <-fire:
			fire = nil
			if err := onChange(); err != nil {
				a.logger.Warn("scenario run failed", zap.Error(err))
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			a.logger.Error("watcher error", zap.Error(err))
		}
	}
}
