package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/aretw0/plans"
	plifecycle "github.com/aretw0/plans/pkg/adapters/lifecycle"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the list again whenever the data file changes",
	Long: `Watch follows the data file and reloads the list after every change made
by another process or editor. Stop with Ctrl+C.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, p := loadPresenter(cmd, newTerminalView())
		defer store.Close()

		if err := watch(commandContext(cmd), store, p); err != nil {
			fatal("Error watching notes", err)
		}
	},
}

func watch(ctx context.Context, store *plans.Store, p *plans.Presenter) error {
	changes, err := store.Watch(ctx)
	if err != nil {
		return err
	}
	src := plifecycle.NewSource(changes)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return src.Start(ctx)
	})
	g.Go(func() error {
		printNotes(os.Stdout, p.Notes())
		for e := range src.Events() {
			slog.Debug("store changed", "event", e.String())
			store.Invalidate()
			// A failed reload is reported by the view; keep watching.
			if err := p.Load(ctx); err == nil {
				fmt.Println()
				printNotes(os.Stdout, p.Notes())
			}
		}
		return nil
	})
	return g.Wait()
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
