package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/plans/pkg/presenter"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <n>",
	Short: "Flip a note between done and pending",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		index := parseIndex(args[0])
		store, p := loadPresenter(cmd, newTerminalView())
		defer store.Close()

		exitOnError(p.Toggle(commandContext(cmd), index))
		n, _ := p.NoteAt(index)
		fmt.Printf("%s is now %s\n", n.Title, presenter.GlyphFor(n.IsComplete))
	},
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}
