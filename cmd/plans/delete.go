package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <n>",
	Short: "Delete a note",
	Long:  `Delete permanently removes the note at position n of "plans list".`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		index := parseIndex(args[0])
		store, p := loadPresenter(cmd, newTerminalView())
		defer store.Close()

		n, err := p.NoteAt(index)
		if err != nil {
			fatal("Error", err)
		}
		exitOnError(p.Delete(commandContext(cmd), index))
		fmt.Printf("Deleted: %s\n", n.Title)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
