package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	addTitle string
	addNotes string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a note dated now",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, p := loadPresenter(cmd, newTerminalView())
		defer store.Close()

		n, err := p.Create(commandContext(cmd), addTitle, addNotes)
		exitOnError(err)
		fmt.Printf("Added: %s (%s)\n", n.Title, n.ID)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "Note title")
	addCmd.Flags().StringVarP(&addNotes, "notes", "n", "", "Note body (Markdown)")
	_ = addCmd.MarkFlagRequired("title")
}
