package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	editTitle string
	editNotes string
)

var editCmd = &cobra.Command{
	Use:   "edit <n>",
	Short: "Change the title or body of a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		index := parseIndex(args[0])
		store, p := loadPresenter(cmd, newTerminalView())
		defer store.Close()

		n, err := p.NoteAt(index)
		if err != nil {
			fatal("Error", err)
		}
		title, body := n.Title, n.Notes
		if cmd.Flags().Changed("title") {
			title = editTitle
		}
		if cmd.Flags().Changed("notes") {
			body = editNotes
		}

		exitOnError(p.Update(commandContext(cmd), n.WithContent(title, body), index))
		fmt.Printf("Updated: %s\n", title)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&editNotes, "notes", "n", "", "New body (Markdown)")
}
