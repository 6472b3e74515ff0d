package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var showRaw bool

var showCmd = &cobra.Command{
	Use:   "show <n>",
	Short: "Render a note and its Markdown body",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		index := parseIndex(args[0])
		store, p := loadPresenter(cmd, newTerminalView())
		defer store.Close()

		n, err := p.NoteAt(index)
		if err != nil {
			fatal("Error", err)
		}
		md := noteMarkdown(n, 1)
		if showRaw {
			fmt.Print(md)
			return
		}

		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err != nil {
			fatal("Error creating renderer", err)
		}
		out, err := renderer.Render(md)
		if err != nil {
			fatal("Error rendering note", err)
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "Print Markdown without rendering")
}
