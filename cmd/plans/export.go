package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/aretw0/plans"
)

var (
	exportHTML   bool
	exportJSON   bool
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all notes as Markdown, HTML or JSON",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if exportHTML && exportJSON {
			fatal("Error", fmt.Errorf("--html and --json are mutually exclusive"))
		}

		store, p := loadPresenter(cmd, newTerminalView())
		defer store.Close()

		var out io.Writer = os.Stdout
		if exportOutput != "" {
			f, err := os.Create(exportOutput)
			if err != nil {
				fatal("Error creating output file", err)
			}
			defer f.Close()
			out = f
		}

		if err := export(out, p.Notes()); err != nil {
			fatal("Error exporting notes", err)
		}
	},
}

func export(w io.Writer, notes []plans.Note) error {
	switch {
	case exportJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(notes)
	case exportHTML:
		return renderHTML(w, listMarkdown(notes))
	default:
		_, err := io.WriteString(w, listMarkdown(notes))
		return err
	}
}

// renderHTML converts Markdown to an HTML fragment. Task list checkboxes and
// tables in note bodies are supported.
func renderHTML(w io.Writer, markdown string) error {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().BoolVar(&exportHTML, "html", false, "Export as HTML")
	exportCmd.Flags().BoolVar(&exportJSON, "json", false, "Export as JSON")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to a file instead of stdout")
}
