package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/plans"
)

// noteMarkdown renders one note as a Markdown section at the given heading level.
func noteMarkdown(n plans.Note, level int) string {
	var b strings.Builder
	check := " "
	if n.IsComplete {
		check = "x"
	}
	fmt.Fprintf(&b, "%s [%s] %s\n\n", strings.Repeat("#", level), check, n.Title)
	fmt.Fprintf(&b, "_%s · %s_\n\n", plans.GlyphFor(n.IsComplete), formatDate(n.Date))
	if body := strings.TrimSpace(n.Notes); body != "" {
		b.WriteString(body)
		b.WriteString("\n\n")
	}
	return b.String()
}

// listMarkdown renders every note as one document.
func listMarkdown(notes []plans.Note) string {
	var b strings.Builder
	b.WriteString("# Notes\n\n")
	for _, n := range notes {
		b.WriteString(noteMarkdown(n, 2))
	}
	return b.String()
}
