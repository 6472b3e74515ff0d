package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/plans"
	"github.com/aretw0/plans/pkg/presenter"
)

const dateLayout = "2006-01-02 15:04"

var (
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
)

// glyph renders a completion state with the presenter's glyph name.
func glyph(isComplete bool) string {
	g := presenter.GlyphFor(isComplete)
	label := fmt.Sprintf("[%-7s]", g)
	if g == presenter.GlyphDone {
		return doneStyle.Render(label)
	}
	return pendingStyle.Render(label)
}

func formatDate(t time.Time) string {
	return t.Local().Format(dateLayout)
}

// printNotes writes one numbered line per note, numbered from 1.
func printNotes(w io.Writer, notes []plans.Note) {
	if len(notes) == 0 {
		fmt.Fprintln(w, dimStyle.Render("No notes."))
		return
	}
	for i, n := range notes {
		fmt.Fprintf(w, "%3d. %s %s %s\n", i+1, glyph(n.IsComplete), titleStyle.Render(n.Title), dimStyle.Render(formatDate(n.Date)))
	}
}
