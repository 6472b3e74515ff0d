package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/aretw0/plans"
	"github.com/aretw0/plans/pkg/core"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse and edit notes interactively",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := commandContext(cmd)
		store := openStore(cmd)
		defer store.Close()

		m := newTUIModel(ctx, store)
		// Load before the program starts so every presenter call, and so every
		// notification, happens on the bubbletea event loop.
		_ = m.p.Load(ctx)

		// Watching is optional; sqlite has no change feed.
		if changes, err := store.Watch(ctx); err == nil {
			m.changes = changes
		}

		if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
			fatal("Error running tui", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

type inputMode int

const (
	modeBrowse inputMode = iota
	modeAdd
	modeEdit
)

type storeChangedMsg struct{}

// tuiModel is both the bubbletea model and the presenter's view.
type tuiModel struct {
	ctx     context.Context
	store   *plans.Store
	p       *plans.Presenter
	changes <-chan core.Event

	input   textinput.Model
	mode    inputMode
	cursor  int
	loading bool
	status  string
	errMsg  string
}

func newTUIModel(ctx context.Context, store *plans.Store) *tuiModel {
	ti := textinput.New()
	ti.Prompt = "│ "
	ti.CharLimit = 256
	ti.Width = 60

	m := &tuiModel{ctx: ctx, store: store, input: ti}
	m.p = plans.NewPresenter(store, m)
	return m
}

// --- presenter.View ---

func (m *tuiModel) NotifyReloadAll() {
	m.clampCursor()
	m.status = fmt.Sprintf("%d notes", m.p.Count())
}

func (m *tuiModel) NotifyInsertedAt(index int) {
	m.cursor = index
	m.status = "Added"
}

func (m *tuiModel) NotifyDeletedAt(index int) {
	m.clampCursor()
	m.status = "Deleted"
}

func (m *tuiModel) NotifyReloadedAt(index int) {
	m.status = "Saved"
}

func (m *tuiModel) NotifyError(title, message string) {
	m.errMsg = title + ": " + message
}

func (m *tuiModel) NotifyLoadingStarted() { m.loading = true }

func (m *tuiModel) NotifyLoadingStopped() { m.loading = false }

func (m *tuiModel) clampCursor() {
	if n := m.p.Count(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// --- tea.Model ---

func (m *tuiModel) Init() tea.Cmd {
	return m.waitForChange()
}

func (m *tuiModel) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-m.changes; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case storeChangedMsg:
		m.store.Invalidate()
		_ = m.p.Load(m.ctx)
		return m, m.waitForChange()

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.mode != modeBrowse {
			return m.updateInput(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m *tuiModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errMsg = ""
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.p.Count()-1 {
			m.cursor++
		}
	case " ", "x":
		_ = m.p.Toggle(m.ctx, m.cursor)
	case "d":
		_ = m.p.Delete(m.ctx, m.cursor)
	case "r":
		m.store.Invalidate()
		_ = m.p.Load(m.ctx)
	case "a":
		return m.startInput(modeAdd, "")
	case "e":
		n, err := m.p.NoteAt(m.cursor)
		if err != nil {
			return m, nil
		}
		return m.startInput(modeEdit, n.Title)
	}
	return m, nil
}

func (m *tuiModel) startInput(mode inputMode, value string) (tea.Model, tea.Cmd) {
	m.mode = mode
	m.input.Placeholder = "Title"
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m, tea.Batch(m.input.Focus(), textinput.Blink)
}

func (m *tuiModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.stopInput()
		return m, nil
	case tea.KeyEnter:
		title := strings.TrimSpace(m.input.Value())
		mode := m.mode
		m.stopInput()
		if title == "" {
			return m, nil
		}
		switch mode {
		case modeAdd:
			_, _ = m.p.Create(m.ctx, title, "")
		case modeEdit:
			if n, err := m.p.NoteAt(m.cursor); err == nil {
				_ = m.p.Update(m.ctx, n.WithContent(title, n.Notes), m.cursor)
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *tuiModel) stopInput() {
	m.mode = modeBrowse
	m.input.Blur()
	m.input.Reset()
}

func (m *tuiModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("plans"))
	if m.loading {
		b.WriteString(dimStyle.Render(" loading…"))
	}
	b.WriteString("\n\n")

	notes := m.p.Notes()
	if len(notes) == 0 {
		b.WriteString(dimStyle.Render("No notes. Press a to add one."))
		b.WriteString("\n")
	}
	for i, n := range notes {
		marker := "  "
		title := n.Title
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
			title = titleStyle.Render(title)
		}
		fmt.Fprintf(&b, "%s%s %s %s\n", marker, glyph(n.IsComplete), title, dimStyle.Render(formatDate(n.Date)))
	}

	b.WriteString("\n")
	if m.mode != modeBrowse {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("enter: save • esc: cancel"))
	} else {
		if m.errMsg != "" {
			b.WriteString(pendingStyle.Render(m.errMsg))
			b.WriteString("\n")
		} else if m.status != "" {
			b.WriteString(dimStyle.Render(m.status))
			b.WriteString("\n")
		}
		b.WriteString(dimStyle.Render("↑/↓: move • space: toggle • a: add • e: edit • d: delete • r: reload • q: quit"))
	}
	b.WriteString("\n")
	return b.String()
}
