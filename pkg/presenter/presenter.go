// Package presenter keeps the sorted display list a note view renders and
// translates user intents into repository calls.
//
// The presenter never renders anything. It tells its View which rows changed
// (reload all, insert, delete, reload one) and reports failures as a
// title/message pair. Views are notified after the presenter's lock has been
// released, so a View may call back into Count or NoteAt from a notification.
package presenter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/aretw0/plans/pkg/core"
)

// ErrIndexOutOfRange is returned when a display index does not address a note.
var ErrIndexOutOfRange = errors.New("index out of range")

// View receives structural updates for the note list.
type View interface {
	NotifyReloadAll()
	NotifyInsertedAt(index int)
	NotifyDeletedAt(index int)
	NotifyReloadedAt(index int)
	NotifyError(title, message string)
	NotifyLoadingStarted()
	NotifyLoadingStopped()
}

// Glyph names the icon a view shows for a note's completion state.
type Glyph string

const (
	GlyphDone    Glyph = "done"
	GlyphPending Glyph = "pending"
)

// GlyphFor maps a completion flag to its glyph.
func GlyphFor(isComplete bool) Glyph {
	if isComplete {
		return GlyphDone
	}
	return GlyphPending
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithLogger sets the logger used for failed operations.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Presenter) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// Presenter mediates between a NoteRepository and a View.
type Presenter struct {
	repo   core.NoteRepository
	view   View
	logger *slog.Logger

	mu      sync.Mutex
	display []core.Note
}

// New creates a presenter. The view is not owned; it usually owns the presenter.
func New(repo core.NoteRepository, view View, opts ...Option) *Presenter {
	p := &Presenter{
		repo:   repo,
		view:   view,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Load replaces the display list with every stored note, newest first.
func (p *Presenter) Load(ctx context.Context) error {
	p.view.NotifyLoadingStarted()
	defer p.view.NotifyLoadingStopped()

	p.mu.Lock()
	notes, err := p.repo.FetchNotes(ctx)
	if err == nil {
		sortByDate(notes)
		p.display = notes
	}
	p.mu.Unlock()

	if err != nil {
		return p.fail("load", err)
	}
	p.view.NotifyReloadAll()
	return nil
}

// Add saves n and inserts it at its sorted position.
func (p *Presenter) Add(ctx context.Context, n core.Note) error {
	p.view.NotifyLoadingStarted()
	defer p.view.NotifyLoadingStopped()

	p.mu.Lock()
	err := p.repo.SaveNote(ctx, n)
	index := -1
	if err == nil {
		index = insertIndex(p.display, n)
		p.display = slices.Insert(p.display, index, n)
	}
	p.mu.Unlock()

	if err != nil {
		return p.fail("add", err)
	}
	p.view.NotifyInsertedAt(index)
	return nil
}

// Create builds a new note dated now and adds it.
func (p *Presenter) Create(ctx context.Context, title, body string) (core.Note, error) {
	n := core.NewNote(title, body)
	if err := p.Add(ctx, n); err != nil {
		return core.Note{}, err
	}
	return n, nil
}

// Delete removes the note shown at index.
func (p *Presenter) Delete(ctx context.Context, index int) error {
	p.mu.Lock()
	n, err := p.at(index)
	if err == nil {
		err = p.repo.RemoveNote(ctx, n)
	}
	if err == nil {
		p.display = slices.Delete(p.display, index, index+1)
	}
	p.mu.Unlock()

	if err != nil {
		return p.fail("delete", err)
	}
	p.view.NotifyDeletedAt(index)
	return nil
}

// Toggle flips the completion flag of the note shown at index.
func (p *Presenter) Toggle(ctx context.Context, index int) error {
	p.mu.Lock()
	n, err := p.at(index)
	if err == nil {
		n = n.Toggled()
		err = p.repo.UpdateNote(ctx, n)
	}
	if err == nil {
		p.display[index] = n
	}
	p.mu.Unlock()

	if err != nil {
		return p.fail("toggle", err)
	}
	p.view.NotifyReloadedAt(index)
	return nil
}

// Update stores an edited note and shows it at index. The note at index must
// have the same ID as n; its position is not re-sorted.
func (p *Presenter) Update(ctx context.Context, n core.Note, index int) error {
	p.mu.Lock()
	current, err := p.at(index)
	if err == nil && !current.Equal(n) {
		err = fmt.Errorf("%w: row %d shows %s, not %s", core.ErrNotFound, index, current.ID, n.ID)
	}
	if err == nil {
		err = p.repo.UpdateNote(ctx, n)
	}
	if err == nil {
		p.display[index] = n
	}
	p.mu.Unlock()

	if err != nil {
		return p.fail("update", err)
	}
	p.view.NotifyReloadedAt(index)
	return nil
}

// Count returns the number of notes in the display list.
func (p *Presenter) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.display)
}

// NoteAt returns the note shown at index.
func (p *Presenter) NoteAt(index int) (core.Note, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.at(index)
}

// Notes returns a copy of the display list.
func (p *Presenter) Notes() []core.Note {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.display)
}

// at must be called with p.mu held.
func (p *Presenter) at(index int) (core.Note, error) {
	if index < 0 || index >= len(p.display) {
		return core.Note{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(p.display))
	}
	return p.display[index], nil
}

func (p *Presenter) fail(op string, err error) error {
	p.logger.Warn("operation failed", "op", op, "error", err)
	title, message := Describe(err)
	p.view.NotifyError(title, message)
	return err
}

// sortByDate orders notes newest first, keeping stored order for equal dates.
func sortByDate(notes []core.Note) {
	slices.SortStableFunc(notes, func(a, b core.Note) int {
		return b.Date.Compare(a.Date)
	})
}

// insertIndex is the first position whose note is not newer than n.
func insertIndex(display []core.Note, n core.Note) int {
	for i, other := range display {
		if !other.Date.After(n.Date) {
			return i
		}
	}
	return len(display)
}
