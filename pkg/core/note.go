package core

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Note is the central entity of the domain.
// Identity is the ID alone: two notes with identical content but different
// IDs are distinct, and a note is Equal to another iff their IDs match.
type Note struct {
	ID         string    `json:"id" yaml:"id" validate:"required"`
	Title      string    `json:"title" yaml:"title"`
	IsComplete bool      `json:"isComplete" yaml:"isComplete"`
	Date       time.Time `json:"date" yaml:"date" validate:"required"`
	Notes      string    `json:"notes" yaml:"notes"`
}

// NewNote creates a pending note dated now with a fresh ID.
func NewNote(title, body string) Note {
	return Note{
		ID:    uuid.NewString(),
		Title: title,
		Date:  Now(),
		Notes: body,
	}
}

// Now returns the current time in UTC without the monotonic reading, so it
// survives an encode/decode round trip unchanged.
func Now() time.Time {
	return time.Now().UTC().Round(0)
}

// Equal reports whether both notes share the same identity.
func (n Note) Equal(other Note) bool {
	return n.ID == other.ID
}

// Toggled returns a copy of the note with IsComplete flipped.
func (n Note) Toggled() Note {
	n.IsComplete = !n.IsComplete
	return n
}

// WithContent returns a copy of the note carrying the given title and body.
func (n Note) WithContent(title, body string) Note {
	n.Title = title
	n.Notes = body
	return n
}

var validate = validator.New()

// Validate checks the structural rules every stored note must satisfy.
func Validate(n Note) error {
	if err := validate.Struct(n); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidNote, err)
	}
	return nil
}

// IndexOf returns the position of the note with the given ID, or -1.
func IndexOf(notes []Note, id string) int {
	for i, n := range notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}
