package core

import "context"

// Gateway moves one opaque blob to and from a fixed location.
// Adhering to this interface keeps the repository independent of the
// underlying storage (a flat file, a SQLite row, ...).
type Gateway interface {
	// Fetch returns the full stored blob. An empty store yields zero bytes, not an error.
	Fetch(ctx context.Context) ([]byte, error)

	// Write replaces the stored blob as a whole.
	Write(ctx context.Context, data []byte) error
}

// Initializer is implemented by gateways that prepare their storage
// (create directories, create the empty file, create tables).
type Initializer interface {
	Initialize(ctx context.Context) error
}

// Watchable is implemented by gateways that can report external changes.
type Watchable interface {
	Watch(ctx context.Context) (<-chan Event, error)
}

// Codec converts an ordered sequence of notes to and from the stored blob.
// Implementations are pure and perform no I/O.
type Codec interface {
	Encode(notes []Note) ([]byte, error)
	Decode(data []byte) ([]Note, error)
}

// NoteRepository defines the contract for storing and retrieving notes.
// Every mutation rewrites the whole collection.
type NoteRepository interface {
	// FetchNotes returns all notes in insertion order.
	FetchNotes(ctx context.Context) ([]Note, error)

	// SaveNote appends a new note.
	SaveNote(ctx context.Context, n Note) error

	// RemoveNote deletes the note sharing n's ID.
	RemoveNote(ctx context.Context, n Note) error

	// UpdateNote replaces the note sharing n's ID in place.
	UpdateNote(ctx context.Context, n Note) error
}
