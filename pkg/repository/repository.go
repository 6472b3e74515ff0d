// Package repository keeps the note list in memory in front of a persistence
// gateway.
//
// The whole list is the unit of persistence: every mutation encodes the full
// staged list, hands it to the gateway, and only then replaces the cached list.
// A failed encode or write leaves the cache exactly as it was.
package repository

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/aretw0/plans/pkg/core"
)

// Config wires the repository to its collaborators.
type Config struct {
	Gateway core.Gateway
	Codec   core.Codec
	Logger  *slog.Logger
}

// Repository implements core.NoteRepository over a Gateway and a Codec.
type Repository struct {
	gateway core.Gateway
	codec   core.Codec
	logger  *slog.Logger

	mu     sync.Mutex
	notes  []core.Note
	loaded bool

	loads   int
	commits int
}

// NewRepository creates a repository. The cache starts unloaded; nothing is
// read until the first fetch or mutation.
func NewRepository(config Config) *Repository {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Repository{
		gateway: config.Gateway,
		codec:   config.Codec,
		logger:  logger,
	}
}

// FetchNotes returns the cached list, loading it from the gateway on first use.
// The result is a copy owned by the caller.
func (r *Repository) FetchNotes(ctx context.Context) ([]core.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return slices.Clone(r.notes), nil
}

// SaveNote appends n and persists the result.
func (r *Repository) SaveNote(ctx context.Context, n core.Note) error {
	if err := core.Validate(n); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoaded(ctx); err != nil {
		return err
	}
	if core.IndexOf(r.notes, n.ID) >= 0 {
		return fmt.Errorf("%w: %s", core.ErrDuplicateID, n.ID)
	}

	staged := make([]core.Note, 0, len(r.notes)+1)
	staged = append(staged, r.notes...)
	staged = append(staged, n)
	return r.commit(ctx, "save", staged)
}

// RemoveNote deletes the note with n's ID and persists the result.
func (r *Repository) RemoveNote(ctx context.Context, n core.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoaded(ctx); err != nil {
		return err
	}
	i := core.IndexOf(r.notes, n.ID)
	if i < 0 {
		return fmt.Errorf("%w: %s", core.ErrNotFound, n.ID)
	}

	staged := slices.Delete(slices.Clone(r.notes), i, i+1)
	return r.commit(ctx, "remove", staged)
}

// UpdateNote replaces the note with n's ID in place and persists the result.
func (r *Repository) UpdateNote(ctx context.Context, n core.Note) error {
	if err := core.Validate(n); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoaded(ctx); err != nil {
		return err
	}
	i := core.IndexOf(r.notes, n.ID)
	if i < 0 {
		return fmt.Errorf("%w: %s", core.ErrNotFound, n.ID)
	}

	staged := slices.Clone(r.notes)
	staged[i] = n
	return r.commit(ctx, "update", staged)
}

// Invalidate marks the cache stale. The next call re-reads the gateway; if
// that read fails the previous contents are still served afterwards.
func (r *Repository) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaded = false
}

// ensureLoaded must be called with r.mu held.
func (r *Repository) ensureLoaded(ctx context.Context) error {
	if r.loaded {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := r.gateway.Fetch(ctx)
	if err != nil {
		return err
	}
	notes, err := r.codec.Decode(data)
	if err != nil {
		return err
	}

	r.notes = notes
	r.loaded = true
	r.loads++
	r.logger.Debug("notes loaded", "count", len(notes), "bytes", len(data))
	return nil
}

// commit must be called with r.mu held.
func (r *Repository) commit(ctx context.Context, op string, staged []core.Note) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := r.codec.Encode(staged)
	if err != nil {
		r.logger.Warn("encode failed, cache unchanged", "op", op, "error", err)
		return err
	}
	if err := r.gateway.Write(ctx, data); err != nil {
		r.logger.Warn("write failed, cache unchanged", "op", op, "error", err)
		return err
	}

	r.notes = staged
	r.commits++
	r.logger.Debug("notes committed", "op", op, "count", len(staged))
	return nil
}

var _ core.NoteRepository = (*Repository)(nil)
