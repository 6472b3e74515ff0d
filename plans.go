package plans

import (
	"context"
	"log/slog"

	"github.com/aretw0/plans/internal/platform"
	"github.com/aretw0/plans/pkg/core"
	"github.com/aretw0/plans/pkg/presenter"
)

// --- Types ---

// Note is a single note.
type Note = core.Note

// Store is a wired gateway, codec and repository.
type Store = platform.Store

// View receives presenter notifications.
type View = presenter.View

// Presenter keeps the sorted display list for a View.
type Presenter = presenter.Presenter

// Config is the environment-provided configuration.
type Config = platform.Config

// --- Configuration ---

// Option configures Open.
type Option = platform.Option

// WithFilename overrides the data file name.
func WithFilename(name string) Option {
	return platform.WithFilename(name)
}

// WithFormat selects the encoding by extension ("json", "yaml", "csv").
func WithFormat(ext string) Option {
	return platform.WithFormat(ext)
}

// WithAdapter selects the persistence adapter ("fs" or "sqlite").
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithLogger sets the logger for every component.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithReadOnly opens the store without writing anything.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithMustExist requires the data directory to exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithDevSafety controls the temp-dir sandbox used under `go run`.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// WithGateway injects a custom persistence gateway.
func WithGateway(g core.Gateway) Option {
	return platform.WithGateway(g)
}

// WithRepository injects a custom repository.
func WithRepository(repo core.NoteRepository) Option {
	return platform.WithRepository(repo)
}

// WithWatchErrorHandler receives runtime watcher failures.
func WithWatchErrorHandler(fn func(error)) Option {
	return platform.WithWatchErrorHandler(fn)
}

// LoadConfig reads PLANS_* environment variables (and .env).
func LoadConfig() (*Config, error) {
	return platform.LoadConfig()
}

// GlyphFor names the icon for a completion state ("done" or "pending").
func GlyphFor(isComplete bool) presenter.Glyph {
	return presenter.GlyphFor(isComplete)
}

// --- Factory ---

// Open builds a store rooted at dir. An empty dir uses the user config directory.
func Open(ctx context.Context, dir string, opts ...Option) (*Store, error) {
	return platform.New(ctx, dir, opts...)
}

// NewPresenter creates a presenter over the store's repository.
func NewPresenter(store *Store, view View) *Presenter {
	return presenter.New(store.Repository, view,
		presenter.WithLogger(store.Logger.With("component", "presenter")))
}
