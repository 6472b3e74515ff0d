package platform

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/aretw0/introspection"

	"github.com/aretw0/plans/pkg/adapters/fs"
	"github.com/aretw0/plans/pkg/adapters/sqlite"
	"github.com/aretw0/plans/pkg/codec"
	"github.com/aretw0/plans/pkg/core"
	"github.com/aretw0/plans/pkg/repository"
)

// DatabaseFile is the SQLite file created inside the data directory.
const DatabaseFile = "plans.db"

// Store is a wired notes stack: gateway, codec and repository.
type Store struct {
	Dir        string
	Filename   string
	Gateway    core.Gateway
	Codec      core.Codec
	Repository core.NoteRepository
	Logger     *slog.Logger

	closers []func() error
}

// New builds the store rooted at dir. An empty dir means DefaultDir().
//
//	store, err := platform.New(ctx, "./notes", platform.WithFormat("yaml"))
func New(ctx context.Context, dir string, opts ...Option) (*Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	if dir == "" {
		dir = DefaultDir()
	}
	// Read-only never writes, so it may look at the real data.
	if o.devSafety && !o.readOnly && IsDevRun() {
		resolved := ResolveDataDir(dir, true)
		if resolved != dir {
			o.logger.Warn("dev run detected, using sandbox directory", "requested", dir, "dir", resolved)
		}
		dir = resolved
	}

	filename, ext := resolveFilename(o.filename, o.format)
	s := &Store{Dir: dir, Filename: filename, Logger: o.logger}

	if o.repository != nil {
		s.Repository = o.repository
		return s, nil
	}

	c, err := codec.ForExtension(ext)
	if err != nil {
		return nil, err
	}
	s.Codec = c

	switch {
	case o.gateway != nil:
		s.Gateway = o.gateway
	case o.adapter == AdapterFS || o.adapter == "":
		s.Gateway = fs.NewGateway(fs.Config{
			Dir:          dir,
			Filename:     filename,
			MustExist:    o.mustExist,
			ReadOnly:     o.readOnly,
			Logger:       o.logger.With("component", "gateway"),
			ErrorHandler: o.onWatchErr,
		})
	case o.adapter == AdapterSQLite:
		g, err := sqlite.Open(ctx, sqlite.Config{
			Path:     filepath.Join(dir, DatabaseFile),
			Name:     filename,
			ReadOnly: o.readOnly,
			Logger:   o.logger.With("component", "gateway"),
		})
		if err != nil {
			return nil, err
		}
		s.Gateway = g
		s.closers = append(s.closers, g.Close)
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}

	s.Repository = repository.NewRepository(repository.Config{
		Gateway: s.Gateway,
		Codec:   s.Codec,
		Logger:  o.logger.With("component", "repository"),
	})
	return s, nil
}

// Watch reports external changes to the store, when the gateway supports it.
func (s *Store) Watch(ctx context.Context) (<-chan core.Event, error) {
	w, ok := s.Gateway.(core.Watchable)
	if !ok {
		return nil, fmt.Errorf("adapter %T does not support watching", s.Gateway)
	}
	return w.Watch(ctx)
}

// Invalidate drops the repository cache so the next read hits the gateway.
func (s *Store) Invalidate() {
	if inv, ok := s.Repository.(interface{ Invalidate() }); ok {
		inv.Invalidate()
	}
}

// Components lists the store's introspectable parts.
func (s *Store) Components() []introspection.Introspectable {
	var out []introspection.Introspectable
	for _, c := range []any{s.Gateway, s.Repository} {
		if i, ok := c.(introspection.Introspectable); ok {
			out = append(out, i)
		}
	}
	return out
}

// Close releases adapter resources.
func (s *Store) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	s.closers = nil
	return first
}

// resolveFilename derives the data file name and codec extension.
// The file is "todo" plus the format extension unless a name is given.
func resolveFilename(name, format string) (filename, ext string) {
	if name == "" {
		ext = codec.NormalizeExtension(format)
		return fs.DefaultFilename + ext, ext
	}
	if format != "" {
		return name, codec.NormalizeExtension(format)
	}
	if e := filepath.Ext(name); e != "" {
		return name, strings.ToLower(e)
	}
	return name + codec.DefaultExtension, codec.DefaultExtension
}
