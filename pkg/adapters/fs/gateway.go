// Package fs stores the encoded note list in a single file on the local filesystem.
package fs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/plans/pkg/core"
)

// DefaultFilename is the base name of the data file, without extension.
const DefaultFilename = "todo"

const filePerm = 0644

// Config holds the configuration for the filesystem gateway.
type Config struct {
	Dir          string       // Directory holding the data file.
	Filename     string       // Data file name including extension (e.g. "todo.json").
	MustExist    bool         // Fail instead of creating Dir when it is missing.
	ReadOnly     bool         // Reject writes and never create files.
	Logger       *slog.Logger // Optional.
	ErrorHandler func(error)  // Receives runtime watcher errors. Optional.
}

// Gateway implements core.Gateway on top of one file.
type Gateway struct {
	Path   string
	config Config

	mu            sync.RWMutex
	initialized   bool
	writes        int
	lastWrite     *time.Time
	watcherActive bool
}

// NewGateway creates a new filesystem-backed gateway.
func NewGateway(config Config) *Gateway {
	if config.Filename == "" {
		config.Filename = DefaultFilename + ".json"
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	return &Gateway{
		Path:   filepath.Join(config.Dir, config.Filename),
		config: config,
	}
}

// Initialize prepares the directory and creates an empty data file when none exists.
// It is safe to call more than once; Fetch calls it lazily on first use.
func (g *Gateway) Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	return g.initializeLocked()
}

func (g *Gateway) initializeLocked() error {
	if g.initialized {
		return nil
	}

	switch {
	case g.config.MustExist:
		info, err := os.Stat(g.config.Dir)
		if err != nil {
			return fmt.Errorf("%w: data directory %s: %w", core.ErrReadFailure, g.config.Dir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%w: data path is not a directory: %s", core.ErrReadFailure, g.config.Dir)
		}
	case g.config.ReadOnly:
		// Nothing to create; a missing file reads as empty.
	default:
		if err := os.MkdirAll(g.config.Dir, 0755); err != nil {
			return fmt.Errorf("%w: create data directory: %w", core.ErrWriteFailure, err)
		}
	}

	if !g.config.ReadOnly {
		f, err := os.OpenFile(g.Path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, filePerm)
		switch {
		case err == nil:
			_ = f.Close()
			g.config.Logger.Debug("created empty data file", "path", g.Path)
		case errors.Is(err, os.ErrExist):
		default:
			return fmt.Errorf("%w: create data file: %w", core.ErrWriteFailure, err)
		}
	}

	g.initialized = true
	return nil
}

// Fetch reads the whole data file. A missing file in read-only mode reads as empty.
func (g *Gateway) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.mu.Lock()
	if err := g.initializeLocked(); err != nil {
		g.mu.Unlock()
		return nil, err
	}
	g.mu.Unlock()

	data, err := os.ReadFile(g.Path)
	if err != nil {
		if g.config.ReadOnly && errors.Is(err, os.ErrNotExist) {
			return []byte{}, nil
		}
		return nil, fmt.Errorf("%w: %w", core.ErrReadFailure, err)
	}

	g.config.Logger.Debug("fetched data file", "path", g.Path, "bytes", len(data))
	return data, nil
}

// Write atomically replaces the data file with data.
func (g *Gateway) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if g.config.ReadOnly {
		return core.ErrReadOnly
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.initializeLocked(); err != nil {
		return err
	}

	if err := writeFileAtomic(g.Path, data, filePerm); err != nil {
		return fmt.Errorf("%w: %w", core.ErrWriteFailure, err)
	}

	now := time.Now()
	g.writes++
	g.lastWrite = &now
	g.config.Logger.Debug("wrote data file", "path", g.Path, "bytes", len(data))
	return nil
}

var (
	_ core.Gateway     = (*Gateway)(nil)
	_ core.Initializer = (*Gateway)(nil)
	_ core.Watchable   = (*Gateway)(nil)
)
