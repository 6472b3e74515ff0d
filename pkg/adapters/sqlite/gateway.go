// Package sqlite stores the encoded note list as a single row of a SQLite database.
//
// It is an alternative to the flat-file gateway for hosts that prefer one
// database file with transactional writes over a rename-based swap.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/introspection"
	_ "modernc.org/sqlite"

	"github.com/aretw0/plans/pkg/core"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

const schema = `
CREATE TABLE IF NOT EXISTS blobs (
    name       TEXT PRIMARY KEY,
    data       BLOB,
    updated_at INTEGER NOT NULL
);`

// Config holds the configuration for the SQLite gateway.
type Config struct {
	Path     string // Database file.
	Name     string // Row key for the blob, e.g. "todo.json".
	ReadOnly bool
	Logger   *slog.Logger
}

// Gateway implements core.Gateway on one row of the blobs table.
type Gateway struct {
	db     *sql.DB
	config Config

	mu        sync.RWMutex
	writes    int
	lastWrite *time.Time
}

// Open opens (creating if needed) the database and its schema.
func Open(ctx context.Context, config Config) (*Gateway, error) {
	if config.Name == "" {
		config.Name = "todo"
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}

	if !config.ReadOnly {
		if err := os.MkdirAll(filepath.Dir(config.Path), 0755); err != nil {
			return nil, fmt.Errorf("%w: create database directory: %w", core.ErrWriteFailure, err)
		}
	}

	db, err := sql.Open(DriverName, config.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: open database: %w", core.ErrReadFailure, err)
	}
	// One connection serializes access the same way the file gateway does.
	db.SetMaxOpenConns(1)

	g := &Gateway{db: db, config: config}
	if err := g.Initialize(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return g, nil
}

// Initialize creates the schema and the empty row for this blob.
func (g *Gateway) Initialize(ctx context.Context) error {
	if g.config.ReadOnly {
		return nil
	}
	if _, err := g.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%w: create schema: %w", core.ErrWriteFailure, err)
	}
	_, err := g.db.ExecContext(ctx,
		`INSERT INTO blobs (name, data, updated_at) VALUES (?, ?, ?) ON CONFLICT(name) DO NOTHING`,
		g.config.Name, []byte{}, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("%w: create row: %w", core.ErrWriteFailure, err)
	}
	return nil
}

// Fetch returns the stored blob; a missing row reads as empty.
func (g *Gateway) Fetch(ctx context.Context) ([]byte, error) {
	var data []byte
	err := g.db.QueryRowContext(ctx, `SELECT data FROM blobs WHERE name = ?`, g.config.Name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return []byte{}, nil
	}
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %w", core.ErrReadFailure, err)
	}
	if data == nil {
		data = []byte{}
	}

	g.config.Logger.Debug("fetched blob", "name", g.config.Name, "bytes", len(data))
	return data, nil
}

// Write replaces the stored blob in a single upsert.
func (g *Gateway) Write(ctx context.Context, data []byte) error {
	if g.config.ReadOnly {
		return core.ErrReadOnly
	}
	if data == nil {
		data = []byte{}
	}

	now := time.Now()
	_, err := g.db.ExecContext(ctx,
		`INSERT INTO blobs (name, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		g.config.Name, data, now.Unix())
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %w", core.ErrWriteFailure, err)
	}

	g.mu.Lock()
	g.writes++
	g.lastWrite = &now
	g.mu.Unlock()

	g.config.Logger.Debug("wrote blob", "name", g.config.Name, "bytes", len(data))
	return nil
}

// Close releases the database handle.
func (g *Gateway) Close() error {
	return g.db.Close()
}

// GatewayState exposes internal state for observability.
type GatewayState struct {
	Path      string     `json:"path"`
	Name      string     `json:"name"`
	ReadOnly  bool       `json:"read_only"`
	Writes    int        `json:"writes"`
	LastWrite *time.Time `json:"last_write,omitempty"`
}

// State implements introspection.Introspectable.
func (g *Gateway) State() any {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return GatewayState{
		Path:      g.config.Path,
		Name:      g.config.Name,
		ReadOnly:  g.config.ReadOnly,
		Writes:    g.writes,
		LastWrite: g.lastWrite,
	}
}

// ComponentType implements introspection.Component.
func (g *Gateway) ComponentType() string {
	return "gateway"
}

var (
	_ core.Gateway                 = (*Gateway)(nil)
	_ core.Initializer             = (*Gateway)(nil)
	_ introspection.Introspectable = (*Gateway)(nil)
	_ introspection.Component      = (*Gateway)(nil)
)
