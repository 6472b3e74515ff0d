package fs_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/plans/pkg/adapters/fs"
	"github.com/aretw0/plans/pkg/core"
)

// setupGateway creates a gateway rooted in a fresh temp directory.
// It returns the gateway and the data directory.
func setupGateway(t *testing.T, opts ...func(*fs.Config)) (*fs.Gateway, string) {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "data")
	cfg := fs.Config{
		Dir:      dir,
		Filename: "todo.json",
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return fs.NewGateway(cfg), dir
}

func TestInitialize(t *testing.T) {
	t.Run("Creates Directory and Empty File", func(t *testing.T) {
		g, dir := setupGateway(t)

		if err := g.Initialize(context.Background()); err != nil {
			t.Fatalf("Initialize failed: %v", err)
		}

		info, err := os.Stat(filepath.Join(dir, "todo.json"))
		if err != nil {
			t.Fatalf("expected data file to exist: %v", err)
		}
		if info.Size() != 0 {
			t.Errorf("expected empty data file, got %d bytes", info.Size())
		}
	})

	t.Run("Keeps Existing File", func(t *testing.T) {
		g, dir := setupGateway(t)
		os.MkdirAll(dir, 0755)
		os.WriteFile(filepath.Join(dir, "todo.json"), []byte("[]"), 0644)

		if err := g.Initialize(context.Background()); err != nil {
			t.Fatalf("Initialize failed: %v", err)
		}

		got, _ := os.ReadFile(filepath.Join(dir, "todo.json"))
		if string(got) != "[]" {
			t.Errorf("existing contents were clobbered: %q", got)
		}
	})

	t.Run("Fails if MustExist and Missing", func(t *testing.T) {
		g, _ := setupGateway(t, func(c *fs.Config) { c.MustExist = true })

		err := g.Initialize(context.Background())
		if !errors.Is(err, core.ErrReadFailure) {
			t.Errorf("expected ErrReadFailure, got %v", err)
		}
	})
}

func TestFetch(t *testing.T) {
	t.Run("Fresh Store Is Empty", func(t *testing.T) {
		g, dir := setupGateway(t)

		data, err := g.Fetch(context.Background())
		if err != nil {
			t.Fatalf("Fetch failed: %v", err)
		}
		if len(data) != 0 {
			t.Errorf("expected zero bytes, got %q", data)
		}
		if _, err := os.Stat(filepath.Join(dir, "todo.json")); err != nil {
			t.Errorf("expected first use to create the file: %v", err)
		}
	})

	t.Run("Unreadable Path", func(t *testing.T) {
		g, dir := setupGateway(t)
		// A directory where the file should be cannot be read as a file.
		os.MkdirAll(filepath.Join(dir, "todo.json"), 0755)

		_, err := g.Fetch(context.Background())
		if !errors.Is(err, core.ErrReadFailure) {
			t.Errorf("expected ErrReadFailure, got %v", err)
		}
	})

	t.Run("Cancelled Context", func(t *testing.T) {
		g, _ := setupGateway(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := g.Fetch(ctx); !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}

func TestWrite(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		g, _ := setupGateway(t)
		ctx := context.Background()

		for _, payload := range []string{`[{"title":"first"}]`, `[]`} {
			if err := g.Write(ctx, []byte(payload)); err != nil {
				t.Fatalf("Write failed: %v", err)
			}
			got, err := g.Fetch(ctx)
			if err != nil {
				t.Fatalf("Fetch failed: %v", err)
			}
			if string(got) != payload {
				t.Errorf("expected %q, got %q", payload, got)
			}
		}
	})

	t.Run("Fresh Instance Sees Previous Writes", func(t *testing.T) {
		g, dir := setupGateway(t)
		if err := g.Write(context.Background(), []byte("persisted")); err != nil {
			t.Fatal(err)
		}

		reopened := fs.NewGateway(fs.Config{Dir: dir, Filename: "todo.json"})
		got, err := reopened.Fetch(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "persisted" {
			t.Errorf("expected persisted data, got %q", got)
		}
	})

	t.Run("Unwritable Path", func(t *testing.T) {
		g, dir := setupGateway(t)
		os.MkdirAll(filepath.Join(dir, "todo.json", "child"), 0755)

		err := g.Write(context.Background(), []byte("[]"))
		if !errors.Is(err, core.ErrWriteFailure) {
			t.Errorf("expected ErrWriteFailure, got %v", err)
		}
	})
}

func TestReadOnly(t *testing.T) {
	g, dir := setupGateway(t, func(c *fs.Config) { c.ReadOnly = true })
	os.MkdirAll(dir, 0755)
	ctx := context.Background()

	data, err := g.Fetch(ctx)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("expected empty data, got %q", data)
	}

	if err := g.Write(ctx, []byte("[]")); !errors.Is(err, core.ErrReadOnly) {
		t.Errorf("expected ErrReadOnly, got %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "todo.json")); !os.IsNotExist(err) {
		t.Error("read-only gateway must not create the data file")
	}
}

func TestState(t *testing.T) {
	g, _ := setupGateway(t)
	if err := g.Write(context.Background(), []byte("[]")); err != nil {
		t.Fatal(err)
	}

	state, ok := g.State().(fs.GatewayState)
	if !ok {
		t.Fatalf("unexpected state type %T", g.State())
	}
	if state.Writes != 1 || state.LastWrite == nil || !state.Initialized {
		t.Errorf("unexpected state %+v", state)
	}
	if g.ComponentType() != "gateway" {
		t.Errorf("unexpected component type %q", g.ComponentType())
	}
}
