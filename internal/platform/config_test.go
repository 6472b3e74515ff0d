package platform_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/plans/internal/platform"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		for _, key := range []string{"PLANS_DIR", "PLANS_FILE", "PLANS_FORMAT", "PLANS_ADAPTER", "PLANS_READ_ONLY", "PLANS_LOG_LEVEL"} {
			t.Setenv(key, "")
		}

		cfg, err := platform.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, &platform.Config{Adapter: "fs", LogLevel: slog.LevelWarn}, cfg)
	})

	t.Run("From Environment", func(t *testing.T) {
		t.Setenv("PLANS_DIR", "/srv/notes")
		t.Setenv("PLANS_FILE", "mine.yaml")
		t.Setenv("PLANS_FORMAT", "yaml")
		t.Setenv("PLANS_ADAPTER", "sqlite")
		t.Setenv("PLANS_READ_ONLY", "true")
		t.Setenv("PLANS_LOG_LEVEL", "DEBUG")

		cfg, err := platform.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, &platform.Config{
			Dir:      "/srv/notes",
			Filename: "mine.yaml",
			Format:   "yaml",
			Adapter:  "sqlite",
			ReadOnly: true,
			LogLevel: slog.LevelDebug,
		}, cfg)
		assert.Len(t, cfg.Options(), 4)
	})

	t.Run("Bad Level", func(t *testing.T) {
		t.Setenv("PLANS_LOG_LEVEL", "loud")
		_, err := platform.LoadConfig()
		assert.Error(t, err)
	})

	t.Run("Bad Bool Falls Back", func(t *testing.T) {
		t.Setenv("PLANS_LOG_LEVEL", "")
		t.Setenv("PLANS_READ_ONLY", "maybe")
		cfg, err := platform.LoadConfig()
		require.NoError(t, err)
		assert.False(t, cfg.ReadOnly)
	})
}
