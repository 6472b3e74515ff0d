package platform

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the environment-provided configuration. Command-line flags
// override it.
type Config struct {
	Dir      string
	Filename string
	Format   string
	Adapter  string
	ReadOnly bool
	LogLevel slog.Level
}

// LoadConfig reads PLANS_* variables, loading .env from the working
// directory first when present. Variables already set win over .env.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	level, err := ParseLevel(getEnv("PLANS_LOG_LEVEL", "warn"))
	if err != nil {
		return nil, fmt.Errorf("invalid PLANS_LOG_LEVEL: %w", err)
	}

	return &Config{
		Dir:      getEnv("PLANS_DIR", ""),
		Filename: getEnv("PLANS_FILE", ""),
		Format:   getEnv("PLANS_FORMAT", ""),
		Adapter:  getEnv("PLANS_ADAPTER", AdapterFS),
		ReadOnly: getEnvAsBool("PLANS_READ_ONLY", false),
		LogLevel: level,
	}, nil
}

// Options converts the configuration into store options.
func (c *Config) Options() []Option {
	opts := []Option{
		WithAdapter(c.Adapter),
		WithReadOnly(c.ReadOnly),
	}
	if c.Filename != "" {
		opts = append(opts, WithFilename(c.Filename))
	}
	if c.Format != "" {
		opts = append(opts, WithFormat(c.Format))
	}
	return opts
}

// ParseLevel accepts debug, info, warn or error (case-insensitive).
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(strings.TrimSpace(s)))
	return level, err
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}
