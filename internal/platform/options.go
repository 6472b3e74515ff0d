package platform

import (
	"log/slog"

	"github.com/aretw0/plans/pkg/core"
)

// Adapter names accepted by WithAdapter.
const (
	AdapterFS     = "fs"
	AdapterSQLite = "sqlite"
)

// options holds the internal configuration for a notes store.
type options struct {
	repository core.NoteRepository
	gateway    core.Gateway
	logger     *slog.Logger
	adapter    string
	filename   string
	format     string
	readOnly   bool
	mustExist  bool
	devSafety  bool
	onWatchErr func(error)
}

// Option defines a functional option for configuring the store.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		adapter:   AdapterFS,
		devSafety: true,
	}
}

// WithFilename overrides the data file name. Its extension selects the
// format unless WithFormat is also given.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

// WithFormat selects the codec by extension ("json", ".yaml", "csv", ...).
func WithFormat(ext string) Option {
	return func(o *options) {
		o.format = ext
	}
}

// WithAdapter selects the persistence adapter by name. Defaults to "fs".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithLogger sets the logger handed to every component.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithReadOnly opens the store without creating or writing anything.
// Mutations fail with core.ErrReadOnly. The dev sandbox is bypassed so the
// real data can be inspected.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithMustExist requires the data directory to exist already.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithDevSafety controls re-rooting the data directory into the temp dir when
// running under `go run` or `go test`. Enabled by default.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.devSafety = enabled
	}
}

// WithGateway injects a persistence gateway, skipping the adapter lookup.
func WithGateway(g core.Gateway) Option {
	return func(o *options) {
		o.gateway = g
	}
}

// WithRepository injects a complete repository (e.g. a mock). Gateway and
// codec selection are skipped entirely.
func WithRepository(repo core.NoteRepository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithWatchErrorHandler receives runtime watcher failures, which are
// otherwise only logged.
func WithWatchErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.onWatchErr = fn
	}
}
