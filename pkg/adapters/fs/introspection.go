package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// GatewayState exposes internal state for observability.
type GatewayState struct {
	Path          string     `json:"path"`
	ReadOnly      bool       `json:"read_only"`
	MustExist     bool       `json:"must_exist"`
	Initialized   bool       `json:"initialized"`
	Writes        int        `json:"writes"`
	LastWrite     *time.Time `json:"last_write,omitempty"`
	WatcherActive bool       `json:"watcher_active"`
}

// State implements introspection.Introspectable.
func (g *Gateway) State() any {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return GatewayState{
		Path:          g.Path,
		ReadOnly:      g.config.ReadOnly,
		MustExist:     g.config.MustExist,
		Initialized:   g.initialized,
		Writes:        g.writes,
		LastWrite:     g.lastWrite,
		WatcherActive: g.watcherActive,
	}
}

// ComponentType implements introspection.Component.
func (g *Gateway) ComponentType() string {
	return "gateway"
}

var _ introspection.Introspectable = (*Gateway)(nil)
var _ introspection.Component = (*Gateway)(nil)

func (g *Gateway) setWatcherActive(active bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.watcherActive = active
}
