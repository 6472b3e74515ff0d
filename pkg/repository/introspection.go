package repository

import "github.com/aretw0/introspection"

// RepositoryState is a snapshot of the cache.
type RepositoryState struct {
	Loaded  bool `json:"loaded"`
	Count   int  `json:"count"`
	Loads   int  `json:"loads"`
	Commits int  `json:"commits"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return RepositoryState{
		Loaded:  r.loaded,
		Count:   len(r.notes),
		Loads:   r.loads,
		Commits: r.commits,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "repository"
}

var (
	_ introspection.Introspectable = (*Repository)(nil)
	_ introspection.Component      = (*Repository)(nil)
)
