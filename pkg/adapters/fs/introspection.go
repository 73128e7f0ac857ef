package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Directory      string     `json:"directory"`
	IndexSize      int        `json:"index_size"`
	Ignore         []string   `json:"ignore"`
	Versioning     bool       `json:"versioning"`
	ActiveWatchers int        `json:"active_watchers"`
	LastScan       *time.Time `json:"last_scan,omitempty"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var lastScan *time.Time
	if r.lastScan != nil {
		t := *r.lastScan
		lastScan = &t
	}

	return RepositoryState{
		Directory:      r.dir,
		IndexSize:      len(r.index),
		Ignore:         append([]string(nil), r.config.Ignore...),
		Versioning:     r.config.Versioning,
		ActiveWatchers: r.activeWatches,
		LastScan:       lastScan,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "repository"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)
