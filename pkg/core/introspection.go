package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Directory      string `json:"directory"`
	RepositoryType string `json:"repository_type"`
	PinnedCount    int    `json:"pinned_count"`
	Persistent     bool   `json:"persistent_settings"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	repoType := "unknown"
	if s.repo != nil {
		repoType = "repository"
		if comp, ok := s.repo.(introspection.Component); ok {
			repoType = comp.ComponentType()
		}
	}

	dir := ""
	if s.repo != nil {
		dir = s.repo.Directory()
	}

	return ServiceState{
		Directory:      dir,
		RepositoryType: repoType,
		PinnedCount:    len(s.prefs.PinnedNoteIDs),
		Persistent:     s.settings != nil,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
