package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"
)

// Service handles the business logic for notes on top of a Repository.
// It owns the user settings (active directory, pinned notes).
type Service struct {
	repo     Repository
	settings SettingsStore
	logger   *slog.Logger

	mu    sync.RWMutex
	prefs Settings
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger for failures the Service absorbs. Defaults to a
// discarding logger.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService creates a new Service. settings may be nil, in which case
// preferences live only in memory.
func NewService(repo Repository, settings SettingsStore, opts ...ServiceOption) *Service {
	s := &Service{
		repo:     repo,
		settings: settings,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadSettings reads the persisted preferences and applies the stored notes
// directory to the repository.
func (s *Service) LoadSettings() error {
	if s.settings == nil {
		return nil
	}
	prefs, err := s.settings.Load()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.prefs = prefs
	s.mu.Unlock()

	if prefs.NotesDirectory != "" {
		s.repo.SetDirectory(prefs.NotesDirectory)
	}
	return nil
}

// SetDirectory changes the active notes directory and persists the choice.
func (s *Service) SetDirectory(dir string) error {
	if dir == "" {
		return ErrNoDirectory
	}
	if err := s.updatePrefs(func(p *Settings) { p.NotesDirectory = dir }); err != nil {
		return err
	}
	s.repo.SetDirectory(dir)
	return nil
}

// Directory returns the active notes directory.
func (s *Service) Directory() string {
	return s.repo.Directory()
}

// ListNotes scans dir, or the active directory when dir is empty.
func (s *Service) ListNotes(ctx context.Context, dir string) ([]Note, error) {
	dir, err := s.resolveDir(dir)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, dir)
}

// CreateNote creates an empty note in dir, or in the active directory when dir is empty.
// Once the file is written the note is returned without error; failing to record
// it as the last active note is only logged.
func (s *Service) CreateNote(ctx context.Context, dir, title string) (Note, error) {
	dir, err := s.resolveDir(dir)
	if err != nil {
		return Note{}, err
	}
	n, err := s.repo.Create(ctx, dir, title)
	if err != nil {
		return Note{}, err
	}
	if err := s.updatePrefs(func(p *Settings) { p.LastActiveNoteID = n.ID }); err != nil {
		s.logger.Warn("created note but could not save last active note", "id", n.ID, "error", err)
	}
	return n, nil
}

// SaveNote replaces the body of a note.
func (s *Service) SaveNote(ctx context.Context, id, content string) (Note, error) {
	if id == "" {
		return Note{}, ErrEmptyID
	}
	return s.repo.Save(ctx, id, content)
}

// GetNote retrieves an indexed note.
func (s *Service) GetNote(ctx context.Context, id string) (Note, error) {
	if id == "" {
		return Note{}, ErrEmptyID
	}
	return s.repo.Get(ctx, id)
}

// DeleteNote removes a note and forgets any preference that referenced it.
func (s *Service) DeleteNote(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	return s.updatePrefs(func(p *Settings) {
		p.PinnedNoteIDs = slices.DeleteFunc(p.PinnedNoteIDs, func(v string) bool { return v == id })
		if p.LastActiveNoteID == id {
			p.LastActiveNoteID = ""
		}
	})
}

// SetColor changes the display color of a note.
func (s *Service) SetColor(ctx context.Context, id, color string) (Note, error) {
	a, err := s.annotator(id)
	if err != nil {
		return Note{}, err
	}
	return a.SetColor(ctx, id, color)
}

// SetTags replaces the tags of a note.
func (s *Service) SetTags(ctx context.Context, id string, tags []string) (Note, error) {
	a, err := s.annotator(id)
	if err != nil {
		return Note{}, err
	}
	return a.SetTags(ctx, id, tags)
}

// Search returns the notes whose title, content or tags contain query
// (case-insensitive). An empty query returns every note.
func (s *Service) Search(ctx context.Context, query string) ([]Note, error) {
	notes, err := s.known(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return notes, nil
	}

	var out []Note
	for _, n := range notes {
		if matches(n, q) {
			out = append(out, n)
		}
	}
	return out, nil
}

// SearchFuzzy ranks notes by how well their title fuzzy-matches query, best first.
func (s *Service) SearchFuzzy(ctx context.Context, query string) ([]Note, error) {
	notes, err := s.known(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(query) == "" {
		return notes, nil
	}

	titles := make([]string, len(notes))
	for i, n := range notes {
		titles[i] = n.Title
	}

	results := fuzzy.Find(query, titles)
	out := make([]Note, 0, len(results))
	for _, r := range results {
		out = append(out, notes[r.Index])
	}
	return out, nil
}

// Pin marks a note as pinned. Pinning an already pinned note is a no-op.
func (s *Service) Pin(ctx context.Context, id string) error {
	if _, err := s.GetNote(ctx, id); err != nil {
		return err
	}
	return s.updatePrefs(func(p *Settings) {
		if !slices.Contains(p.PinnedNoteIDs, id) {
			p.PinnedNoteIDs = append(p.PinnedNoteIDs, id)
		}
	})
}

// Unpin removes a note from the pinned set.
func (s *Service) Unpin(id string) error {
	return s.updatePrefs(func(p *Settings) {
		p.PinnedNoteIDs = slices.DeleteFunc(p.PinnedNoteIDs, func(v string) bool { return v == id })
	})
}

// Pinned returns the pinned note ids in pin order.
func (s *Service) Pinned() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.prefs.PinnedNoteIDs)
}

// Settings returns a copy of the current preferences.
func (s *Service) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p := s.prefs
	p.PinnedNoteIDs = slices.Clone(p.PinnedNoteIDs)
	return p
}

// Watch observes changes in dir (or the active directory) if the repository supports it.
func (s *Service) Watch(ctx context.Context, dir string) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, errors.New("repository does not support watching")
	}
	dir, err := s.resolveDir(dir)
	if err != nil {
		return nil, err
	}
	return w.Watch(ctx, dir)
}

func (s *Service) resolveDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	if d := s.repo.Directory(); d != "" {
		return d, nil
	}
	return "", ErrNoDirectory
}

func (s *Service) annotator(id string) (Annotator, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	a, ok := s.repo.(Annotator)
	if !ok {
		return nil, errors.New("repository does not support header updates")
	}
	return a, nil
}

// known returns the indexed notes, scanning the active directory if the
// repository cannot expose its index.
func (s *Service) known(ctx context.Context) ([]Note, error) {
	if snap, ok := s.repo.(Snapshotter); ok {
		return snap.Snapshot(), nil
	}
	return s.ListNotes(ctx, "")
}

func (s *Service) updatePrefs(fn func(p *Settings)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.prefs
	next.PinnedNoteIDs = slices.Clone(s.prefs.PinnedNoteIDs)
	fn(&next)

	if s.settings != nil {
		if err := s.settings.Save(next); err != nil {
			return fmt.Errorf("failed to persist settings: %w", err)
		}
	}
	s.prefs = next
	return nil
}

func matches(n Note, lowerQuery string) bool {
	if strings.Contains(strings.ToLower(n.Title), lowerQuery) ||
		strings.Contains(strings.ToLower(n.Content), lowerQuery) {
		return true
	}
	for _, t := range n.Tags {
		if strings.Contains(strings.ToLower(t), lowerQuery) {
			return true
		}
	}
	return false
}
