package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/notas/pkg/core"
	"github.com/aretw0/notas/pkg/git"
)

const (
	notePerm        = 0644
	maxNameAttempts = 8
	untitled        = "Untitled"
)

// Config holds the configuration for the filesystem repository.
type Config struct {
	Directory   string           // Initial active directory (optional)
	Logger      *slog.Logger     // nil discards logs
	Ignore      []string         // Globs of file names to skip; nil means DefaultIgnore
	Clock       func() time.Time // nil means time.Now
	Versioning  bool             // Commit each mutation when the note directory is a git work tree
	EventBuffer int              // Watch channel size; zero means 100
}

type entry struct {
	note core.Note
	seq  uint64 // insertion order, used to break UpdatedAt ties
}

// Repository implements core.Repository on a directory of Markdown files.
//
// It owns the in-memory index (id -> note). Every operation runs under one
// lock and holds it across its filesystem work, so a note is published only
// after its file has been written, and two mutations of the same id never
// interleave.
type Repository struct {
	config  Config
	logger  *slog.Logger
	scanner *Scanner

	mu            sync.RWMutex
	dir           string
	index         map[string]*entry
	seq           uint64
	lastScan      *time.Time
	activeWatches int
}

var (
	_ core.Repository  = (*Repository)(nil)
	_ core.Annotator   = (*Repository)(nil)
	_ core.Snapshotter = (*Repository)(nil)
	_ core.Watchable   = (*Repository)(nil)
)

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) (*Repository, error) {
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if config.Ignore == nil {
		config.Ignore = DefaultIgnore
	}
	if config.Clock == nil {
		config.Clock = time.Now
	}
	if config.EventBuffer <= 0 {
		config.EventBuffer = 100
	}

	scanner, err := NewScanner(config.Logger, config.Ignore)
	if err != nil {
		return nil, err
	}

	r := &Repository{
		config:  config,
		logger:  config.Logger,
		scanner: scanner,
		index:   make(map[string]*entry),
	}
	if config.Directory != "" {
		r.SetDirectory(config.Directory)
	}
	return r, nil
}

// SetDirectory records the active storage root for later operations. It does not scan.
func (r *Repository) SetDirectory(dir string) {
	if dir != "" {
		dir = filepath.Clean(dir)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.dir = dir
}

// Directory returns the active storage root.
func (r *Repository) Directory() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.dir
}

// List scans dir and reconciles the result into the index.
//
// Workflow:
//  1. Scan the directory (per-file failures are logged and skipped).
//  2. Replace indexed notes with their on-disk version; insert new ones.
//  3. Drop index entries of this directory whose file is gone.
//  4. Return the scanned notes, newest UpdatedAt first, ties in insertion order.
func (r *Repository) List(ctx context.Context, dir string) ([]core.Note, error) {
	dir, err := r.resolve(dir)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	notes, err := r.scanner.Scan(ctx, dir)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(notes))
	for _, n := range notes {
		seen[n.ID] = true
		if e, ok := r.index[n.ID]; ok {
			e.note = n
			continue
		}
		r.insert(n)
	}

	for id, e := range r.index {
		if !seen[id] && e.note.Path != "" && filepath.Dir(e.note.Path) == dir {
			delete(r.index, id)
		}
	}

	now := r.config.Clock()
	r.lastScan = &now

	entries := make([]*entry, 0, len(seen))
	for id := range seen {
		entries = append(entries, r.index[id])
	}
	r.logger.Debug("scanned notes directory", "dir", dir, "notes", len(entries))
	return sortEntries(entries), nil
}

// Create allocates an identity for a new empty note, writes its file and indexes it.
func (r *Repository) Create(ctx context.Context, dir, title string) (core.Note, error) {
	if err := ctx.Err(); err != nil {
		return core.Note{}, err
	}
	dir, err := r.resolve(dir)
	if err != nil {
		return core.Note{}, err
	}

	title = headerValue(title)
	if title == "" {
		title = untitled
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	name, err := r.allocateName(dir, GenerateFilename(title, now))
	if err != nil {
		return core.Note{}, err
	}

	n := core.Note{
		ID:        name,
		Title:     title,
		Path:      filepath.Join(dir, name),
		CreatedAt: now,
		UpdatedAt: now,
		Tags:      []string{},
	}

	if err := writeNote(n); err != nil {
		return core.Note{}, err
	}
	r.insert(n)
	r.logger.Debug("created note", "id", n.ID, "path", n.Path)
	r.record(n, "create")

	return n.Clone(), nil
}

// Save replaces the body of an indexed note and rewrites its file with the
// current header fields. The index is updated only after the write succeeds.
func (r *Repository) Save(ctx context.Context, id, content string) (core.Note, error) {
	return r.update(ctx, id, "save", func(n *core.Note) {
		n.Content = content
	})
}

// SetColor changes the color hint of a note and rewrites its file.
func (r *Repository) SetColor(ctx context.Context, id, color string) (core.Note, error) {
	return r.update(ctx, id, "color", func(n *core.Note) {
		n.Color = headerValue(color)
	})
}

// SetTags replaces the tags of a note and rewrites its file.
func (r *Repository) SetTags(ctx context.Context, id string, tags []string) (core.Note, error) {
	return r.update(ctx, id, "tag", func(n *core.Note) {
		n.Tags = cleanTags(tags)
	})
}

// Delete removes the note file, then its index entry. If the file cannot be
// removed the entry stays indexed.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.lookup(id)
	if err != nil {
		return err
	}

	note := e.note
	path := note.Path
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s: %w", core.ErrNotFound, path, err)
		}
		return fmt.Errorf("%w: remove %s: %w", core.ErrWrite, path, err)
	}

	delete(r.index, id)
	r.logger.Debug("deleted note", "id", id, "path", path)
	r.record(note, "delete")
	return nil
}

// Get returns the indexed note with the given id.
func (r *Repository) Get(ctx context.Context, id string) (core.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.index[id]
	if !ok {
		return core.Note{}, fmt.Errorf("%w: %s", core.ErrNotFound, id)
	}
	return e.note.Clone(), nil
}

// Snapshot returns every indexed note, newest UpdatedAt first.
func (r *Repository) Snapshot() []core.Note {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*entry, 0, len(r.index))
	for _, e := range r.index {
		entries = append(entries, e)
	}
	return sortEntries(entries)
}

// update applies fn to a copy of the note, bumps UpdatedAt, writes the file and
// only then publishes the copy to the index.
func (r *Repository) update(ctx context.Context, id, op string, fn func(n *core.Note)) (core.Note, error) {
	if err := ctx.Err(); err != nil {
		return core.Note{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.lookup(id)
	if err != nil {
		return core.Note{}, err
	}

	next := e.note.Clone()
	fn(&next)
	next.UpdatedAt = r.advance(e.note.UpdatedAt)

	if err := writeNote(next); err != nil {
		return core.Note{}, err
	}
	e.note = next
	r.logger.Debug("updated note", "op", op, "id", id, "path", next.Path)
	r.record(next, op)

	return next.Clone(), nil
}

// lookup finds a persisted note. Callers must hold r.mu.
func (r *Repository) lookup(id string) (*entry, error) {
	if id == "" {
		return nil, core.ErrEmptyID
	}
	e, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrNotFound, id)
	}
	if !e.note.Persisted() {
		return nil, fmt.Errorf("%w: %s has no backing file", core.ErrNotFound, id)
	}
	return e, nil
}

// insert adds a note with the next insertion sequence. Callers must hold r.mu.
func (r *Repository) insert(n core.Note) {
	r.seq++
	r.index[n.ID] = &entry{note: n.Clone(), seq: r.seq}
}

// allocateName returns name, or a randomly suffixed variant, that is neither
// indexed nor present on disk. Callers must hold r.mu.
func (r *Repository) allocateName(dir, name string) (string, error) {
	candidate := name
	for i := 0; i < maxNameAttempts; i++ {
		_, indexed := r.index[candidate]
		_, statErr := os.Lstat(filepath.Join(dir, candidate))
		if !indexed && errors.Is(statErr, os.ErrNotExist) {
			return candidate, nil
		}
		if statErr != nil && !errors.Is(statErr, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s: %w", core.ErrWrite, filepath.Join(dir, candidate), statErr)
		}
		candidate = withRandomSuffix(name)
	}
	return "", fmt.Errorf("%w: no free file name for %s in %s", core.ErrWrite, name, dir)
}

// resolve returns dir, or the active directory, as a clean absolute path.
func (r *Repository) resolve(dir string) (string, error) {
	if dir == "" {
		dir = r.Directory()
	}
	if dir == "" {
		return "", core.ErrNoDirectory
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", core.ErrDirectoryNotFound, dir, err)
	}
	return abs, nil
}

func (r *Repository) now() time.Time {
	return r.config.Clock().UTC().Round(0)
}

// advance returns the current time, never earlier than prev.
func (r *Repository) advance(prev time.Time) time.Time {
	now := r.now()
	if now.Before(prev) {
		return prev
	}
	return now
}

// record commits the file of a mutated note when versioning is enabled.
// Failures are logged only: the file on disk is already the source of truth.
func (r *Repository) record(n core.Note, op string) {
	if !r.config.Versioning {
		return
	}
	client := git.NewClient(filepath.Dir(n.Path), r.logger)
	if !client.IsRepo() {
		r.logger.Debug("versioning skipped, not a git work tree", "dir", client.WorkDir)
		return
	}
	msg := git.FormatMessage(op+" "+n.ID, "title: "+n.Title)
	if err := client.Record(msg, filepath.Base(n.Path)); err != nil {
		r.logger.Warn("failed to record change in git", "path", n.Path, "error", err)
	}
}

func writeNote(n core.Note) error {
	if err := writeFileAtomic(n.Path, Encode(n), notePerm); err != nil {
		return fmt.Errorf("%w: %s: %w", core.ErrWrite, n.Path, err)
	}
	return nil
}

func sortEntries(entries []*entry) []core.Note {
	slices.SortFunc(entries, func(a, b *entry) int {
		if c := b.note.UpdatedAt.Compare(a.note.UpdatedAt); c != 0 {
			return c
		}
		return cmpUint(a.seq, b.seq)
	})

	notes := make([]core.Note, len(entries))
	for i, e := range entries {
		notes[i] = e.note.Clone()
	}
	return notes
}

func cmpUint(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// IsNoteFile reports whether name has the note extension (case-insensitive).
func IsNoteFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), NoteExt)
}
