package core

import "context"

// Repository defines the contract for storing notes and indexing them in memory.
// The implementation exclusively owns its index; callers only see copies.
type Repository interface {
	// SetDirectory records the active storage root. It does not scan.
	SetDirectory(dir string)

	// Directory returns the active storage root ("" when unset).
	Directory() string

	// List scans dir, reconciles the results into the index and returns the
	// notes ordered by UpdatedAt descending.
	List(ctx context.Context, dir string) ([]Note, error)

	// Create allocates an identity and a file for a new, empty note.
	Create(ctx context.Context, dir, title string) (Note, error)

	// Save replaces the body of an indexed note and rewrites its file.
	Save(ctx context.Context, id, content string) (Note, error)

	// Delete removes the note file and then its index entry.
	Delete(ctx context.Context, id string) error

	// Get returns the indexed note with the given id.
	Get(ctx context.Context, id string) (Note, error)
}

// Annotator is implemented by repositories that can rewrite header fields.
type Annotator interface {
	SetColor(ctx context.Context, id, color string) (Note, error)
	SetTags(ctx context.Context, id string, tags []string) (Note, error)
}

// Snapshotter is implemented by repositories that can expose their whole index.
type Snapshotter interface {
	// Snapshot returns every indexed note, ordered like List.
	Snapshot() []Note
}

// Watchable defines an interface for repositories that can report changes made
// to a directory by other processes.
type Watchable interface {
	Watch(ctx context.Context, dir string) (<-chan Event, error)
}

// Settings is the persisted user preference set.
type Settings struct {
	NotesDirectory   string   `json:"notes_directory,omitempty"`
	PinnedNoteIDs    []string `json:"pinned_note_ids,omitempty"`
	LastActiveNoteID string   `json:"last_active_note_id,omitempty"`
}

// SettingsStore loads and persists Settings.
type SettingsStore interface {
	Load() (Settings, error)
	Save(s Settings) error
}
