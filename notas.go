package notas

import (
	"log/slog"
	"time"

	"github.com/aretw0/notas/internal/platform"
	"github.com/aretw0/notas/pkg/core"
)

// --- Types ---

// Note is a public alias for the domain note.
type Note = core.Note

// Service is a public alias for the note service.
type Service = core.Service

// Event is a public alias for a directory change event.
type Event = core.Event

// --- Configuration ---

// Option defines a functional option for configuring notas.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithDirectory sets the active notes directory for this process.
func WithDirectory(dir string) Option {
	return platform.WithDirectory(dir)
}

// WithSettingsFile sets where preferences are stored ("" keeps them in memory).
func WithSettingsFile(path string) Option {
	return platform.WithSettingsFile(path)
}

// WithSettingsStore injects a custom preference store.
func WithSettingsStore(store core.SettingsStore) Option {
	return platform.WithSettingsStore(store)
}

// WithVersioning commits every mutation when the notes directory is a Git work tree.
func WithVersioning(enabled bool) Option {
	return platform.WithVersioning(enabled)
}

// WithIgnore replaces the file name globs skipped while scanning.
func WithIgnore(patterns ...string) Option {
	return platform.WithIgnore(patterns...)
}

// WithClock overrides the time source used for note timestamps.
func WithClock(clock func() time.Time) Option {
	return platform.WithClock(clock)
}

// WithEventBuffer sets the size of the Watch event channel.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithDevSafety controls the settings sandbox used by `go run` and `go test`.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// --- Factory ---

// New creates a new notas Service.
func New(opts ...Option) (*core.Service, error) {
	return platform.New(opts...)
}

// --- Utils ---

// DefaultSettingsPath returns where preferences are stored when no file is given.
func DefaultSettingsPath() string {
	return platform.DefaultSettingsPath(true)
}

// ResolveDirectory expands "~" and returns an absolute notes directory path.
func ResolveDirectory(dir string) (string, error) {
	return platform.ResolveDirectory(dir)
}
