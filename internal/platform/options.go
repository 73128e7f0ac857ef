package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/notas/pkg/core"
)

// options holds the internal configuration for the notas service.
type options struct {
	repository   core.Repository
	settings     core.SettingsStore
	logger       *slog.Logger
	directory    string
	settingsPath *string
	versioning   bool
	ignore       []string
	clock        func() time.Time
	eventBuffer  int
	devSafety    bool
}

// Option defines a functional option for configuring notas.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		devSafety: true,
	}
}

// WithLogger sets the logger for the service and the repository.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDirectory sets the active notes directory for this process. It takes
// precedence over the stored preference but is not persisted.
func WithDirectory(dir string) Option {
	return func(o *options) {
		o.directory = dir
	}
}

// WithSettingsFile sets where preferences are stored. An empty path keeps
// preferences in memory only.
func WithSettingsFile(path string) Option {
	return func(o *options) {
		o.settingsPath = &path
	}
}

// WithSettingsStore injects a custom preference store. It overrides WithSettingsFile.
func WithSettingsStore(store core.SettingsStore) Option {
	return func(o *options) {
		o.settings = store
	}
}

// WithVersioning commits every mutation when the notes directory is a Git work tree.
// Disabled by default.
func WithVersioning(enabled bool) Option {
	return func(o *options) {
		o.versioning = enabled
	}
}

// WithIgnore replaces the file name globs skipped while scanning.
// Defaults to editor lock files.
func WithIgnore(patterns ...string) Option {
	return func(o *options) {
		o.ignore = patterns
	}
}

// WithClock overrides the time source used for note timestamps.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithEventBuffer sets the size of the Watch event channel.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. mock).
// If provided, the default filesystem adapter will be skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithDevSafety controls the sandbox used when running via `go run` or `go test`:
// the default settings file then lives in the temp directory instead of the
// user's config directory. Enabled by default.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.devSafety = enabled
	}
}
