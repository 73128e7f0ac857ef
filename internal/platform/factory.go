package platform

import (
	"io"
	"log/slog"

	"github.com/aretw0/notas/pkg/adapters/fs"
	"github.com/aretw0/notas/pkg/core"
)

// New wires a Service: the filesystem repository (unless one is injected),
// the settings store and the logger. Stored preferences are loaded before
// WithDirectory is applied.
//
//	svc, err := notas.New(notas.WithDirectory("./notes"))
func New(opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	repo, err := newRepository(o)
	if err != nil {
		return nil, err
	}

	service := core.NewService(repo, newSettingsStore(o), core.WithLogger(o.logger))
	if err := service.LoadSettings(); err != nil {
		return nil, err
	}

	if o.directory != "" {
		dir, err := ResolveDirectory(o.directory)
		if err != nil {
			return nil, err
		}
		repo.SetDirectory(dir)
	}

	o.logger.Debug("service ready", "dir", repo.Directory())
	return service, nil
}

func newRepository(o *options) (core.Repository, error) {
	if o.repository != nil {
		return o.repository, nil
	}
	return fs.NewRepository(fs.Config{
		Logger:      o.logger,
		Ignore:      o.ignore,
		Clock:       o.clock,
		Versioning:  o.versioning,
		EventBuffer: o.eventBuffer,
	})
}

func newSettingsStore(o *options) core.SettingsStore {
	if o.settings != nil {
		return o.settings
	}

	path := DefaultSettingsPath(o.devSafety)
	if o.settingsPath != nil {
		path = *o.settingsPath
	}
	if path == "" {
		return nil
	}

	o.logger.Debug("using settings file", "path", path)
	return fs.NewSettingsFile(path)
}
