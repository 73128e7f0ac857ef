package fs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"

	"github.com/aretw0/notas/pkg/core"
)

// SettingsFileName is the default name of the preferences file.
const SettingsFileName = ".settings.json"

// SettingsFile persists core.Settings as JSON. Reads accept comments and
// trailing commas so the file can be edited by hand.
type SettingsFile struct {
	Path string
}

// NewSettingsFile returns a store backed by path.
func NewSettingsFile(path string) *SettingsFile {
	return &SettingsFile{Path: path}
}

// Load reads the file. A missing file yields empty settings.
func (s *SettingsFile) Load() (core.Settings, error) {
	var settings core.Settings

	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("%w: %s: %w", core.ErrRead, s.Path, err)
	}

	data, err = hujson.Standardize(data)
	if err != nil {
		return settings, fmt.Errorf("%w: %s: invalid settings: %w", core.ErrRead, s.Path, err)
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("%w: %s: invalid settings: %w", core.ErrRead, s.Path, err)
	}
	return settings, nil
}

// Save replaces the file atomically.
func (s *SettingsFile) Save(settings core.Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("%w: %s: %w", core.ErrWrite, s.Path, err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %s: %w", core.ErrWrite, s.Path, err)
	}
	data = append(data, '\n')

	if err := writeFileAtomic(s.Path, data, 0644); err != nil {
		return fmt.Errorf("%w: %s: %w", core.ErrWrite, s.Path, err)
	}
	return nil
}

var _ core.SettingsStore = (*SettingsFile)(nil)
