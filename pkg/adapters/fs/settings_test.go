package fs_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notas/pkg/adapters/fs"
	"github.com/aretw0/notas/pkg/core"
)

func TestSettingsFile(t *testing.T) {
	t.Run("Missing File Is Empty", func(t *testing.T) {
		s := fs.NewSettingsFile(filepath.Join(t.TempDir(), fs.SettingsFileName))

		got, err := s.Load()
		require.NoError(t, err)
		assert.Equal(t, core.Settings{}, got)
	})

	t.Run("Save Then Load", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", fs.SettingsFileName)
		s := fs.NewSettingsFile(path)

		want := core.Settings{
			NotesDirectory:   "/home/me/notes",
			PinnedNoteIDs:    []string{"a.md", "b.md"},
			LastActiveNoteID: "b.md",
		}
		require.NoError(t, s.Save(want))

		got, err := s.Load()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("Accepts Comments And Trailing Commas", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), fs.SettingsFileName)
		doc := `{
	// edited by hand
	"notes_directory": "/tmp/notes",
	"pinned_note_ids": ["x.md",],
}`
		require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

		got, err := fs.NewSettingsFile(path).Load()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/notes", got.NotesDirectory)
		assert.Equal(t, []string{"x.md"}, got.PinnedNoteIDs)
	})

	t.Run("Corrupt File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), fs.SettingsFileName)
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		_, err := fs.NewSettingsFile(path).Load()
		assert.True(t, errors.Is(err, core.ErrRead), "expected ErrRead, got %v", err)
	})
}
