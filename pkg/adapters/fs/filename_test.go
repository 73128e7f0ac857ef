package fs

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"My Note!", "my-note"},
		{"  spaced   out  ", "spaced-out"},
		{"Ação Rápida", "ação-rápida"},
		{"already-slugged", "already-slugged"},
		{"a -- b", "a-b"},
		{"!!!", "untitled"},
		{"", "untitled"},
		{"v2 Draft", "v2-draft"},
	}

	for _, tt := range tests {
		if got := Slugify(tt.title); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestGenerateFilename(t *testing.T) {
	t.Run("Uses UTC Timestamp", func(t *testing.T) {
		loc := time.FixedZone("UTC-3", -3*60*60)
		now := time.Date(2024, 12, 31, 22, 15, 7, 0, loc)

		got := GenerateFilename("My Note!", now)
		if want := "note-20250101-011507-my-note.md"; got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("Random Suffix", func(t *testing.T) {
		base := "note-20240101-000000-a.md"
		got := withRandomSuffix(base)

		pattern := regexp.MustCompile(`^note-20240101-000000-a-[0-9a-f]{6}\.md$`)
		if !pattern.MatchString(got) {
			t.Errorf("unexpected suffixed name %q", got)
		}
		if !strings.HasSuffix(got, NoteExt) {
			t.Errorf("suffix must keep the extension: %q", got)
		}
		if withRandomSuffix(base) == got {
			t.Error("expected suffixes to differ between calls")
		}
	})
}
