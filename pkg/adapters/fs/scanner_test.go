package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/aretw0/notas/pkg/core"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestScanner_Accepts(t *testing.T) {
	s, err := NewScanner(nil, append([]string{"draft-*"}, DefaultIgnore...))
	if err != nil {
		t.Fatalf("NewScanner failed: %v", err)
	}

	cases := map[string]bool{
		"a.md":         true,
		"UPPER.MD":     true,
		"mixed.Md":     true,
		"a.txt":        false,
		"a.md.bak":     false,
		".draft.md":    true,
		".#a.md":       false,
		".notas.lock":  false,
		"draft-1.md":   false,
		"final.md":     true,
	}
	for name, want := range cases {
		if got := s.Accepts(name); got != want {
			t.Errorf("Accepts(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestNewScanner_InvalidPattern(t *testing.T) {
	if _, err := NewScanner(nil, []string{"[unclosed"}); err == nil {
		t.Error("expected invalid pattern to be rejected")
	}
}

func TestScanner_Scan(t *testing.T) {
	ctx := context.Background()

	t.Run("Reads Only Top Level Note Files", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "b.md"), "second")
		writeFile(t, filepath.Join(dir, "a.md"), "first")
		writeFile(t, filepath.Join(dir, "c.txt"), "ignored")
		writeFile(t, filepath.Join(dir, "sub", "nested.md"), "ignored")
		writeFile(t, filepath.Join(dir, ".#a.md"), "ignored")
		if err := os.Mkdir(filepath.Join(dir, "folder.md"), 0755); err != nil {
			t.Fatal(err)
		}

		s, _ := NewScanner(nil, DefaultIgnore)
		notes, err := s.Scan(ctx, dir)
		if err != nil {
			t.Fatalf("Scan failed: %v", err)
		}

		if len(notes) != 2 {
			t.Fatalf("expected 2 notes, got %d", len(notes))
		}
		if notes[0].ID != "a.md" || notes[1].ID != "b.md" {
			t.Errorf("expected name order, got %s, %s", notes[0].ID, notes[1].ID)
		}
		if notes[0].Path != filepath.Join(dir, "a.md") {
			t.Errorf("unexpected path %q", notes[0].Path)
		}
	})

	t.Run("Lists Hidden Notes", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, ".draft.md"), "half done")
		writeFile(t, filepath.Join(dir, ".settings.json"), "{}")

		s, _ := NewScanner(nil, DefaultIgnore)
		notes, err := s.Scan(ctx, dir)
		if err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		if len(notes) != 1 || notes[0].ID != ".draft.md" {
			t.Errorf("expected only .draft.md, got %+v", notes)
		}
	})

	t.Run("Skips Unreadable Files", func(t *testing.T) {
		if runtime.GOOS == "windows" || os.Geteuid() == 0 {
			t.Skip("requires unix permissions as non-root")
		}
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "ok.md"), "fine")
		locked := filepath.Join(dir, "locked.md")
		writeFile(t, locked, "secret")
		if err := os.Chmod(locked, 0000); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { _ = os.Chmod(locked, 0644) })

		s, _ := NewScanner(nil, DefaultIgnore)
		notes, err := s.Scan(ctx, dir)
		if err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		if len(notes) != 1 || notes[0].ID != "ok.md" {
			t.Errorf("expected only ok.md, got %+v", notes)
		}
	})

	t.Run("Missing Directory", func(t *testing.T) {
		s, _ := NewScanner(nil, DefaultIgnore)
		_, err := s.Scan(ctx, filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, core.ErrDirectoryNotFound) {
			t.Errorf("expected ErrDirectoryNotFound, got %v", err)
		}
	})

	t.Run("Path Is A File", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "a.md")
		writeFile(t, file, "x")

		s, _ := NewScanner(nil, DefaultIgnore)
		_, err := s.Scan(ctx, file)
		if !errors.Is(err, core.ErrDirectoryNotFound) {
			t.Errorf("expected ErrDirectoryNotFound, got %v", err)
		}
	})

	t.Run("Cancelled Context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		s, _ := NewScanner(nil, DefaultIgnore)
		if _, err := s.Scan(cctx, t.TempDir()); !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}
