package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/notas/pkg/core"
)

// DefaultIgnore skips editor lock files such as ".#todo.md". Hidden notes like
// ".draft.md" are listed; settings and swap files fall out on extension alone.
var DefaultIgnore = []string{".#*"}

// Scanner enumerates note files in a single directory and decodes them.
type Scanner struct {
	ignore []string
	logger *slog.Logger
}

// NewScanner creates a Scanner. Each ignore entry is a doublestar glob matched
// against the file name; invalid patterns are rejected.
func NewScanner(logger *slog.Logger, ignore []string) (*Scanner, error) {
	for _, p := range ignore {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid ignore pattern %q", p)
		}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Scanner{ignore: ignore, logger: logger}, nil
}

// Accepts reports whether a file name is a candidate note file.
func (s *Scanner) Accepts(name string) bool {
	if !IsNoteFile(name) {
		return false
	}
	for _, p := range s.ignore {
		if ok, _ := doublestar.Match(p, name); ok {
			return false
		}
	}
	return true
}

// Scan reads every note file directly inside dir. Subdirectories are not
// recursed. Files that cannot be read are logged and left out of the result.
// Files are visited in name order.
func (s *Scanner) Scan(ctx context.Context, dir string) ([]core.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", core.ErrDirectoryNotFound, dir)
		}
		return nil, fmt.Errorf("%w: %s: %w", core.ErrRead, dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", core.ErrDirectoryNotFound, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", core.ErrRead, dir, err)
	}

	notes := make([]core.Note, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !s.Accepts(e.Name()) {
			continue
		}

		path := filepath.Join(dir, e.Name())
		n, err := s.ReadNote(path)
		if err != nil {
			s.logger.Warn("skipping note file", "path", path, "error", err)
			continue
		}
		notes = append(notes, n)
	}

	return notes, nil
}

// ReadNote reads and decodes a single note file. Missing header fields fall back
// to the file name and modification time.
func (s *Scanner) ReadNote(path string) (core.Note, error) {
	f, err := os.Open(path)
	if err != nil {
		return core.Note{}, fmt.Errorf("%w: %s: %w", core.ErrRead, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return core.Note{}, fmt.Errorf("%w: %s: %w", core.ErrRead, path, err)
	}
	if info.IsDir() {
		return core.Note{}, fmt.Errorf("%w: %s is a directory", core.ErrRead, path)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return core.Note{}, fmt.Errorf("%w: %s: %w", core.ErrRead, path, err)
	}

	fallback := info.ModTime()
	if fallback.IsZero() {
		fallback = time.Now()
	}

	n := Decode(data, path, fallback)
	n.ID = filepath.Base(path)
	n.Path = path
	return n, nil
}
