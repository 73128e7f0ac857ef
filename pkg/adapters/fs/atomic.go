package fs

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
)

// writeFileAtomic writes data to a temp file in the target directory and renames
// it over filename, so readers see either the old or the new content.
// perm applies to newly created files; existing files keep their mode.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	_, statErr := os.Stat(filename)
	created := errors.Is(statErr, os.ErrNotExist)

	if err := atomic.WriteFile(filename, bytes.NewReader(data)); err != nil {
		return err
	}

	if created {
		if err := os.Chmod(filename, perm); err != nil {
			return fmt.Errorf("failed to chmod %s: %w", filename, err)
		}
	}
	return nil
}
