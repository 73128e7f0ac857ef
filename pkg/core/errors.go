package core

import "errors"

// Common errors.
var (
	// ErrNotFound is returned when an id is unknown to the index or the note was never persisted.
	ErrNotFound = errors.New("note not found")
	// ErrDirectoryNotFound is returned when a scan targets a missing path or a non-directory.
	ErrDirectoryNotFound = errors.New("directory not found")
	// ErrNoDirectory is returned when an operation needs the active directory and none is set.
	ErrNoDirectory = errors.New("no notes directory configured")
	// ErrWrite wraps filesystem failures while creating, replacing or removing a note file.
	ErrWrite = errors.New("write failed")
	// ErrRead wraps filesystem failures while reading a note file.
	ErrRead = errors.New("read failed")
	// ErrEmptyID is returned when an operation is called without an id.
	ErrEmptyID = errors.New("note ID cannot be empty")
)
