// Package core holds the domain types of the note store and the Service that
// orchestrates them. It is agnostic to how notes are persisted.
package core

import (
	"slices"
	"time"
)

// TimestampLayout is the on-disk encoding of note timestamps.
// It is fixed-width and always UTC, so lexicographic order equals chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000000000Z"

// Note is the central entity of the domain: header metadata plus body text.
type Note struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Content   string    `json:"content" yaml:"content"`
	Path      string    `json:"path,omitempty" yaml:"path,omitempty"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
	Tags      []string  `json:"tags" yaml:"tags"`
	Color     string    `json:"color,omitempty" yaml:"color,omitempty"`
}

// Persisted reports whether the note has a backing file.
func (n Note) Persisted() bool {
	return n.Path != ""
}

// HasTag reports whether the note carries the given tag.
func (n Note) HasTag(tag string) bool {
	return slices.Contains(n.Tags, tag)
}

// Clone returns a copy of the note that shares no mutable state with n.
func (n Note) Clone() Note {
	c := n
	c.Tags = slices.Clone(n.Tags)
	if c.Tags == nil {
		c.Tags = []string{}
	}
	return c
}

// FormatTimestamp renders t with TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp accepts TimestampLayout and any RFC 3339 variant, so files written
// by other tools keep their dates.
func ParseTimestamp(s string) (time.Time, bool) {
	for _, layout := range []string{TimestampLayout, time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
