// Package lifecycle exposes note directory changes as a lifecycle.Source.
package lifecycle

import (
	"context"
	"fmt"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/notas/pkg/core"
)

// NoteEvent is a change event paired with the note it refers to. Note is the
// zero value for deletions and for events whose note could not be resolved.
type NoteEvent struct {
	core.Event
	Note core.Note
}

// String renders the event followed by the note title when one is known.
func (e NoteEvent) String() string {
	if e.Note.Title == "" {
		return e.Event.String()
	}
	return fmt.Sprintf("%s %q", e.Event.String(), e.Note.Title)
}

// Resolver looks up the current state of the note an event refers to.
type Resolver func(ctx context.Context, id string) (core.Note, error)

// SourceOption configures a note source.
type SourceOption func(*noteSource)

// WithResolver attaches the note to every non-delete event. Events whose note
// no longer resolves are dropped: the file changed again before it was read,
// and a later event reports the final state.
func WithResolver(resolve Resolver) SourceOption {
	return func(s *noteSource) {
		s.resolve = resolve
	}
}

// WithFilter drops events whose id is rejected, such as files a scanner
// would never list.
func WithFilter(accept func(id string) bool) SourceOption {
	return func(s *noteSource) {
		s.accept = accept
	}
}

type noteSource struct {
	events  <-chan core.Event
	out     chan lifecycle.Event
	resolve Resolver
	accept  func(id string) bool
}

// NewSource creates a lifecycle.Source that emits a NoteEvent per change.
func NewSource(events <-chan core.Event, opts ...SourceOption) lifecycle.Source {
	s := &noteSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *noteSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start forwards events until ctx is done or the input channel closes, then
// closes the output channel.
func (s *noteSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				ne, keep := s.enrich(ctx, e)
				if !keep {
					continue
				}
				select {
				case s.out <- ne:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}

func (s *noteSource) enrich(ctx context.Context, e core.Event) (NoteEvent, bool) {
	ne := NoteEvent{Event: e}
	if s.accept != nil && !s.accept(e.ID) {
		return ne, false
	}
	if s.resolve == nil || e.Type == core.EventDelete {
		return ne, true
	}
	n, err := s.resolve(ctx, e.ID)
	if err != nil {
		return ne, false
	}
	ne.Note = n
	return ne, true
}
