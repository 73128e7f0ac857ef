package fs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/notas/pkg/core"
)

// DebounceDelay coalesces bursts of filesystem events for the same note
// (an atomic save produces create+rename+chmod in quick succession).
const DebounceDelay = 50 * time.Millisecond

// Watch reports external changes to note files directly inside dir.
// The returned channel is closed once ctx is cancelled; events still queued
// at that point may be dropped. The index is not touched; callers re-list to reconcile.
func (r *Repository) Watch(ctx context.Context, dir string) (<-chan core.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dir, err := r.resolve(dir)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", core.ErrDirectoryNotFound, dir)
		}
		return nil, fmt.Errorf("%w: watch %s: %w", core.ErrRead, dir, err)
	}

	events := make(chan core.Event, r.config.EventBuffer)
	w := &watchWorker{
		repo:      r,
		dir:       dir,
		events:    events,
		watcher:   watcher,
		debouncer: newDebouncer(DebounceDelay),
		known:     r.existingNotes(dir),
	}

	r.setWatching(1)
	lifecycle.Go(ctx, w.run, lifecycle.WithErrorHandler(func(err error) {
		r.logger.Error("watcher stopped", "dir", dir, "error", err)
	}))

	r.logger.Debug("watching notes directory", "dir", dir)
	return events, nil
}

type watchWorker struct {
	repo      *Repository
	dir       string
	events    chan core.Event
	watcher   *fsnotify.Watcher
	debouncer *debouncer

	// known holds the note files present in dir. Only the loop goroutine
	// touches it.
	known map[string]bool
}

// run is the event loop. It owns the events channel and closes it on exit.
func (w *watchWorker) run(ctx context.Context) (err error) {
	logger := w.repo.logger
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("watcher panic: %v", recovered)
			if logger.Enabled(ctx, slog.LevelDebug) {
				logger.Error("watcher panic", "error", err, "stack", string(debug.Stack()))
			} else {
				logger.Error("watcher panic", "error", err)
			}
		}
	}()
	defer w.repo.setWatching(-1)
	defer close(w.events)
	defer w.watcher.Close()

	err = w.loop(ctx)

	// All in-flight timers must finish before the channel is closed.
	w.debouncer.stopAndWait(5 * time.Second)
	return err
}

func (w *watchWorker) loop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return errors.New("watcher events channel closed")
			}
			w.handle(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return errors.New("watcher errors channel closed")
			}
			w.repo.logger.Error("fsnotify error", "error", wErr)
		}
	}
}

// handle filters and maps a filesystem event, then queues it for delivery.
func (w *watchWorker) handle(ctx context.Context, event fsnotify.Event) {
	name := filepath.Base(event.Name)
	if filepath.Dir(event.Name) != w.dir || !w.repo.scanner.Accepts(name) {
		return
	}

	eType := mapEventType(event, w.known[name])
	switch eType {
	case "":
		return
	case core.EventDelete:
		delete(w.known, name)
	default:
		w.known[name] = true
	}
	w.repo.logger.Debug("note file changed", "op", event.Op.String(), "id", name)

	w.debouncer.add(core.Event{
		Type:      eType,
		ID:        name,
		Timestamp: time.Now().Unix(),
	}, func(e core.Event) {
		defer func() {
			// The channel may already be closed during shutdown.
			_ = recover()
		}()
		select {
		case w.events <- e:
		case <-ctx.Done():
		}
	})
}

// mapEventType translates an fsnotify operation. A Create for a file that
// already existed is a replacement, which is how atomic saves appear, and is
// reported as a modification.
func mapEventType(event fsnotify.Event, existed bool) core.EventType {
	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	case event.Has(fsnotify.Create):
		if existed {
			return core.EventModify
		}
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	}
	return ""
}

// existingNotes lists the accepted note files currently inside dir.
func (r *Repository) existingNotes(dir string) map[string]bool {
	known := map[string]bool{}
	entries, err := os.ReadDir(dir)
	if err != nil {
		r.logger.Warn("could not list directory for watch", "dir", dir, "error", err)
		return known
	}
	for _, e := range entries {
		if e.Type().IsRegular() && r.scanner.Accepts(e.Name()) {
			known[e.Name()] = true
		}
	}
	return known
}

func (r *Repository) setWatching(delta int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activeWatches += delta
}

// debouncer delivers the last event seen for an id once no newer event for
// that id has arrived within delay.
type debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	pending map[string]uint64
	gen     uint64
	stopped bool
	wg      sync.WaitGroup
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:   delay,
		pending: make(map[string]uint64),
	}
}

func (d *debouncer) add(e core.Event, deliver func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	d.gen++
	gen := d.gen
	d.pending[e.ID] = gen

	d.wg.Add(1)
	time.AfterFunc(d.delay, func() {
		defer d.wg.Done()

		d.mu.Lock()
		latest := d.pending[e.ID] == gen
		if latest {
			delete(d.pending, e.ID)
		}
		d.mu.Unlock()

		if latest {
			deliver(e)
		}
	})
}

// stopAndWait rejects new events and waits up to timeout for queued ones.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
	}
}
