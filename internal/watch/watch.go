// Package watch provides debounced file change notification built on
// fsnotify. It watches the parent directory rather than the file itself so
// editors that save by rename-replace do not silently detach the watch.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is one debounced change notification.
type Event struct {
	Path string
	At   time.Time
}

// Watcher emits a single Event per burst of filesystem activity on one file.
type Watcher struct {
	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	closed   bool
}

// New creates a Watcher for the given file path. The debounce window
// coalesces the bursts of write events editors emit for a single save;
// zero disables coalescing.
func New(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving watch path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:     abs,
		debounce: debounce,
		watcher:  fsw,
	}, nil
}

// Watch streams debounced change events. The channel is closed when the
// context is cancelled or the Watcher is closed.
func (w *Watcher) Watch(ctx context.Context) <-chan Event {
	events := make(chan Event, 1)
	go w.watchLoop(ctx, events)
	return events
}

// watchLoop is the main loop coalescing raw events into notifications.
func (w *Watcher) watchLoop(ctx context.Context, events chan<- Event) {
	defer close(events)

	// The timer starts stopped; it is armed by the first relevant event.
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			if w.debounce <= 0 {
				w.emit(events)
				continue
			}
			if pending && !timer.Stop() {
				<-timer.C
			}
			timer.Reset(w.debounce)
			pending = true

		case <-timer.C:
			pending = false
			w.emit(events)

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Transient watcher errors are ignored; the next write on the
			// file still produces an event.
		}
	}
}

// relevant reports whether a raw event concerns the watched file.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Name != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove)
}

// emit delivers one notification without blocking. If the receiver still
// has an undelivered event queued, the new one coalesces into it.
func (w *Watcher) emit(events chan<- Event) {
	select {
	case events <- Event{Path: w.path, At: time.Now()}:
	default:
	}
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	return w.watcher.Close()
}
