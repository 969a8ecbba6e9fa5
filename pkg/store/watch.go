package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventSnapshotChanged indicates the calendar snapshot blob was written
	// by another process and the store has already reloaded it.
	EventSnapshotChanged EventType = iota

	// EventStorageChanged signals some other key under the base path changed
	// (e.g. a holiday cache year landed) and callers may want to refresh
	// derived views.
	EventStorageChanged
)

// Event is emitted by Persistence.Watch when underlying storage changes.
type Event struct {
	Type EventType
	Key  string
}

// Watch streams change events from other processes sharing the same base
// path until ctx is cancelled. Callers should drain the returned channel to
// avoid blocking the watcher. The channel is closed once ctx is done or the
// watcher encounters an unrecoverable error.
func (p *calendarStore) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}

	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	if err := watcher.Add(p.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop events if the consumer is not ready; a subsequent
				// refresh will pick up the changes. This keeps filesystem
				// storms from blocking the watcher goroutine.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)

		// Snapshot events reload this instance before delivery so the
		// channel always trails a consistent in-memory state.
		deliver := func(ev Event) {
			if ev.Type == EventSnapshotChanged {
				p.reload()
			}
			send(ev)
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-throttle.fire:
				// Flushes happen here, in the same goroutine that closes the
				// events channel, so a late timer cannot send after close.
				throttle.Flush(deliver)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Surface watcher errors as a snapshot refresh to keep
				// clients in sync even if we cannot classify the change.
				fmt.Fprintf(os.Stderr, "store: watcher: %v\n", err)
				throttle.Enqueue(Event{Type: EventSnapshotChanged, Key: snapshotKey})
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}

				key := filepath.Base(evt.Name)
				if key == snapshotKey {
					throttle.Enqueue(Event{Type: EventSnapshotChanged, Key: key})
					continue
				}
				throttle.Enqueue(Event{Type: EventStorageChanged, Key: key})
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces rapid change notifications so consumers can
// refresh once per burst of filesystem activity instead of on every write.
// The timer never delivers events itself; it only signals fire, and the
// owner drains pending events with Flush from its own goroutine.
type eventThrottle struct {
	mu      sync.Mutex
	armed   bool
	pending map[EventType]map[string]struct{}
	delay   time.Duration
	fire    chan struct{}
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[EventType]map[string]struct{}),
		fire:    make(chan struct{}, 1),
	}
}

func (t *eventThrottle) Enqueue(ev Event) {
	t.mu.Lock()
	if t.pending[ev.Type] == nil {
		t.pending[ev.Type] = make(map[string]struct{})
	}
	t.pending[ev.Type][ev.Key] = struct{}{}

	if !t.armed {
		t.armed = true
		time.AfterFunc(t.delay, func() {
			select {
			case t.fire <- struct{}{}:
			default:
			}
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) Flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[EventType]map[string]struct{})
	t.armed = false
	t.mu.Unlock()

	for eventType, keys := range pending {
		for key := range keys {
			send(Event{Type: eventType, Key: key})
		}
	}
}
