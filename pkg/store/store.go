package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"

	"harucal/pkg/day"
)

// snapshotKey is the single key under which the whole calendar snapshot is
// persisted. Everything else in the base path (holiday caches) belongs to
// other packages.
const snapshotKey = "calendar"

// Snapshot is the full mapping of date keys to day records. It is the unit
// of persistence and of broadcast; every mutation rewrites the whole thing.
type Snapshot map[string]day.Record

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for k, r := range s {
		out[k] = r.Clone()
	}
	return out
}

// Persistence defines the persistence contract for calendar day records.
//
// Load is fail-soft: an absent or corrupt snapshot resets in-memory state to
// empty and never returns the corruption to the caller. Save is the only
// path that persists; every mutator is sugar over Day + transform + Save.
type Persistence interface {
	Load() error
	SnapshotNow() Snapshot
	Day(date string) day.Record
	Save(snap Snapshot) error

	AddMood(date, mood string) error
	RemoveMood(date string, index int) error
	AddEvent(date string, e day.Event) (day.Event, error)
	DeleteEvent(date, eventID string) error
	AddTodo(date, text string) (day.Todo, error)
	ToggleTodo(date, todoID string) error
	DeleteTodo(date, todoID string) error
	AllEvents() []day.Event

	Subscribe(fn func()) (cancel func())
	Watch(ctx context.Context) (<-chan Event, error)
	Close()
}

// Load creates a Persistence backed by diskv using the provided config and
// hydrates it. A nil config falls back to LoadConfig.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	p := &calendarStore{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
		snap:     Snapshot{},
		subs:     map[int]func(){},
	}
	if err := p.Load(); err != nil {
		return nil, err
	}
	hub.register(p)
	return p, nil
}

type calendarStore struct {
	d        *diskv.Diskv
	basePath string

	mu     sync.RWMutex
	snap   Snapshot
	subsMu sync.Mutex
	subs   map[int]func()
	nextID int
}

// Load reads the persisted blob. Absent means empty; unparseable or
// wrong-shaped means log and reset to empty.
func (p *calendarStore) Load() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loadLocked()
}

func (p *calendarStore) loadLocked() error {
	if !p.d.Has(snapshotKey) {
		p.snap = Snapshot{}
		return nil
	}
	// Direct read: diskv's read cache would otherwise keep serving the first
	// value this instance ever saw, hiding later writes by siblings or other
	// processes.
	rc, err := p.d.ReadStream(snapshotKey, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: read snapshot: %v\n", err)
		p.snap = Snapshot{}
		return nil
	}
	val, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: read snapshot: %v\n", err)
		p.snap = Snapshot{}
		return nil
	}
	var snap Snapshot
	if err := json.Unmarshal(val, &snap); err != nil {
		fmt.Fprintf(os.Stderr, "store: corrupt snapshot, resetting: %v\n", err)
		p.snap = Snapshot{}
		return nil
	}
	if snap == nil {
		snap = Snapshot{}
	}
	p.snap = snap
	return nil
}

func (p *calendarStore) SnapshotNow() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snap.Clone()
}

// Day returns the record for a date, or the empty-shaped record if none
// exists. Reading never mutates the store.
func (p *calendarStore) Day(date string) day.Record {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if r, ok := p.snap[date]; ok {
		return r.Clone()
	}
	return day.NewRecord(date)
}

// Save replaces in-memory state with a copy of snap, writes it through to
// disk, then broadcasts the change. Write failures surface to the caller;
// in-memory state keeps the new value so the UI does not lie about what it
// shows.
func (p *calendarStore) Save(snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("store: encode snapshot: %w", err)
	}

	p.mu.Lock()
	// Copy so a caller mutating its map afterwards cannot diverge in-memory
	// state from the persisted blob.
	p.snap = snap.Clone()
	writeErr := p.d.Write(snapshotKey, data)
	p.mu.Unlock()

	hub.publish(p)
	p.notify()

	if writeErr != nil {
		return fmt.Errorf("store: persistence unavailable: %w", writeErr)
	}
	return nil
}

func (p *calendarStore) mutate(date string, fn func(r *day.Record)) error {
	p.mu.RLock()
	snap := p.snap.Clone()
	p.mu.RUnlock()

	r, ok := snap[date]
	if !ok {
		r = day.NewRecord(date)
	}
	fn(&r)
	snap[date] = r
	return p.Save(snap)
}

// AddMood appends a mood tag. A day already holding MaxMoods tags silently
// rejects the add.
func (p *calendarStore) AddMood(date, mood string) error {
	if len(p.Day(date).Moods) >= day.MaxMoods {
		return nil
	}
	return p.mutate(date, func(r *day.Record) {
		r.Moods = append(r.Moods, mood)
	})
}

// RemoveMood removes a mood by position; out-of-range indexes are ignored.
func (p *calendarStore) RemoveMood(date string, index int) error {
	if index < 0 || index >= len(p.Day(date).Moods) {
		return nil
	}
	return p.mutate(date, func(r *day.Record) {
		r.Moods = append(r.Moods[:index], r.Moods[index+1:]...)
	})
}

// AddEvent stamps a fresh id and the owning date, normalizes the
// time/all-day invariant, and appends. The stored event is returned.
func (p *calendarStore) AddEvent(date string, e day.Event) (day.Event, error) {
	e.ID = uuid.NewString()
	e.Date = date
	e.Normalize()
	if e.Title == "" {
		return day.Event{}, fmt.Errorf("store: event title required")
	}
	err := p.mutate(date, func(r *day.Record) {
		r.Events = append(r.Events, e)
	})
	return e, err
}

// DeleteEvent removes the event with the matching id; unknown ids are a
// silent no-op.
func (p *calendarStore) DeleteEvent(date, eventID string) error {
	return p.mutate(date, func(r *day.Record) {
		kept := r.Events[:0]
		for _, e := range r.Events {
			if e.ID != eventID {
				kept = append(kept, e)
			}
		}
		r.Events = kept
	})
}

// AddTodo appends a daily to-do, creating the sequence if absent.
func (p *calendarStore) AddTodo(date, text string) (day.Todo, error) {
	t := day.Todo{ID: uuid.NewString(), Text: text}
	if t.Text == "" {
		return day.Todo{}, fmt.Errorf("store: todo text required")
	}
	err := p.mutate(date, func(r *day.Record) {
		r.Todos = append(r.Todos, t)
	})
	return t, err
}

// ToggleTodo flips the completed flag; unknown ids are a silent no-op.
func (p *calendarStore) ToggleTodo(date, todoID string) error {
	return p.mutate(date, func(r *day.Record) {
		for i := range r.Todos {
			if r.Todos[i].ID == todoID {
				r.Todos[i].Completed = !r.Todos[i].Completed
			}
		}
	})
}

// DeleteTodo removes the to-do with the matching id; unknown ids are a
// silent no-op.
func (p *calendarStore) DeleteTodo(date, todoID string) error {
	return p.mutate(date, func(r *day.Record) {
		kept := r.Todos[:0]
		for _, t := range r.Todos {
			if t.ID != todoID {
				kept = append(kept, t)
			}
		}
		r.Todos = kept
	})
}

// AllEvents flattens every record's events into one slice. Order across
// dates is undefined; this feeds the reminder scan, never display.
func (p *calendarStore) AllEvents() []day.Event {
	p.mu.RLock()
	defer p.mu.RUnlock()
	all := make([]day.Event, 0)
	for _, r := range p.snap {
		all = append(all, r.Events...)
	}
	return all
}

// Subscribe registers a callback fired after every state change observed by
// this instance, whether it originated here, in a sibling instance, or in
// another process. The returned func cancels the subscription.
func (p *calendarStore) Subscribe(fn func()) (cancel func()) {
	p.subsMu.Lock()
	id := p.nextID
	p.nextID++
	p.subs[id] = fn
	p.subsMu.Unlock()
	return func() {
		p.subsMu.Lock()
		delete(p.subs, id)
		p.subsMu.Unlock()
	}
}

func (p *calendarStore) notify() {
	p.subsMu.Lock()
	fns := make([]func(), 0, len(p.subs))
	for _, fn := range p.subs {
		fns = append(fns, fn)
	}
	p.subsMu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// reload is invoked by the hub when a sibling instance saved.
func (p *calendarStore) reload() {
	if err := p.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "store: reload: %v\n", err)
		return
	}
	p.notify()
}

// Close unregisters this instance from the in-process broadcast hub.
func (p *calendarStore) Close() {
	hub.unregister(p)
}

// hub is the in-process broadcast channel: every store instance over the
// same base path observes every save, without the instances sharing a
// reference. The cross-process analogue lives in watch.go.
var hub = &storeHub{stores: map[string]map[*calendarStore]struct{}{}}

type storeHub struct {
	mu     sync.Mutex
	stores map[string]map[*calendarStore]struct{}
}

func (h *storeHub) register(p *calendarStore) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.stores[p.basePath]
	if !ok {
		set = map[*calendarStore]struct{}{}
		h.stores[p.basePath] = set
	}
	set[p] = struct{}{}
}

func (h *storeHub) unregister(p *calendarStore) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.stores[p.basePath], p)
}

// publish synchronously reloads every sibling sharing the writer's base
// path. Dispatch is immediate, so once publish returns no sibling can still
// observe stale state.
func (h *storeHub) publish(from *calendarStore) {
	h.mu.Lock()
	siblings := make([]*calendarStore, 0, len(h.stores[from.basePath]))
	for s := range h.stores[from.basePath] {
		if s != from {
			siblings = append(siblings, s)
		}
	}
	h.mu.Unlock()
	for _, s := range siblings {
		s.reload()
	}
}
