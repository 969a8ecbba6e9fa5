package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"harucal/pkg/day"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string { return t.path }
func (t testConfig) Country() string  { return "KR" }

func load(t *testing.T, base string) Persistence {
	t.Helper()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	t.Cleanup(p.Close)
	return p
}

func TestDayBeforeAnyWrite(t *testing.T) {
	p := load(t, t.TempDir())

	r := p.Day("2026-05-05")
	if r.Date != "2026-05-05" {
		t.Fatalf("expected date key echoed, got %q", r.Date)
	}
	if r.Moods == nil || len(r.Moods) != 0 {
		t.Fatalf("expected empty moods, got %v", r.Moods)
	}
	if r.Events == nil || len(r.Events) != 0 {
		t.Fatalf("expected empty events, got %v", r.Events)
	}
	if r.Todos != nil {
		t.Fatal("expected absent todos")
	}
	if len(p.SnapshotNow()) != 0 {
		t.Fatal("reading must not create records")
	}
}

func TestMoodCapIsSilent(t *testing.T) {
	p := load(t, t.TempDir())
	date := "2026-01-10"

	for _, m := range []string{"😊", "😢", "😡", "🎉"} {
		if err := p.AddMood(date, m); err != nil {
			t.Fatalf("add mood: %v", err)
		}
	}

	moods := p.Day(date).Moods
	if !reflect.DeepEqual(moods, []string{"😊", "😢"}) {
		t.Fatalf("expected first two adds kept in order, got %v", moods)
	}
}

func TestRemoveMoodOutOfRange(t *testing.T) {
	p := load(t, t.TempDir())
	date := "2026-01-10"
	if err := p.AddMood(date, "😊"); err != nil {
		t.Fatalf("add mood: %v", err)
	}
	if err := p.RemoveMood(date, 5); err != nil {
		t.Fatalf("remove mood: %v", err)
	}
	if err := p.RemoveMood(date, -1); err != nil {
		t.Fatalf("remove mood: %v", err)
	}
	if got := p.Day(date).Moods; len(got) != 1 {
		t.Fatalf("expected mood kept, got %v", got)
	}
	if err := p.RemoveMood(date, 0); err != nil {
		t.Fatalf("remove mood: %v", err)
	}
	if got := p.Day(date).Moods; len(got) != 0 {
		t.Fatalf("expected mood removed, got %v", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	base := t.TempDir()
	p := load(t, base)

	snap := Snapshot{
		"2026-02-14": {
			Date:  "2026-02-14",
			Moods: []string{"🥰"},
			Events: []day.Event{
				{ID: "e1", Title: "dinner", Date: "2026-02-14", Time: "19:00"},
			},
			Todos: []day.Todo{{ID: "t1", Text: "buy flowers"}},
		},
	}
	if err := p.Save(snap); err != nil {
		t.Fatalf("save: %v", err)
	}

	// A freshly mounted instance over the same backing must see the same
	// state without sharing a reference.
	fresh := load(t, base)
	if !reflect.DeepEqual(fresh.SnapshotNow(), snap) {
		t.Fatalf("round trip mismatch:\n got %#v\nwant %#v", fresh.SnapshotNow(), snap)
	}
}

func TestAddDeleteEventIsIdentity(t *testing.T) {
	p := load(t, t.TempDir())
	date := "2026-03-03"

	if _, err := p.AddEvent(date, day.Event{Title: "keep me", AllDay: true}); err != nil {
		t.Fatalf("add event: %v", err)
	}
	before := p.Day(date).Events

	e, err := p.AddEvent(date, day.Event{Title: "transient", Time: "12:00"})
	if err != nil {
		t.Fatalf("add event: %v", err)
	}
	if e.ID == "" || e.Date != date {
		t.Fatalf("expected stamped id and date, got %#v", e)
	}
	if err := p.DeleteEvent(date, e.ID); err != nil {
		t.Fatalf("delete event: %v", err)
	}

	if !reflect.DeepEqual(p.Day(date).Events, before) {
		t.Fatalf("add/delete should be identity, got %v", p.Day(date).Events)
	}

	// Deleting an unknown id is a silent no-op.
	if err := p.DeleteEvent(date, "nope"); err != nil {
		t.Fatalf("delete unknown: %v", err)
	}
}

func TestAllDayEventStoredWithoutTime(t *testing.T) {
	p := load(t, t.TempDir())
	e, err := p.AddEvent("2026-04-01", day.Event{Title: "X", AllDay: true})
	if err != nil {
		t.Fatalf("add event: %v", err)
	}
	if e.Time != "" || !e.AllDay {
		t.Fatalf("expected all-day without time, got %#v", e)
	}
}

func TestTodos(t *testing.T) {
	p := load(t, t.TempDir())
	date := "2026-06-01"

	td, err := p.AddTodo(date, "water the plants")
	if err != nil {
		t.Fatalf("add todo: %v", err)
	}
	if err := p.ToggleTodo(date, td.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if got := p.Day(date).Todos; !got[0].Completed {
		t.Fatalf("expected completed, got %#v", got)
	}
	if err := p.ToggleTodo(date, "unknown"); err != nil {
		t.Fatalf("toggle unknown: %v", err)
	}
	if err := p.DeleteTodo(date, td.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := p.Day(date).Todos; len(got) != 0 {
		t.Fatalf("expected no todos, got %#v", got)
	}
}

func TestCorruptSnapshotLoadsEmpty(t *testing.T) {
	base := t.TempDir()
	if err := os.WriteFile(filepath.Join(base, "calendar"), []byte("not json{"), 0o644); err != nil {
		t.Fatalf("seed corrupt blob: %v", err)
	}

	p := load(t, base)
	if len(p.SnapshotNow()) != 0 {
		t.Fatalf("expected empty state, got %v", p.SnapshotNow())
	}
}

func TestWrongShapeSnapshotLoadsEmpty(t *testing.T) {
	base := t.TempDir()
	if err := os.WriteFile(filepath.Join(base, "calendar"), []byte(`["list","not","object"]`), 0o644); err != nil {
		t.Fatalf("seed blob: %v", err)
	}

	p := load(t, base)
	if len(p.SnapshotNow()) != 0 {
		t.Fatalf("expected empty state, got %v", p.SnapshotNow())
	}
}

func TestSiblingInstancesObserveWrites(t *testing.T) {
	base := t.TempDir()
	a := load(t, base)
	b := load(t, base)

	notified := 0
	cancel := b.Subscribe(func() { notified++ })
	defer cancel()

	if err := a.AddMood("2026-07-07", "🔥"); err != nil {
		t.Fatalf("add mood: %v", err)
	}

	// The broadcast is synchronous; b must already be current.
	if got := b.Day("2026-07-07").Moods; !reflect.DeepEqual(got, []string{"🔥"}) {
		t.Fatalf("sibling did not observe write, got %v", got)
	}
	if notified == 0 {
		t.Fatal("subscriber was not notified")
	}

	cancel()
	seen := notified
	if err := a.AddMood("2026-07-07", "😴"); err != nil {
		t.Fatalf("add mood: %v", err)
	}
	if notified != seen {
		t.Fatal("cancelled subscriber must not fire")
	}
}

func TestSiblingSeesWritesAfterEarlierRead(t *testing.T) {
	base := t.TempDir()
	a := load(t, base)
	b := load(t, base)

	if err := a.AddMood("2026-09-09", "😊"); err != nil {
		t.Fatalf("add mood: %v", err)
	}
	// b reads the snapshot here; later reloads must come from disk, not from
	// a read cache pinned to this value.
	if got := b.Day("2026-09-09").Moods; !reflect.DeepEqual(got, []string{"😊"}) {
		t.Fatalf("first write not observed, got %v", got)
	}

	if err := a.AddMood("2026-09-09", "😴"); err != nil {
		t.Fatalf("add mood: %v", err)
	}
	if got := b.Day("2026-09-09").Moods; !reflect.DeepEqual(got, []string{"😊", "😴"}) {
		t.Fatalf("sibling stale after earlier read, got %v", got)
	}

	if err := b.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := b.Day("2026-09-09").Moods; !reflect.DeepEqual(got, []string{"😊", "😴"}) {
		t.Fatalf("explicit load still stale, got %v", got)
	}
}

func TestSaveCopiesCallerSnapshot(t *testing.T) {
	p := load(t, t.TempDir())

	snap := Snapshot{
		"2026-10-10": {Date: "2026-10-10", Moods: []string{"😊"}, Events: []day.Event{}},
	}
	if err := p.Save(snap); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Mutations through the caller's reference must not leak into the store.
	snap["2026-10-10"].Moods[0] = "😡"
	snap["2026-10-11"] = day.NewRecord("2026-10-11")

	if got := p.Day("2026-10-10").Moods[0]; got != "😊" {
		t.Fatalf("store aliased the caller's mood slice, got %q", got)
	}
	if got := len(p.SnapshotNow()); got != 1 {
		t.Fatalf("store aliased the caller's map, got %d records", got)
	}
}

func TestAllEventsFlattens(t *testing.T) {
	p := load(t, t.TempDir())
	if _, err := p.AddEvent("2026-01-01", day.Event{Title: "a", Time: "09:00"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := p.AddEvent("2026-01-02", day.Event{Title: "b", AllDay: true}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if got := len(p.AllEvents()); got != 2 {
		t.Fatalf("expected 2 events, got %d", got)
	}
}
