package day

import (
	"fmt"
	"strings"
	"time"
)

const (
	// KeyLayout is the canonical date key format used everywhere a date is
	// stored or looked up.
	KeyLayout = "2006-01-02"

	// TimeLayout is the 24h wall-clock format carried by timed events.
	TimeLayout = "15:04"

	// MaxMoods bounds the number of mood tags a single day can hold.
	MaxMoods = 2
)

// Key formats t as a date key.
func Key(t time.Time) string {
	return t.Format(KeyLayout)
}

// ParseKey parses a date key back into a local midnight time.
func ParseKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(KeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("day: bad date key %q: %w", key, err)
	}
	return t, nil
}

// Event is a single calendar event. Time is set if and only if AllDay is
// false; an all-day event carries no wall-clock time.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	Time        string `json:"time,omitempty"`
	AllDay      bool   `json:"isAllDay"`
}

// Minutes returns the event start as minutes since midnight. The second
// return is false for all-day events or malformed times.
func (e Event) Minutes() (int, bool) {
	if e.AllDay || e.Time == "" {
		return 0, false
	}
	t, err := time.Parse(TimeLayout, e.Time)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// Normalize enforces the time/all-day invariant in place.
func (e *Event) Normalize() {
	e.Title = strings.TrimSpace(e.Title)
	if e.AllDay {
		e.Time = ""
		return
	}
	if e.Time == "" {
		e.AllDay = true
	}
}

// Todo is a single daily to-do item.
type Todo struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Record aggregates everything stored for one calendar date.
type Record struct {
	Date   string   `json:"date"`
	Moods  []string `json:"moods"`
	Events []Event  `json:"events"`
	Todos  []Todo   `json:"todos,omitempty"`
}

// NewRecord returns the empty-shaped record for a date. Moods and Events are
// non-nil so callers can range over them without checks; Todos stays absent
// until the first to-do is added.
func NewRecord(date string) Record {
	return Record{
		Date:   date,
		Moods:  []string{},
		Events: []Event{},
	}
}

// Empty reports whether the record holds no data worth persisting.
func (r Record) Empty() bool {
	return len(r.Moods) == 0 && len(r.Events) == 0 && len(r.Todos) == 0
}

// Clone returns a deep copy so callers can transform a record without
// touching the snapshot it came from.
func (r Record) Clone() Record {
	out := Record{Date: r.Date}
	out.Moods = append([]string{}, r.Moods...)
	out.Events = append([]Event{}, r.Events...)
	if r.Todos != nil {
		out.Todos = append([]Todo{}, r.Todos...)
	}
	return out
}
