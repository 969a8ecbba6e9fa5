// Package goal expands long-term goals into daily to-dos and computes
// completion streaks over them.
package goal

import (
	"fmt"
	"strings"
	"time"

	"harucal/pkg/day"
	"harucal/pkg/store"
)

// Prefix marks a to-do as belonging to a goal.
const Prefix = "[목표] "

// Text returns the daily to-do text for a goal title.
func Text(title string) string {
	return Prefix + strings.TrimSpace(title)
}

// Apply adds the goal's daily to-do for every date from `from` through `to`
// inclusive and returns the number of days covered.
func Apply(p store.Persistence, title string, from, to time.Time) (int, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return 0, fmt.Errorf("goal: title required")
	}
	if to.Before(from) {
		return 0, fmt.Errorf("goal: end date %s is before start date %s", day.Key(to), day.Key(from))
	}

	text := Text(title)
	count := 0
	for current := from; !current.After(to); current = current.AddDate(0, 0, 1) {
		if _, err := p.AddTodo(day.Key(current), text); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// Streak counts consecutive days ending at today on which the goal's to-do
// exists and is completed. A day with the to-do missing or left open stops
// the count.
func Streak(snap store.Snapshot, title string, today time.Time) int {
	text := Text(title)
	streak := 0
	for current := today; ; current = current.AddDate(0, 0, -1) {
		if !completedOn(snap, text, day.Key(current)) {
			return streak
		}
		streak++
	}
}

func completedOn(snap store.Snapshot, text, date string) bool {
	r, ok := snap[date]
	if !ok {
		return false
	}
	for _, t := range r.Todos {
		if t.Text == text && t.Completed {
			return true
		}
	}
	return false
}
