// Package show renders the day panel and month/year grids.
package show

import (
	"context"
	"fmt"
	"time"

	"harucal/pkg/day"
	"harucal/pkg/goal"
	"harucal/pkg/holiday"
	"harucal/pkg/printers"
	"harucal/pkg/store"
)

// Mode selects which view to render.
type Mode int

const (
	ModeDay Mode = iota
	ModeMonth
	ModeYear
)

type Show struct {
	Mode   Mode
	On     time.Time
	ShowID bool
	Follow bool

	Persistence store.Persistence
	Holidays    *holiday.Cache
}

func (n *Show) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return fmt.Errorf("can not show, no persistence")
	}

	if n.Holidays != nil {
		n.Holidays.EnsureAround(ctx, n.On.Year())
	}

	n.render()
	if !n.Follow {
		return nil
	}

	// Keep the view current as this or any other process writes.
	events, err := n.Persistence.Watch(ctx)
	if err != nil {
		return err
	}
	cancel := n.Persistence.Subscribe(n.render)
	defer cancel()

	return followEvents(ctx, events, n.render)
}

// followEvents re-renders on storage events until the stream ends. Snapshot
// changes already render through the store subscription; rendering them here
// too would draw the view twice per change.
func followEvents(ctx context.Context, events <-chan store.Event, render func()) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case evt, ok := <-events:
			if !ok {
				return nil
			}
			if evt.Type == store.EventStorageChanged {
				render()
			}
		}
	}
}

func (n *Show) render() {
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	lookup := n.lookup()

	fmt.Println("")
	switch n.Mode {
	case ModeMonth:
		pp.Month(n.On, n.Persistence.SnapshotNow(), lookup)
	case ModeYear:
		pp.Year(n.On, n.Persistence.SnapshotNow(), lookup)
	default:
		r := n.Persistence.Day(day.Key(n.On))
		name, _ := lookup(n.On)
		pp.Day(r, name)
		n.printStreaks(r)
	}
}

// printStreaks reports the running streak for any goal to-do completed on
// the shown day.
func (n *Show) printStreaks(r day.Record) {
	for _, t := range r.Todos {
		if !t.Completed || len(t.Text) <= len(goal.Prefix) || t.Text[:len(goal.Prefix)] != goal.Prefix {
			continue
		}
		title := t.Text[len(goal.Prefix):]
		streak := goal.Streak(n.Persistence.SnapshotNow(), title, n.On)
		if streak > 1 {
			fmt.Printf("🏆 %s: %d일 연속\n", title, streak)
		}
	}
}

func (n *Show) lookup() printers.HolidayLookup {
	if n.Holidays == nil {
		return func(time.Time) (string, bool) { return "", false }
	}
	return n.Holidays.Lookup
}
