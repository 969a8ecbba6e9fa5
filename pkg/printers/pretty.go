package printers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"harucal/pkg/day"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca-0000-000000000000  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

// Day prints one date panel: holiday badge, moods, events, and to-dos.
func (pp *PrettyPrint) Day(r day.Record, holiday string) {
	pp.Title(r.Date)

	if holiday != "" {
		h := color.New(color.FgRed, color.Bold)
		_, _ = h.Printf("🇰🇷 %s\n", holiday)
	}
	if len(r.Moods) > 0 {
		fmt.Printf("%s\n", strings.Join(r.Moods, " "))
	}

	pp.Events(r.Events...)
	pp.Todos(r.Todos...)
}

// Events prints events sorted for display: all-day first, then by time.
// The order is computed here, never stored.
func (pp *PrettyPrint) Events(events ...day.Event) {
	if len(events) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n")
		return
	}

	sorted := append([]day.Event{}, events...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].AllDay != sorted[j].AllDay {
			return sorted[i].AllDay
		}
		return sorted[i].Time < sorted[j].Time
	})

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	c := color.New(color.FgCyan)
	f := color.New(color.Faint)

	for _, e := range sorted {
		if pp.ShowID {
			_, _ = y.Print(e.ID)
			_, _ = y.Print(strings.Repeat(" ", max(1, len(spacing)-len(e.ID))))
		}
		if e.AllDay {
			_, _ = c.Print("하루종일")
		} else {
			_, _ = c.Printf("   %s", e.Time)
		}
		_, _ = t.Printf("  %s", e.Title)
		if e.Description != "" {
			_, _ = f.Printf("  %s", e.Description)
		}
		_, _ = t.Println("")
	}
}

// Todos prints the daily to-do list with completion marks.
func (pp *PrettyPrint) Todos(todos ...day.Todo) {
	if len(todos) == 0 {
		return
	}

	t := color.New()
	done := color.New(color.Faint, color.CrossedOut)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, td := range todos {
		if pp.ShowID {
			_, _ = y.Print(td.ID)
			_, _ = y.Print(strings.Repeat(" ", max(1, len(spacing)-len(td.ID))))
		}
		if td.Completed {
			_, _ = t.Print("✘ ")
			_, _ = done.Println(td.Text)
		} else {
			_, _ = t.Printf("● %s\n", td.Text)
		}
	}
}

// Holidays prints a year's holiday table.
func (pp *PrettyPrint) Holidays(names map[string]string) {
	keys := make([]string, 0, len(names))
	for k := range names {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	table := uitable.New()
	table.AddRow("DATE", "HOLIDAY")
	for _, k := range keys {
		table.AddRow(k, names[k])
	}
	fmt.Println(table)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
