package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"harucal/pkg/grid"
	"harucal/pkg/store"
)

const width = len("11 12 13 14 15 16 17") // an example week

// HolidayLookup resolves a date to a holiday name when one applies.
type HolidayLookup func(t time.Time) (string, bool)

// Month prints the month grid. Days carrying moods or events render bold,
// Sundays and holidays red, today inverted.
func (pp *PrettyPrint) Month(current time.Time, snap store.Snapshot, lookup HolidayLookup) {
	z := grid.Zodiac(current.Year())
	season := grid.Season(current.Month())

	tf := color.New(color.FgWhite, color.Italic)
	m := fmt.Sprintf("%s %d %s", current.Month().String(), current.Year(), season.Icon)
	mid := (width - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Printf("%s%s\n", strings.Repeat(" ", mid), m)
	_, _ = color.New(color.Faint).Printf("%s %s\n", z.Emoji, z.Desc)

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)
	sun := color.New(color.FgRed)
	sunB := color.New(color.FgRed, color.Bold)
	today := color.New(color.ReverseVideo, color.Bold)

	col := 0
	for _, cell := range grid.Month(current, time.Now()) {
		printer := l1
		if cell.CurrentMonth {
			r, tracked := snap[cell.Key]
			busy := tracked && !r.Empty()

			_, holiday := lookup(cell.Date)
			switch {
			case cell.Today:
				printer = today
			case holiday || cell.Date.Weekday() == time.Sunday:
				if busy {
					printer = sunB
				} else {
					printer = sun
				}
			case busy:
				printer = l2
			}
		}

		_, _ = printer.Printf("%2d", cell.Date.Day())
		fmt.Print(" ")

		col++
		if col == 7 {
			col = 0
			fmt.Print("\n")
		}
	}
	fmt.Print("\n")
}

// Year prints all twelve month grids of the year containing current.
func (pp *PrettyPrint) Year(current time.Time, snap store.Snapshot, lookup HolidayLookup) {
	then := time.Date(current.Year(), time.January, 1, 0, 0, 0, 0, time.Local)
	for i := 0; i < 12; i++ {
		pp.Month(then, snap, lookup)
		then = then.AddDate(0, 1, 0)
	}
}
