package grid

import (
	"testing"
	"time"
)

func TestMonthAlwaysFortyTwoCells(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		current := time.Date(2026, month, 15, 0, 0, 0, 0, time.Local)
		cells := Month(current, current)
		if len(cells) != TotalCells {
			t.Fatalf("%s: expected %d cells, got %d", month, TotalCells, len(cells))
		}
	}
}

func TestMonthPaddingAndToday(t *testing.T) {
	// March 2026 starts on a Sunday, so no previous-month padding.
	current := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local)
	cells := Month(current, current)

	if !cells[0].CurrentMonth || cells[0].Key != "2026-03-01" {
		t.Fatalf("expected grid to start on 2026-03-01, got %+v", cells[0])
	}
	if !cells[0].Today {
		t.Fatal("expected first cell marked today")
	}
	if cells[31].CurrentMonth || cells[31].Key != "2026-04-01" {
		t.Fatalf("expected next-month padding at cell 31, got %+v", cells[31])
	}

	// February 2026 starts on a Sunday too but has 28 days.
	feb := Month(time.Date(2026, time.February, 10, 0, 0, 0, 0, time.Local), current)
	if feb[0].Key != "2026-02-01" {
		t.Fatalf("expected february to start at 2026-02-01, got %s", feb[0].Key)
	}
	last := feb[TotalCells-1]
	if last.CurrentMonth || last.Date.Month() != time.March {
		t.Fatalf("expected trailing march padding, got %+v", last)
	}
}

func TestMonthYearOverflowPadding(t *testing.T) {
	// January grids can reach back into the previous year.
	cells := Month(time.Date(2027, time.January, 1, 0, 0, 0, 0, time.Local), time.Now())
	if cells[0].Date.Year() != 2026 {
		t.Fatalf("expected leading cells from 2026, got %d", cells[0].Date.Year())
	}
}

func TestZodiac(t *testing.T) {
	z := Zodiac(2026)
	if z.Name != "병오년" {
		t.Fatalf("expected 병오년 for 2026, got %q", z.Name)
	}
	if z.Animal != "말" || z.Emoji != "🐴" || z.Color != "Red" {
		t.Fatalf("bad zodiac for 2026: %#v", z)
	}
	if z.Desc != "붉은 말의 해" {
		t.Fatalf("bad desc: %q", z.Desc)
	}
}

func TestSeason(t *testing.T) {
	cases := map[time.Month]string{
		time.March:    "Spring",
		time.July:     "Summer",
		time.October:  "Autumn",
		time.December: "Winter",
		time.January:  "Winter",
	}
	for month, want := range cases {
		if got := Season(month).Name; got != want {
			t.Fatalf("%s: expected %s, got %s", month, want, got)
		}
	}
}
