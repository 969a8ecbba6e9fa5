// Package grid generates month view cells and the year display lookups.
package grid

import (
	"time"

	"harucal/pkg/day"
)

// TotalCells keeps every month view at 6 rows of 7 so layouts stay stable.
const TotalCells = 42

// Cell is one slot of the month grid.
type Cell struct {
	Date         time.Time
	Key          string
	CurrentMonth bool
	Today        bool
}

// Month returns the 42 cells for the month containing current, padded with
// the adjacent months. now decides which cell is marked today.
func Month(current, now time.Time) []Cell {
	year, month := current.Year(), current.Month()
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()

	cells := make([]Cell, 0, TotalCells)

	// Previous month padding back to Sunday.
	for i := int(first.Weekday()); i > 0; i-- {
		cells = append(cells, newCell(first.AddDate(0, 0, -i), false, now))
	}
	for i := 0; i < daysInMonth; i++ {
		cells = append(cells, newCell(first.AddDate(0, 0, i), true, now))
	}
	next := first.AddDate(0, 1, 0)
	for i := 0; len(cells) < TotalCells; i++ {
		cells = append(cells, newCell(next.AddDate(0, 0, i), false, now))
	}
	return cells
}

func newCell(t time.Time, currentMonth bool, now time.Time) Cell {
	return Cell{
		Date:         t,
		Key:          day.Key(t),
		CurrentMonth: currentMonth,
		Today:        sameDate(t, now),
	}
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// ZodiacYear describes a year in the sexagenary cycle.
type ZodiacYear struct {
	Name   string // e.g. 병오년
	Desc   string // e.g. 붉은 말의 해
	Animal string
	Emoji  string
	Color  string
}

type stem struct {
	name, color, desc string
}

type branch struct {
	name, animal, emoji string
}

// Ten heavenly stems indexed by year % 10 and twelve earthly branches
// indexed by year % 12.
var (
	stems = []stem{
		{"경", "White", "하얀"},
		{"신", "White", "하얀"},
		{"임", "Black", "검은"},
		{"계", "Black", "검은"},
		{"갑", "Blue", "푸른"},
		{"을", "Blue", "푸른"},
		{"병", "Red", "붉은"},
		{"정", "Red", "붉은"},
		{"무", "Yellow", "황금"},
		{"기", "Yellow", "황금"},
	}
	branches = []branch{
		{"신", "원숭이", "🐵"},
		{"유", "닭", "🐔"},
		{"술", "개", "🐶"},
		{"해", "돼지", "🐷"},
		{"자", "쥐", "🐭"},
		{"축", "소", "🐮"},
		{"인", "호랑이", "🐯"},
		{"묘", "토끼", "🐰"},
		{"진", "용", "🐲"},
		{"사", "뱀", "🐍"},
		{"오", "말", "🐴"},
		{"미", "양", "🐑"},
	}
)

// Zodiac returns the sexagenary cycle entry for a year.
func Zodiac(year int) ZodiacYear {
	s := stems[((year%10)+10)%10]
	b := branches[((year%12)+12)%12]
	return ZodiacYear{
		Name:   s.name + b.name + "년",
		Desc:   s.desc + " " + b.animal + "의 해",
		Animal: b.animal,
		Emoji:  b.emoji,
		Color:  s.color,
	}
}

// SeasonInfo is the display hint for a month's season.
type SeasonInfo struct {
	Name string
	Icon string
}

// Season maps a month to its season.
func Season(month time.Month) SeasonInfo {
	switch {
	case month >= time.March && month <= time.May:
		return SeasonInfo{Name: "Spring", Icon: "🌸"}
	case month >= time.June && month <= time.August:
		return SeasonInfo{Name: "Summer", Icon: "🌿"}
	case month >= time.September && month <= time.November:
		return SeasonInfo{Name: "Autumn", Icon: "🍁"}
	default:
		return SeasonInfo{Name: "Winter", Icon: "❄️"}
	}
}
