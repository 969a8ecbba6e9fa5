// Package holidays lists the public holidays of a year.
package holidays

import (
	"context"
	"fmt"
	"time"

	"harucal/pkg/day"
	"harucal/pkg/holiday"
	"harucal/pkg/printers"
)

type List struct {
	Year int

	Holidays *holiday.Cache
}

func (n *List) Do(ctx context.Context) error {
	if n.Holidays == nil {
		return fmt.Errorf("can not list holidays, no cache")
	}

	n.Holidays.EnsureYear(ctx, n.Year)

	names := map[string]string{}
	start := time.Date(n.Year, time.January, 1, 0, 0, 0, 0, time.Local)
	for t := start; t.Year() == n.Year; t = t.AddDate(0, 0, 1) {
		if name, ok := n.Holidays.Lookup(t); ok {
			names[day.Key(t)] = name
		}
	}

	pp := printers.PrettyPrint{}
	pp.Title(fmt.Sprintf("%d", n.Year))
	pp.Holidays(names)
	return nil
}
