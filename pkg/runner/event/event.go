// Package event adds and deletes calendar events.
package event

import (
	"context"
	"fmt"

	"harucal/pkg/day"
	"harucal/pkg/printers"
	"harucal/pkg/store"
)

type Add struct {
	Date        string
	Title       string
	Description string
	Time        string
	AllDay      bool

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return fmt.Errorf("can not add event, no persistence")
	}

	_, err := n.Persistence.AddEvent(n.Date, day.Event{
		Title:       n.Title,
		Description: n.Description,
		Time:        n.Time,
		AllDay:      n.AllDay,
	})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Day(n.Persistence.Day(n.Date), "")
	return nil
}

type Delete struct {
	Date string
	ID   string

	Persistence store.Persistence
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return fmt.Errorf("can not delete event, no persistence")
	}
	if err := n.Persistence.DeleteEvent(n.Date, n.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.Day(n.Persistence.Day(n.Date), "")
	return nil
}
