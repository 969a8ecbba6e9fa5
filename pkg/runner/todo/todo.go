// Package todo manages the daily to-do list.
package todo

import (
	"context"
	"fmt"

	"harucal/pkg/printers"
	"harucal/pkg/store"
)

type Add struct {
	Date string
	Text string

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return fmt.Errorf("can not add todo, no persistence")
	}
	if _, err := n.Persistence.AddTodo(n.Date, n.Text); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Day(n.Persistence.Day(n.Date), "")
	return nil
}

type Toggle struct {
	Date string
	ID   string

	Persistence store.Persistence
}

func (n *Toggle) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return fmt.Errorf("can not toggle todo, no persistence")
	}
	if err := n.Persistence.ToggleTodo(n.Date, n.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
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
		return fmt.Errorf("can not delete todo, no persistence")
	}
	if err := n.Persistence.DeleteTodo(n.Date, n.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.Day(n.Persistence.Day(n.Date), "")
	return nil
}
