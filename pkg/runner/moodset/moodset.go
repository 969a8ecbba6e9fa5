// Package moodset adds and removes day mood tags.
package moodset

import (
	"context"
	"fmt"

	"harucal/pkg/day"
	"harucal/pkg/printers"
	"harucal/pkg/store"
)

type Add struct {
	Date string
	Mood string

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return fmt.Errorf("can not add mood, no persistence")
	}

	before := len(n.Persistence.Day(n.Date).Moods)
	if err := n.Persistence.AddMood(n.Date, n.Mood); err != nil {
		return err
	}
	after := n.Persistence.Day(n.Date)
	if len(after.Moods) == before {
		fmt.Printf("하루에 무드는 %d개까지만 기록할 수 있어요.\n", day.MaxMoods)
	}

	pp := printers.PrettyPrint{}
	pp.Day(after, "")
	return nil
}

type Remove struct {
	Date  string
	Index int

	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return fmt.Errorf("can not remove mood, no persistence")
	}
	if err := n.Persistence.RemoveMood(n.Date, n.Index); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Day(n.Persistence.Day(n.Date), "")
	return nil
}
