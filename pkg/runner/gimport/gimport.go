// Package gimport pulls Google Calendar events into the local view.
package gimport

import (
	"context"
	"fmt"
	"time"

	"harucal/pkg/gcal"
	"harucal/pkg/printers"
	"harucal/pkg/store"
)

type Import struct {
	Token string
	From  time.Time
	To    time.Time
	Merge bool

	Persistence store.Persistence
	Client      *gcal.Client
}

func (n *Import) Do(ctx context.Context) error {
	if n.Token == "" {
		return fmt.Errorf("can not import, no access token")
	}

	client := n.Client
	if client == nil {
		client = gcal.New(ctx, n.Token)
	}

	events := client.Events(ctx, n.From, n.To)
	if len(events) == 0 {
		fmt.Println("no events found in range")
		return nil
	}

	pp := printers.PrettyPrint{}
	pp.Title(fmt.Sprintf("Google Calendar %s ~ %s", n.From.Format("2006-01-02"), n.To.Format("2006-01-02")))
	pp.Events(events...)

	if !n.Merge {
		return nil
	}
	if n.Persistence == nil {
		return fmt.Errorf("can not merge, no persistence")
	}
	for _, e := range events {
		if _, err := n.Persistence.AddEvent(e.Date, e); err != nil {
			return err
		}
	}
	fmt.Printf("merged %d events\n", len(events))
	return nil
}
