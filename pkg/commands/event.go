package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"harucal/pkg/commands/options"
	"harucal/pkg/day"
	"harucal/pkg/runner/event"
	"harucal/pkg/store"
)

func addEvent(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	eo := &options.EventOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "event",
		Short: "Manage calendar events",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	add := &cobra.Command{
		Use:   "add [title]",
		Short: "Add an event",
		Example: `
harucal event add a fun party --on=2026-12-31 --at=19:00
harucal event add 생일 --all-day
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an event title")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := eo.Validate(); err != nil {
				return err
			}
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			defer p.Close()

			s := event.Add{
				Date:        day.Key(on),
				Title:       strings.Join(args, " "),
				Description: eo.Description,
				Time:        eo.At,
				AllDay:      eo.AllDay || eo.At == "",
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	rm := &cobra.Command{
		Use:   "rm",
		Short: "Delete an event by id",
		Example: `
harucal event rm --id=171dff69-... --on=2026-12-31
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if io.ID == "" {
				return errors.New("requires --id; use 'harucal get --show-id' to find it")
			}
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			defer p.Close()

			s := event.Delete{
				Date:        day.Key(on),
				ID:          io.ID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(add, oo)
	options.AddEventArgs(add, eo)
	options.AddOnArgs(rm, oo)
	options.AddIDArgs(rm, io)
	cmd.AddCommand(add, rm)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
