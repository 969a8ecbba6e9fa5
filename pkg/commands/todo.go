package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"harucal/pkg/commands/options"
	"harucal/pkg/day"
	"harucal/pkg/runner/todo"
	"harucal/pkg/store"
)

func addTodo(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage daily to-dos",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	add := &cobra.Command{
		Use:   "add [text]",
		Short: "Add a to-do to a day",
		Example: `
harucal todo add water the plants
harucal todo add 장보기 --on=2026-3-1
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires to-do text")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			defer p.Close()

			s := todo.Add{
				Date:        day.Key(on),
				Text:        strings.Join(args, " "),
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	done := &cobra.Command{
		Use:   "done",
		Short: "Toggle a to-do's completion by id",
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

			s := todo.Toggle{
				Date:        day.Key(on),
				ID:          io.ID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	rm := &cobra.Command{
		Use:   "rm",
		Short: "Delete a to-do by id",
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

			s := todo.Delete{
				Date:        day.Key(on),
				ID:          io.ID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(add, oo)
	options.AddOnArgs(done, oo)
	options.AddOnArgs(rm, oo)
	options.AddIDArgs(done, io)
	options.AddIDArgs(rm, io)
	cmd.AddCommand(add, done, rm)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
