package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"harucal/pkg/commands/options"
	"harucal/pkg/runner/goalset"
	"harucal/pkg/store"
)

func addGoal(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	until := ""

	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Set long-term goals and track streaks",
		Long: base.Wrap80("A goal adds a daily to-do for every day through its " +
			"end date. Completing the to-do each day builds a streak."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	set := &cobra.Command{
		Use:   "set [title]",
		Short: "Create a goal running from today through --until",
		Example: `
harucal goal set 매일 운동 --until=2026-12-31
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a goal title")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if until == "" {
				return errors.New("requires --until")
			}
			end, err := time.ParseInLocation("2006-1-2", until, time.Local)
			if err != nil {
				return err
			}
			from, err := oo.GetOn()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			defer p.Close()

			s := goalset.Set{
				Title:       strings.Join(args, " "),
				From:        from,
				Until:       end,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	set.Flags().StringVar(&until, "until", "", `Goal end date, example: --until="2026-12-31".`)
	options.AddOnArgs(set, oo)

	streak := &cobra.Command{
		Use:   "streak [title]",
		Short: "Show the current streak for a goal",
		Example: `
harucal goal streak 매일 운동
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a goal title")
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

			s := goalset.Streak{
				Title:       strings.Join(args, " "),
				On:          on,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddOnArgs(streak, oo)

	cmd.AddCommand(set, streak)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
