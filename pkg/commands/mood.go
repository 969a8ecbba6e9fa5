package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"harucal/pkg/commands/options"
	"harucal/pkg/day"
	"harucal/pkg/mood"
	"harucal/pkg/runner/moodset"
	"harucal/pkg/store"
)

func addMood(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	long := strings.Builder{}
	long.WriteString("Record how a day felt, up to ")
	long.WriteString(fmt.Sprintf("%d moods per day.\n\nMood aliases:\n", day.MaxMoods))
	for _, m := range mood.DefaultMoods() {
		long.WriteString(fmt.Sprintf("%s: %s (%s)\n", m.Emoji, m.Key, m.Meaning))
	}

	cmd := &cobra.Command{
		Use:   "mood",
		Short: "Tag a day with a mood",
		Long:  long.String(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	add := &cobra.Command{
		Use:   "add [mood]",
		Short: "Add a mood to a day",
		Example: `
harucal mood add happy
harucal mood add 🌧️ --on=2026-3-1
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a mood alias or emoji")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			emoji, err := mood.ForAlias(args[0])
			if err != nil {
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

			s := moodset.Add{
				Date:        day.Key(on),
				Mood:        emoji,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	rm := &cobra.Command{
		Use:   "rm [index]",
		Short: "Remove a mood from a day by position",
		Example: `
harucal mood rm 0
harucal mood rm 1 --on=2026-3-1
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a mood position")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return fmt.Errorf("position must be a number: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			index, _ := strconv.Atoi(args[0])
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			defer p.Close()

			s := moodset.Remove{
				Date:        day.Key(on),
				Index:       index,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(add, oo)
	options.AddOnArgs(rm, oo)
	cmd.AddCommand(add, rm)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
