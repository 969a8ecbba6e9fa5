package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"harucal/pkg/commands/options"
	"harucal/pkg/holiday"
	"harucal/pkg/runner/show"
	"harucal/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	io := &options.IDOptions{}
	follow := false

	cmd := &cobra.Command{
		Use:       "get [day|month|year]",
		Short:     "Show the day panel or a month/year grid",
		ValidArgs: []string{"day", "month", "year"},
		Example: `
harucal get
harucal get month
harucal get day --on=2026-3-1
harucal get month --watch
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := show.ModeDay
			if len(args) == 1 {
				switch args[0] {
				case "day":
				case "month":
					mode = show.ModeMonth
				case "year":
					mode = show.ModeYear
				default:
					return errors.New("expected one of day, month, year")
				}
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			defer p.Close()

			cache, err := holiday.NewCache(nil)
			if err != nil {
				fmt.Fprintf(os.Stderr, "holidays unavailable: %v\n", err)
			}

			on, err := oo.GetOn()
			if err != nil {
				return err
			}

			s := show.Show{
				Mode:        mode,
				On:          on,
				ShowID:      io.ShowID,
				Follow:      follow,
				Persistence: p,
				Holidays:    cache,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	cmd.Flags().BoolVarP(&follow, "watch", "w", false,
		"Keep the view open and refresh it whenever the calendar changes.")
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
