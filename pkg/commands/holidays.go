package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"harucal/pkg/holiday"
	"harucal/pkg/runner/holidays"
)

func addHolidays(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "holidays [year]",
		Short: "List public holidays for a year",
		Example: `
harucal holidays
harucal holidays 2027
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year := time.Now().Year()
			if len(args) == 1 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("year must be a number: %w", err)
				}
				year = parsed
			}

			cache, err := holiday.NewCache(nil)
			if err != nil {
				return err
			}

			s := holidays.List{
				Year:     year,
				Holidays: cache,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
