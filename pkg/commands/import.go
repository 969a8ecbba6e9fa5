package commands

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"harucal/pkg/runner/gimport"
	"harucal/pkg/store"
)

func addImport(topLevel *cobra.Command) {
	token := ""
	from := ""
	to := ""
	merge := false

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Read events from Google Calendar",
		Long: base.Wrap80("Fetches events from the primary Google Calendar " +
			"using a bearer token and shows them, optionally merging them into " +
			"the local calendar. The token is read from --token or the " +
			"HARUCAL_GOOGLE_TOKEN environment variable (a .env file is honored)."),
		Example: `
harucal import --from=2026-3-1 --to=2026-4-1
harucal import --merge
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env is fine; the variable may be set directly.
			_ = godotenv.Load()

			if token == "" {
				token = os.Getenv("HARUCAL_GOOGLE_TOKEN")
			}
			if token == "" {
				return errors.New("requires --token or HARUCAL_GOOGLE_TOKEN")
			}

			now := time.Now()
			start := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, time.Local)
			end := time.Date(now.Year(), now.Month()+2, 1, 0, 0, 0, 0, time.Local)
			var err error
			if from != "" {
				if start, err = time.ParseInLocation("2006-1-2", from, time.Local); err != nil {
					return err
				}
			}
			if to != "" {
				if end, err = time.ParseInLocation("2006-1-2", to, time.Local); err != nil {
					return err
				}
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			defer p.Close()

			s := gimport.Import{
				Token:       token,
				From:        start,
				To:          end,
				Merge:       merge,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Google OAuth bearer token.")
	cmd.Flags().StringVar(&from, "from", "", `Range start date, example: --from="2026-3-1". Defaults to last month.`)
	cmd.Flags().StringVar(&to, "to", "", `Range end date (exclusive). Defaults to next month's end.`)
	cmd.Flags().BoolVar(&merge, "merge", false, "Copy the fetched events into the local calendar.")
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
