package commands

import (
	"context"
	"os/signal"
	"syscall"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"harucal/pkg/remind"
	"harucal/pkg/runner/notify"
	"harucal/pkg/store"
)

func addRemind(topLevel *cobra.Command) {
	test := false
	title := ""
	body := ""

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Run the reminder scheduler",
		Long: base.Wrap80("Scans today's events once a minute and raises a " +
			"desktop notification when an event starts or is ten minutes away. " +
			"Runs until interrupted."),
		Example: `
harucal remind
harucal remind --test
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			defer p.Close()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			s := notify.Run{
				Test:        test,
				Title:       title,
				Body:        body,
				Persistence: p,
				Notifier:    remind.SystemNotifier{AppName: "harucal"},
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&test, "test", false, "Send a test notification and exit.")
	cmd.Flags().StringVar(&title, "title", "", "Title for the test notification.")
	cmd.Flags().StringVar(&body, "body", "", "Body for the test notification.")
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
