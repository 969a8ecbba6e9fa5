package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "harucal",
		Short: base.Wrap80("A personal calendar: day moods, events, to-dos, goals, and reminders."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addGet(topLevel)
	addMood(topLevel)
	addEvent(topLevel)
	addTodo(topLevel)
	addGoal(topLevel)
	addRemind(topLevel)
	addImport(topLevel)
	addHolidays(topLevel)
	addVersion(topLevel)
}
