package options

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
)

// EventOptions
type EventOptions struct {
	At          string
	AllDay      bool
	Description string
}

func AddEventArgs(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().StringVarP(&o.At, "at", "t", "",
		`Start time for the event, 24h clock, example: --at="14:30".`)
	cmd.Flags().BoolVar(&o.AllDay, "all-day", false,
		"Mark the event as all-day (no start time).")
	cmd.Flags().StringVarP(&o.Description, "description", "m", "",
		"Optional event description.")
}

// Validate enforces that a timed event has a well-formed time and an
// all-day event has none.
func (o *EventOptions) Validate() error {
	if o.AllDay && o.At != "" {
		return errors.New("an all-day event can not have a start time")
	}
	if o.At != "" {
		if _, err := time.Parse("15:04", o.At); err != nil {
			return err
		}
	}
	return nil
}
