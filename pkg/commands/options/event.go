package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"organizer/pkg/record"
)

// EventOptions
type EventOptions struct {
	OnString string
	AtString string
	Remind   int
	Duration int
}

func AddEventArgs(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify the event date, example: --on="2024-06-05".`)
	cmd.Flags().StringVar(&o.AtString, "at", "",
		`Specify the event time, example: --at="15:30".`)
	cmd.Flags().IntVar(&o.Remind, "remind", record.DefaultRemindMinutes,
		"Reminder lead time in minutes.")
	cmd.Flags().IntVar(&o.Duration, "duration", record.DefaultDurationMinutes,
		"Event duration in minutes, 0 for no end time.")
}

// GetWhen combines the date and time flags into one local instant.
func (o *EventOptions) GetWhen() (time.Time, error) {
	if o.OnString == "" || o.AtString == "" {
		return time.Time{}, fmt.Errorf("both --on and --at are required")
	}
	t, err := time.ParseInLocation(layoutISO+" 15:04", o.OnString+" "+o.AtString, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}
