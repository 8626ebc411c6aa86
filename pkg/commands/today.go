package commands

import (
	"context"

	"github.com/spf13/cobra"

	"organizer/pkg/commands/options"
	"organizer/pkg/runner/today"
)

func addToday(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Today's events and the top open tasks.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			s := today.Show{
				ShowID:     io.ShowID,
				Aggregator: a.Calendar(),
			}
			return s.Do(context.Background())
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
