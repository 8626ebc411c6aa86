package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"organizer/pkg/commands/options"
	"organizer/pkg/runner/cal"
)

func todayISO() string {
	return time.Now().Format("2006-01-02")
}

func addCal(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	io := &options.IDOptions{}
	month := ""

	cmd := &cobra.Command{
		Use:     "cal",
		Aliases: []string{"calendar"},
		Short:   "Show the month grid; days with events stand out.",
		Example: `
organizer cal
organizer cal --month=2024-06
organizer cal --on=2024-06-05
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}

			s := cal.Show{
				Selected:   do.GetOn(),
				ShowID:     io.ShowID,
				Aggregator: a.Calendar(),
			}
			if month != "" {
				m, err := time.Parse("2006-01", month)
				if err != nil {
					return fmt.Errorf("bad --month %q: %w", month, err)
				}
				s.Year = m.Year()
				s.Month = m.Month()
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "",
		`Show a specific month, example: --month="2024-06".`)
	options.AddOnArgs(cmd, do)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
