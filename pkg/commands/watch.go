package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"organizer/pkg/notify"
	"organizer/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the reminder loop in the foreground until interrupted.",
		Example: `
organizer watch
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(),
				os.Interrupt, syscall.SIGTERM)
			defer stop()

			s := watch.Watch{
				Scheduler: a.Scheduler(&notify.Terminal{}, &notify.Bell{}),
			}
			return s.Do(ctx)
		},
	}

	topLevel.AddCommand(cmd)
}
