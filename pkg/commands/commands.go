// Package commands assembles the organizer command tree.
package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"go.uber.org/zap"

	"organizer/pkg/app"
	"organizer/pkg/logging"
)

var verbose bool

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "organizer",
		Short: base.Wrap80("Journal, events and tasks in a local store, with reminders."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addJournal(topLevel)
	addTask(topLevel)
	addEvent(topLevel)
	addCal(topLevel)
	addToday(topLevel)
	addWatch(topLevel)
	addBackup(topLevel)
	addTheme(topLevel)
	addSound(topLevel)
	addVersion(topLevel)
}

// loadApp opens the configured store and builds the repositories for one
// command invocation.
func loadApp() (*app.App, error) {
	log, err := logging.New(verbose)
	if err != nil {
		log = zap.NewNop()
	}
	return app.New(nil, log)
}
