package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"organizer/pkg/commands/options"
	"organizer/pkg/runner/add"
	"organizer/pkg/runner/edit"
	"organizer/pkg/runner/export"
	"organizer/pkg/runner/get"
	"organizer/pkg/runner/remove"
)

func addEvent(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "event",
		Aliases: []string{"e", "events"},
		Short:   "Work with scheduled events and reminders.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addEventAdd(cmd)
	addEventGet(cmd)
	addEventEdit(cmd)
	addEventRemove(cmd)
	addEventICS(cmd)

	topLevel.AddCommand(cmd)
}

func addEventAdd(topLevel *cobra.Command) {
	eo := &options.EventOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an event with a reminder.",
		Example: `
organizer event add dentist --on=2024-06-05 --at=15:30
organizer event add standup --on=today --at=09:00 --remind=5 --duration=15
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if eo.OnString == "today" {
				eo.OnString = todayISO()
			}
			when, err := eo.GetWhen()
			if err != nil {
				return err
			}
			a, err := loadApp()
			if err != nil {
				return err
			}
			s := add.Event{
				Title:       strings.Join(args, " "),
				When:        when,
				RemindMin:   eo.Remind,
				DurationMin: eo.Duration,
				ShowID:      io.ShowID,
				Repo:        a.Events,
			}
			return s.Do(context.Background())
		},
	}

	options.AddEventArgs(cmd, eo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addEventGet(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	io := &options.IDOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "List events, soonest first.",
		Example: `
organizer event get
organizer event get --on=today
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			s := get.Events{
				Date:   do.GetOn(),
				ShowID: io.ShowID,
				Repo:   a.Events,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddOnArgs(cmd, do)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addEventEdit(topLevel *cobra.Command) {
	eo := &options.EventOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id> <title>",
		Short: "Rewrite an event; its reminder becomes pending again.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if eo.OnString == "today" {
				eo.OnString = todayISO()
			}
			when, err := eo.GetWhen()
			if err != nil {
				return err
			}
			a, err := loadApp()
			if err != nil {
				return err
			}
			s := edit.Event{
				ID:          args[0],
				Title:       strings.Join(args[1:], " "),
				When:        when,
				RemindMin:   eo.Remind,
				DurationMin: eo.Duration,
				ShowID:      io.ShowID,
				Repo:        a.Events,
			}
			return s.Do(context.Background())
		},
	}

	options.AddEventArgs(cmd, eo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addEventRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete an event.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			s := remove.Remove{
				Kind:   remove.KindEvent,
				ID:     args[0],
				Events: a.Events,
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

func addEventICS(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	output := ""

	cmd := &cobra.Command{
		Use:   "ics [id]",
		Short: "Export one event or a whole day as an iCalendar file.",
		Example: `
organizer event ics 0190163d-8d3f
organizer event ics --on=2024-06-05 -o day.ics
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			s := export.ICS{
				Date:   do.GetOn(),
				Output: output,
				Repo:   a.Events,
			}
			if len(args) == 1 {
				s.ID = args[0]
			}
			return s.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, do)
	cmd.Flags().StringVarP(&output, "output", "o", "",
		`Write to this file ("auto" derives a name from the title).`)

	topLevel.AddCommand(cmd)
}
