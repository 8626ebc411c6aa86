package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"organizer/pkg/commands/options"
	"organizer/pkg/runner/add"
	"organizer/pkg/runner/edit"
	"organizer/pkg/runner/get"
	"organizer/pkg/runner/remove"
)

func addJournal(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "journal",
		Aliases: []string{"j"},
		Short:   "Work with journal entries.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addJournalAdd(cmd)
	addJournalGet(cmd)
	addJournalEdit(cmd)
	addJournalRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addJournalAdd(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a journal entry.",
		Example: `
organizer journal add slept well, long walk before lunch
organizer journal add --on=2024-06-05 rainy day
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			s := add.Journal{
				Text:   strings.Join(args, " "),
				Date:   do.GetOn(),
				ShowID: io.ShowID,
				Repo:   a.Journal,
			}
			return s.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, do)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addJournalGet(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	so := &options.SearchOptions{}
	io := &options.IDOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "List journal entries.",
		Example: `
organizer journal get
organizer journal get --on=today
organizer journal get --search=walk
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			s := get.Journal{
				Date:   do.GetOn(),
				Query:  so.Query,
				ShowID: io.ShowID,
				Repo:   a.Journal,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddOnArgs(cmd, do)
	options.AddSearchArgs(cmd, so)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addJournalEdit(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id> <text>",
		Short: "Rewrite a journal entry.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			s := edit.Journal{
				ID:     args[0],
				Text:   strings.Join(args[1:], " "),
				Date:   do.GetOn(),
				ShowID: io.ShowID,
				Repo:   a.Journal,
			}
			return s.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, do)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addJournalRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a journal entry.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			s := remove.Remove{
				Kind:    remove.KindJournal,
				ID:      args[0],
				Journal: a.Journal,
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
