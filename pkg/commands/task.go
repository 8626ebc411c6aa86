package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"organizer/pkg/commands/options"
	"organizer/pkg/runner/add"
	"organizer/pkg/runner/complete"
	"organizer/pkg/runner/edit"
	"organizer/pkg/runner/get"
	"organizer/pkg/runner/remove"
)

func addTask(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"t", "tasks"},
		Short:   "Work with prioritized tasks.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTaskAdd(cmd)
	addTaskGet(cmd)
	addTaskDone(cmd)
	addTaskEdit(cmd)
	addTaskRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addTaskAdd(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	priority := "medium"

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task.",
		Example: `
organizer task add water the plants
organizer task add -p high renew passport
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			s := add.Task{
				Title:    strings.Join(args, " "),
				Priority: priority,
				ShowID:   io.ShowID,
				Repo:     a.Tasks,
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&priority, "priority", "p", "medium",
		"Task priority: high, medium or low.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addTaskGet(topLevel *cobra.Command) {
	fo := &options.TaskFilterOptions{}
	io := &options.IDOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "List tasks, open before done, highest priority first.",
		Example: `
organizer task get
organizer task get --status=active --priority=high
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			s := get.Tasks{
				Status:   fo.Status,
				Priority: fo.Priority,
				ShowID:   io.ShowID,
				Repo:     a.Tasks,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddTaskFilterArgs(cmd, fo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addTaskDone(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "done <id>",
		Aliases: []string{"toggle"},
		Short:   "Toggle a task's completion flag.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			s := complete.Toggle{
				ID:     args[0],
				ShowID: io.ShowID,
				Repo:   a.Tasks,
			}
			return s.Do(context.Background())
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addTaskEdit(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	priority := "medium"

	cmd := &cobra.Command{
		Use:   "edit <id> <title>",
		Short: "Rewrite a task's title and priority.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			s := edit.Task{
				ID:       args[0],
				Title:    strings.Join(args[1:], " "),
				Priority: priority,
				ShowID:   io.ShowID,
				Repo:     a.Tasks,
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&priority, "priority", "p", "medium",
		"Task priority: high, medium or low.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addTaskRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a task.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			s := remove.Remove{
				Kind:  remove.KindTask,
				ID:    args[0],
				Tasks: a.Tasks,
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
