package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"organizer/pkg/runner/porter"
)

func addBackup(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export, import or wipe the whole store.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addBackupExport(cmd)
	addBackupImport(cmd)
	addBackupWipe(cmd)

	topLevel.AddCommand(cmd)
}

func addBackupExport(topLevel *cobra.Command) {
	output := ""

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every collection as one JSON snapshot.",
		Example: `
organizer backup export
organizer backup export -o organizer-backup.json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			s := porter.Export{
				Output: output,
				Codec:  a.Backup(),
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "",
		"Write to this file instead of stdout.")

	topLevel.AddCommand(cmd)
}

func addBackupImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Restore collections from a snapshot, field by field.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			s := porter.Import{
				Input: args[0],
				Codec: a.Backup(),
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

func addBackupWipe(topLevel *cobra.Command) {
	yes := false

	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Delete the journal, events, tasks and settings.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !confirm("wipe all data? [y/N] ") {
				fmt.Println("aborted")
				return nil
			}
			a, err := loadApp()
			if err != nil {
				return err
			}
			s := porter.Wipe{
				Codec: a.Backup(),
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt.")

	topLevel.AddCommand(cmd)
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}
