package options

import (
	"time"

	"github.com/spf13/cobra"
)

const layoutISO = "2006-01-02"

// DateOptions captures a day filter shared by journal and event listings.
type DateOptions struct {
	On string
}

func AddOnArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVar(&o.On, "on", "",
		`Filter to one day, example: --on="2024-06-05" (or "today").`)
}

// GetOn resolves the flag, mapping "today" to the current local day.
func (o *DateOptions) GetOn() string {
	if o.On == "today" {
		return time.Now().Format(layoutISO)
	}
	return o.On
}

// TaskFilterOptions captures the composable task filters.
type TaskFilterOptions struct {
	Status   string
	Priority string
}

func AddTaskFilterArgs(cmd *cobra.Command, o *TaskFilterOptions) {
	cmd.Flags().StringVarP(&o.Status, "status", "s", "all",
		"Filter by status: all, active or done.")
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "all",
		"Filter by priority: all, high, medium or low.")
}

// SearchOptions captures the journal substring search.
type SearchOptions struct {
	Query string
}

func AddSearchArgs(cmd *cobra.Command, o *SearchOptions) {
	cmd.Flags().StringVarP(&o.Query, "search", "q", "",
		"Case-insensitive search over entry text and date.")
}
