// Package get provides the runner logic for listing records.
package get

import (
	"context"
	"errors"
	"time"

	"organizer/pkg/printers"
	"organizer/pkg/repo"
)

// Journal lists journal entries, optionally filtered by date or search.
type Journal struct {
	Date   string
	Query  string
	ShowID bool

	Repo *repo.Journal
}

func (n *Journal) Do(ctx context.Context) error {
	if n.Repo == nil {
		return errors.New("can not get, no repository")
	}

	if n.Date == "today" {
		n.Date = time.Now().Format("2006-01-02")
	}

	all, err := n.Repo.List(repo.JournalFilter{Date: n.Date, Query: n.Query})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.TitleWithCount("journal", len(all))
	pp.Journal(all...)
	return nil
}

// Tasks lists tasks filtered by status and priority.
type Tasks struct {
	Status   string
	Priority string
	ShowID   bool

	Repo *repo.Tasks
}

func (n *Tasks) Do(ctx context.Context) error {
	if n.Repo == nil {
		return errors.New("can not get, no repository")
	}

	all, err := n.Repo.List(repo.TaskFilter{Status: n.Status, Priority: n.Priority})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.TitleWithCount("tasks", len(all))
	pp.Tasks(all...)
	return nil
}

// Events lists events, optionally filtered to one day.
type Events struct {
	Date   string
	ShowID bool

	Repo *repo.Events
}

func (n *Events) Do(ctx context.Context) error {
	if n.Repo == nil {
		return errors.New("can not get, no repository")
	}

	if n.Date == "today" {
		n.Date = time.Now().Format("2006-01-02")
	}

	all, err := n.Repo.List(repo.EventFilter{Date: n.Date})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.TitleWithCount("events", len(all))
	pp.Events(all...)
	return nil
}
