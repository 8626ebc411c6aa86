// Package add provides the runner logic for creating records.
package add

import (
	"context"
	"errors"
	"time"

	"organizer/pkg/printers"
	"organizer/pkg/repo"
)

// Journal creates a journal entry and prints the resulting collection.
type Journal struct {
	Text   string
	Date   string
	ShowID bool

	Repo *repo.Journal
}

func (n *Journal) Do(ctx context.Context) error {
	if n.Repo == nil {
		return errors.New("can not add, no repository")
	}

	if _, err := n.Repo.Create(repo.JournalInput{Text: n.Text, Date: n.Date}); err != nil {
		return err
	}

	all, err := n.Repo.List(repo.JournalFilter{})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.TitleWithCount("journal", len(all))
	pp.Journal(all...)
	return nil
}

// Task creates a task and prints the resulting collection.
type Task struct {
	Title    string
	Priority string
	ShowID   bool

	Repo *repo.Tasks
}

func (n *Task) Do(ctx context.Context) error {
	if n.Repo == nil {
		return errors.New("can not add, no repository")
	}

	if _, err := n.Repo.Create(repo.TaskInput{Title: n.Title, Priority: n.Priority}); err != nil {
		return err
	}

	all, err := n.Repo.List(repo.TaskFilter{})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.TitleWithCount("tasks", len(all))
	pp.Tasks(all...)
	return nil
}

// Event creates an event and prints the events sharing its day.
type Event struct {
	Title       string
	When        time.Time
	RemindMin   int
	DurationMin int
	ShowID      bool

	Repo *repo.Events
}

func (n *Event) Do(ctx context.Context) error {
	if n.Repo == nil {
		return errors.New("can not add, no repository")
	}

	ev, err := n.Repo.Create(repo.EventInput{
		Title:       n.Title,
		When:        n.When,
		RemindMin:   n.RemindMin,
		DurationMin: n.DurationMin,
	})
	if err != nil {
		return err
	}

	day, err := n.Repo.List(repo.EventFilter{Date: ev.Day()})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Title(ev.Day())
	pp.Events(day...)
	return nil
}
