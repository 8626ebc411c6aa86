// Package edit provides the runner logic for updating records in place.
package edit

import (
	"context"
	"errors"
	"time"

	"organizer/pkg/printers"
	"organizer/pkg/repo"
)

// Journal rewrites the text (and optionally date) of an entry.
type Journal struct {
	ID     string
	Text   string
	Date   string
	ShowID bool

	Repo *repo.Journal
}

func (n *Journal) Do(ctx context.Context) error {
	if n.Repo == nil {
		return errors.New("can not edit, no repository")
	}

	e, err := n.Repo.Update(n.ID, repo.JournalInput{Text: n.Text, Date: n.Date})
	if err != nil {
		return err
	}

	all, err := n.Repo.List(repo.JournalFilter{Date: e.Date})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Title(e.Date)
	pp.Journal(all...)
	return nil
}

// Task rewrites the title and priority of a task.
type Task struct {
	ID       string
	Title    string
	Priority string
	ShowID   bool

	Repo *repo.Tasks
}

func (n *Task) Do(ctx context.Context) error {
	if n.Repo == nil {
		return errors.New("can not edit, no repository")
	}

	if _, err := n.Repo.Update(n.ID, repo.TaskInput{Title: n.Title, Priority: n.Priority}); err != nil {
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

// Event rewrites an event. The reminder drops back to pending.
type Event struct {
	ID          string
	Title       string
	When        time.Time
	RemindMin   int
	DurationMin int
	ShowID      bool

	Repo *repo.Events
}

func (n *Event) Do(ctx context.Context) error {
	if n.Repo == nil {
		return errors.New("can not edit, no repository")
	}

	ev, err := n.Repo.Update(n.ID, repo.EventInput{
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
