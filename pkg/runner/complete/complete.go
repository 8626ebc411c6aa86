// Package complete provides the runner logic for toggling task completion.
package complete

import (
	"context"
	"errors"

	"organizer/pkg/printers"
	"organizer/pkg/repo"
)

// Toggle flips the done flag on a task by id.
type Toggle struct {
	ID     string
	ShowID bool

	Repo *repo.Tasks
}

func (n *Toggle) Do(ctx context.Context) error {
	if n.Repo == nil {
		return errors.New("can not complete, no repository")
	}

	if _, err := n.Repo.Toggle(n.ID); err != nil {
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
