// Package remove provides the runner logic for deleting records by id.
package remove

import (
	"context"
	"errors"
	"fmt"

	"organizer/pkg/repo"
)

// Kind names the collection a removal targets.
type Kind string

const (
	KindJournal Kind = "journal"
	KindTask    Kind = "task"
	KindEvent   Kind = "event"
)

// Remove deletes one record from the collection named by Kind.
type Remove struct {
	Kind Kind
	ID   string

	Journal *repo.Journal
	Tasks   *repo.Tasks
	Events  *repo.Events
}

func (n *Remove) Do(ctx context.Context) error {
	var (
		found bool
		err   error
	)

	switch n.Kind {
	case KindJournal:
		if n.Journal == nil {
			return errors.New("can not remove, no repository")
		}
		found, err = n.Journal.Delete(n.ID)
	case KindTask:
		if n.Tasks == nil {
			return errors.New("can not remove, no repository")
		}
		found, err = n.Tasks.Delete(n.ID)
	case KindEvent:
		if n.Events == nil {
			return errors.New("can not remove, no repository")
		}
		found, err = n.Events.Delete(n.ID)
	default:
		return fmt.Errorf("unknown kind %q", n.Kind)
	}

	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no %s with id %q", n.Kind, n.ID)
	}

	fmt.Printf("removed %s %s\n", n.Kind, n.ID)
	return nil
}
