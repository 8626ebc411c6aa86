// Package export provides the runner logic for .ics calendar export.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"organizer/pkg/ics"
	"organizer/pkg/record"
	"organizer/pkg/repo"
)

// ICS renders one event (by id) or a whole day of events as an iCalendar
// document. Output names the target file; empty writes to stdout.
type ICS struct {
	ID     string
	Date   string // YYYY-MM-DD, used when ID is empty
	Output string

	Repo *repo.Events
}

func (n *ICS) Do(ctx context.Context) error {
	if n.Repo == nil {
		return errors.New("can not export, no repository")
	}

	var (
		events []*record.Event
		name   string
	)

	switch {
	case n.ID != "":
		ev, err := n.Repo.Get(n.ID)
		if err != nil {
			return err
		}
		events = []*record.Event{ev}
		name = ics.Filename(ev)
	case n.Date != "":
		all, err := n.Repo.List(repo.EventFilter{Date: n.Date})
		if err != nil {
			return err
		}
		if len(all) == 0 {
			return fmt.Errorf("no events on %s", n.Date)
		}
		events = all
		name = fmt.Sprintf("events-%s.ics", n.Date)
	default:
		return errors.New("need an event id or a date")
	}

	doc := ics.Build(time.Now(), events...)

	if n.Output == "" {
		fmt.Print(doc)
		return nil
	}
	out := n.Output
	if out == "auto" {
		out = name
	}
	if err := os.WriteFile(out, []byte(doc), 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", out)
	return nil
}
