// Package today provides the runner logic for the "today" summary view.
package today

import (
	"context"
	"errors"
	"time"

	"github.com/fatih/color"

	"organizer/pkg/calendar"
	"organizer/pkg/printers"
)

// Show prints today's events and the top open tasks.
type Show struct {
	ShowID bool

	Aggregator *calendar.Aggregator
}

func (n *Show) Do(ctx context.Context) error {
	if n.Aggregator == nil {
		return errors.New("can not show today, no aggregator")
	}

	now := time.Now()
	summary, err := n.Aggregator.Today(now)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Title(now.Format("Monday, January 2"))

	h := color.New(color.Italic)
	_, _ = h.Println("events")
	pp.Events(summary.Events...)

	_, _ = h.Println("tasks")
	pp.Tasks(summary.Tasks...)
	return nil
}
