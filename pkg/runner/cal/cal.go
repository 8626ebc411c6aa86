// Package cal provides the runner logic for the month calendar view.
package cal

import (
	"context"
	"errors"
	"time"

	"organizer/pkg/calendar"
	"organizer/pkg/printers"
)

// Show prints the density grid for one month and, when a day is selected,
// that day's events.
type Show struct {
	Year     int
	Month    time.Month
	Selected string // YYYY-MM-DD
	ShowID   bool

	Aggregator *calendar.Aggregator
}

func (n *Show) Do(ctx context.Context) error {
	if n.Aggregator == nil {
		return errors.New("can not show calendar, no aggregator")
	}

	view := calendar.NewView(time.Now())
	if n.Year != 0 {
		view.Year = n.Year
		view.Month = n.Month
	}
	if n.Selected != "" {
		view.SelectDate(n.Selected)
	}

	density, err := n.Aggregator.MonthDensity(view.Year, view.Month)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Month(view.Year, view.Month, density, view.SelectedDate)

	if view.SelectedDate != "" {
		events, err := n.Aggregator.Events.List(view.EventFilter())
		if err != nil {
			return err
		}
		pp.Title(view.SelectedDate)
		pp.Events(events...)
	}
	return nil
}
