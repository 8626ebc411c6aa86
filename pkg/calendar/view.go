package calendar

import (
	"fmt"
	"time"

	"organizer/pkg/repo"
)

// View holds the transient calendar interaction state: which month is shown
// and which day, if any, is selected. It is an explicit per-view object so
// the core stays testable without a UI harness; nothing reads selection from
// ambient globals.
type View struct {
	Year         int
	Month        time.Month
	SelectedDate string // YYYY-MM-DD, empty when nothing selected
	EditingID    string // record currently being edited, if any
}

// NewView starts at the month containing now, with no selection.
func NewView(now time.Time) *View {
	return &View{Year: now.Year(), Month: now.Month()}
}

// Select picks a day of the shown month and returns the resulting date.
// The selection deterministically drives the event repository's date filter
// via EventFilter.
func (v *View) Select(day int) string {
	v.SelectedDate = fmt.Sprintf("%04d-%02d-%02d", v.Year, int(v.Month), day)
	return v.SelectedDate
}

// SelectDate sets the selection directly from a YYYY-MM-DD string.
func (v *View) SelectDate(date string) {
	v.SelectedDate = date
}

// ClearSelection drops the active day selection.
func (v *View) ClearSelection() {
	v.SelectedDate = ""
}

// EventFilter is the event list filter implied by the current selection.
func (v *View) EventFilter() repo.EventFilter {
	return repo.EventFilter{Date: v.SelectedDate}
}

// Prev moves the view one month back.
func (v *View) Prev() {
	v.Month--
	if v.Month < time.January {
		v.Month = time.December
		v.Year--
	}
}

// Next moves the view one month forward.
func (v *View) Next() {
	v.Month++
	if v.Month > time.December {
		v.Month = time.January
		v.Year++
	}
}

// Title renders the shown month, e.g. "June 2024".
func (v *View) Title() string {
	return fmt.Sprintf("%s %d", v.Month, v.Year)
}
