// Package calendar derives month-density and day views from the event and
// task repositories.
package calendar

import (
	"time"

	"organizer/pkg/record"
	"organizer/pkg/repo"
)

// Aggregator computes calendar views over the repositories. It holds no
// state of its own; view state lives in View.
type Aggregator struct {
	Events *repo.Events
	Tasks  *repo.Tasks
}

// MonthDensity tallies events per day of the given month, truncating each
// event's instant to its local calendar day. Days without events are absent
// from the map.
func (a *Aggregator) MonthDensity(year int, month time.Month) (map[int]int, error) {
	events, err := a.Events.List(repo.EventFilter{})
	if err != nil {
		return nil, err
	}

	density := make(map[int]int)
	for _, ev := range events {
		d := ev.When.Local()
		if d.Year() == year && d.Month() == month {
			density[d.Day()]++
		}
	}
	return density, nil
}

// TodaySummary is the "today" view: the day's events plus the top few
// incomplete tasks.
type TodaySummary struct {
	Date   string
	Events []*record.Event
	Tasks  []*record.Task
}

// todayTaskLimit caps how many open tasks the today view surfaces.
const todayTaskLimit = 3

// Today builds the summary for the local calendar day of now. Events come
// back ordered by when ascending; tasks by priority weight descending, then
// newest first.
func (a *Aggregator) Today(now time.Time) (*TodaySummary, error) {
	day := now.Local().Format(record.LayoutISO)

	events, err := a.Events.List(repo.EventFilter{Date: day})
	if err != nil {
		return nil, err
	}

	tasks, err := a.Tasks.List(repo.TaskFilter{Status: repo.StatusActive})
	if err != nil {
		return nil, err
	}
	if len(tasks) > todayTaskLimit {
		tasks = tasks[:todayTaskLimit]
	}

	return &TodaySummary{Date: day, Events: events, Tasks: tasks}, nil
}
