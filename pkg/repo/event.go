package repo

import (
	"sort"
	"strings"
	"time"

	"organizer/pkg/id"
	"organizer/pkg/record"
	"organizer/pkg/store"
)

// Events is the repository for scheduled events.
type Events struct {
	s store.Store
}

func NewEvents(s store.Store) *Events {
	return &Events{s: s}
}

// EventInput carries the user-editable fields of an event.
type EventInput struct {
	Title       string    `validate:"required"`
	When        time.Time `validate:"required"`
	RemindMin   int       `validate:"gte=0"`
	DurationMin int       `validate:"gte=0"`
}

// EventFilter narrows List results. Date matches the event's local calendar
// day; empty matches everything.
type EventFilter struct {
	Date string // YYYY-MM-DD
}

// All returns the collection in stored order, after the identifier
// migration pass.
func (r *Events) All() ([]*record.Event, error) {
	return r.load()
}

// Get returns the event with the given id.
func (r *Events) Get(eventID string) (*record.Event, error) {
	items, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, ev := range items {
		if ev.ID == eventID {
			return ev, nil
		}
	}
	return nil, ErrNotFound
}

// Create validates and stores a new event, newest first.
func (r *Events) Create(in EventInput) (*record.Event, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := checkInput("event", in); err != nil {
		return nil, err
	}

	ev := &record.Event{
		ID:          id.New(),
		Title:       in.Title,
		When:        record.Timestamp{Time: in.When},
		RemindMin:   in.RemindMin,
		DurationMin: in.DurationMin,
	}

	items, err := r.load()
	if err != nil {
		return nil, err
	}
	items = append([]*record.Event{ev}, items...)
	if err := r.s.Save(EventsKey, items); err != nil {
		return nil, err
	}
	return ev, nil
}

// Update rewrites the event with the given id. Editing recreates the
// reminder: the notified flag drops back to pending.
func (r *Events) Update(eventID string, in EventInput) (*record.Event, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := checkInput("event", in); err != nil {
		return nil, err
	}

	items, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, ev := range items {
		if ev.ID != eventID {
			continue
		}
		ev.Title = in.Title
		ev.When = record.Timestamp{Time: in.When}
		ev.RemindMin = in.RemindMin
		ev.DurationMin = in.DurationMin
		ev.Notified = false
		if err := r.s.Save(EventsKey, items); err != nil {
			return nil, err
		}
		return ev, nil
	}
	return nil, ErrNotFound
}

// MarkNotified records that the reminder for the event fired. The flag
// transitions false to true at most once; marking an already-notified event
// is a no-op, so a scheduler retry cannot double-fire through the store.
func (r *Events) MarkNotified(eventID string) (*record.Event, error) {
	items, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, ev := range items {
		if ev.ID != eventID {
			continue
		}
		if ev.Notified {
			return ev, nil
		}
		ev.Notified = true
		if err := r.s.Save(EventsKey, items); err != nil {
			return nil, err
		}
		return ev, nil
	}
	return nil, ErrNotFound
}

// Delete removes exactly the event with the given id.
func (r *Events) Delete(eventID string) (found bool, err error) {
	items, err := r.load()
	if err != nil {
		return false, err
	}
	kept := items[:0]
	for _, ev := range items {
		if ev.ID == eventID {
			found = true
			continue
		}
		kept = append(kept, ev)
	}
	if !found {
		return false, nil
	}
	return true, r.s.Save(EventsKey, kept)
}

// List returns events matching the filter, strictly ordered by when
// ascending.
func (r *Events) List(f EventFilter) ([]*record.Event, error) {
	items, err := r.load()
	if err != nil {
		return nil, err
	}

	out := make([]*record.Event, 0, len(items))
	for _, ev := range items {
		if f.Date != "" && ev.Day() != f.Date {
			continue
		}
		out = append(out, ev)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].When.Before(out[j].When.Time)
	})
	return out, nil
}

// Replace overwrites the whole collection, re-running the identifier
// migration first. Used by backup import.
func (r *Events) Replace(items []*record.Event) error {
	record.EnsureIDs(items)
	return r.s.Save(EventsKey, items)
}

func (r *Events) load() ([]*record.Event, error) {
	var items []*record.Event
	if err := r.s.Load(EventsKey, &items); err != nil {
		return nil, err
	}
	if record.EnsureIDs(items) {
		if err := r.s.Save(EventsKey, items); err != nil {
			return nil, err
		}
	}
	return items, nil
}
