package repo

import (
	"sort"
	"strings"

	"organizer/pkg/id"
	"organizer/pkg/record"
	"organizer/pkg/store"
)

// Tasks is the repository for prioritized tasks.
type Tasks struct {
	s store.Store
}

func NewTasks(s store.Store) *Tasks {
	return &Tasks{s: s}
}

// TaskInput carries the user-editable fields of a task. Priority accepts
// free-form input and is normalized at the write boundary.
type TaskInput struct {
	Title    string `validate:"required"`
	Priority string
}

// Task status filter values.
const (
	StatusAll    = "all"
	StatusActive = "active"
	StatusDone   = "done"
)

// TaskFilter narrows List results. Status and Priority compose with a
// logical AND; empty or "all" values match everything.
type TaskFilter struct {
	Status   string // all | active | done
	Priority string // all | high | medium | low
}

func (f TaskFilter) match(t *record.Task) bool {
	switch f.Status {
	case "", StatusAll:
	case StatusActive:
		if t.Done {
			return false
		}
	case StatusDone:
		if !t.Done {
			return false
		}
	default:
		return false
	}
	if f.Priority != "" && f.Priority != "all" && string(t.Priority) != f.Priority {
		return false
	}
	return true
}

// All returns the collection in stored order, after the identifier
// migration pass.
func (r *Tasks) All() ([]*record.Task, error) {
	return r.load()
}

// Create validates and stores a new task, newest first.
func (r *Tasks) Create(in TaskInput) (*record.Task, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := checkInput("task", in); err != nil {
		return nil, err
	}

	t := &record.Task{
		ID:       id.New(),
		Title:    in.Title,
		Priority: record.NormalizePriority(in.Priority),
		Created:  record.Now(),
	}

	items, err := r.load()
	if err != nil {
		return nil, err
	}
	items = append([]*record.Task{t}, items...)
	if err := r.s.Save(TasksKey, items); err != nil {
		return nil, err
	}
	return t, nil
}

// Update rewrites the title and priority of the task with the given id.
func (r *Tasks) Update(taskID string, in TaskInput) (*record.Task, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := checkInput("task", in); err != nil {
		return nil, err
	}

	items, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, t := range items {
		if t.ID != taskID {
			continue
		}
		t.Title = in.Title
		t.Priority = record.NormalizePriority(in.Priority)
		now := record.Now()
		t.Updated = &now
		if err := r.s.Save(TasksKey, items); err != nil {
			return nil, err
		}
		return t, nil
	}
	return nil, ErrNotFound
}

// Toggle flips the completion flag of the task with the given id.
func (r *Tasks) Toggle(taskID string) (*record.Task, error) {
	items, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, t := range items {
		if t.ID != taskID {
			continue
		}
		t.Done = !t.Done
		now := record.Now()
		t.Updated = &now
		if err := r.s.Save(TasksKey, items); err != nil {
			return nil, err
		}
		return t, nil
	}
	return nil, ErrNotFound
}

// Delete removes exactly the task with the given id.
func (r *Tasks) Delete(taskID string) (found bool, err error) {
	items, err := r.load()
	if err != nil {
		return false, err
	}
	kept := items[:0]
	for _, t := range items {
		if t.ID == taskID {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return false, nil
	}
	return true, r.s.Save(TasksKey, kept)
}

// List returns tasks matching the filter: incomplete before complete
// (stable), then priority weight descending, then creation time descending.
func (r *Tasks) List(f TaskFilter) ([]*record.Task, error) {
	items, err := r.load()
	if err != nil {
		return nil, err
	}

	out := make([]*record.Task, 0, len(items))
	for _, t := range items {
		if f.match(t) {
			out = append(out, t)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Done != b.Done {
			return !a.Done
		}
		if aw, bw := a.Priority.Weight(), b.Priority.Weight(); aw != bw {
			return aw > bw
		}
		return a.Created.After(b.Created.Time)
	})
	return out, nil
}

// Replace overwrites the whole collection, re-running the identifier
// migration first. Used by backup import.
func (r *Tasks) Replace(items []*record.Task) error {
	record.EnsureIDs(items)
	return r.s.Save(TasksKey, items)
}

func (r *Tasks) load() ([]*record.Task, error) {
	var items []*record.Task
	if err := r.s.Load(TasksKey, &items); err != nil {
		return nil, err
	}
	if record.EnsureIDs(items) {
		if err := r.s.Save(TasksKey, items); err != nil {
			return nil, err
		}
	}
	return items, nil
}
