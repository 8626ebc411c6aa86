package repo

import (
	"sort"
	"strings"
	"time"

	"organizer/pkg/id"
	"organizer/pkg/record"
	"organizer/pkg/store"
)

// Journal is the repository for journal entries.
type Journal struct {
	s store.Store
}

func NewJournal(s store.Store) *Journal {
	return &Journal{s: s}
}

// JournalInput carries the user-editable fields of an entry.
type JournalInput struct {
	Text string `validate:"required"`
	Date string // YYYY-MM-DD; empty means today
}

// JournalFilter narrows List results. Zero values match everything.
type JournalFilter struct {
	Date  string // exact date match
	Query string // case-insensitive substring over text and date
}

// All returns the collection in stored order, after the identifier
// migration pass.
func (r *Journal) All() ([]*record.JournalEntry, error) {
	return r.load()
}

// Create validates and stores a new entry, newest first.
func (r *Journal) Create(in JournalInput) (*record.JournalEntry, error) {
	in.Text = strings.TrimSpace(in.Text)
	if err := checkInput("journal", in); err != nil {
		return nil, err
	}
	if in.Date == "" {
		in.Date = time.Now().Format(record.LayoutISO)
	}

	e := &record.JournalEntry{
		ID:      id.New(),
		Text:    in.Text,
		Date:    in.Date,
		Created: record.Now(),
	}

	items, err := r.load()
	if err != nil {
		return nil, err
	}
	items = append([]*record.JournalEntry{e}, items...)
	if err := r.s.Save(JournalKey, items); err != nil {
		return nil, err
	}
	return e, nil
}

// Update rewrites the text and date of the entry with the given id,
// preserving its identifier and creation timestamp. Last writer wins.
func (r *Journal) Update(entryID string, in JournalInput) (*record.JournalEntry, error) {
	in.Text = strings.TrimSpace(in.Text)
	if err := checkInput("journal", in); err != nil {
		return nil, err
	}

	items, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, e := range items {
		if e.ID != entryID {
			continue
		}
		e.Text = in.Text
		if in.Date != "" {
			e.Date = in.Date
		}
		now := record.Now()
		e.Updated = &now
		if err := r.s.Save(JournalKey, items); err != nil {
			return nil, err
		}
		return e, nil
	}
	return nil, ErrNotFound
}

// Delete removes exactly the entry with the given id. found is false when no
// entry matched.
func (r *Journal) Delete(entryID string) (found bool, err error) {
	items, err := r.load()
	if err != nil {
		return false, err
	}
	kept := items[:0]
	for _, e := range items {
		if e.ID == entryID {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return false, nil
	}
	return true, r.s.Save(JournalKey, kept)
}

// List returns entries matching the filter, newest first.
func (r *Journal) List(f JournalFilter) ([]*record.JournalEntry, error) {
	items, err := r.load()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]*record.JournalEntry, 0, len(items))
	for _, e := range items {
		if f.Date != "" && e.Date != f.Date {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(e.Text), q) &&
			!strings.Contains(strings.ToLower(e.Date), q) {
			continue
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Created.After(out[j].Created.Time)
	})
	return out, nil
}

// Replace overwrites the whole collection, re-running the identifier
// migration first. Used by backup import.
func (r *Journal) Replace(items []*record.JournalEntry) error {
	record.EnsureIDs(items)
	return r.s.Save(JournalKey, items)
}

func (r *Journal) load() ([]*record.JournalEntry, error) {
	var items []*record.JournalEntry
	if err := r.s.Load(JournalKey, &items); err != nil {
		return nil, err
	}
	if record.EnsureIDs(items) {
		if err := r.s.Save(JournalKey, items); err != nil {
			return nil, err
		}
	}
	return items, nil
}
