package repo

import (
	"testing"
	"time"

	"organizer/pkg/record"
)

func TestJournalCreateDefaultsDate(t *testing.T) {
	r := NewJournal(newMemStore())

	e, err := r.Create(JournalInput{Text: "  long walk  "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if e.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if e.Text != "long walk" {
		t.Fatalf("expected trimmed text, got %q", e.Text)
	}
	if want := time.Now().Format(record.LayoutISO); e.Date != want {
		t.Fatalf("expected today %s, got %s", want, e.Date)
	}
}

func TestJournalCreateRejectsEmptyText(t *testing.T) {
	r := NewJournal(newMemStore())

	if _, err := r.Create(JournalInput{Text: "   "}); err == nil {
		t.Fatalf("expected validation error for blank text")
	}
	items, err := r.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("rejected create should not write, got %d items", len(items))
	}
}

func TestJournalListFilters(t *testing.T) {
	r := NewJournal(newMemStore())

	if _, err := r.Create(JournalInput{Text: "rainy day", Date: "2024-06-05"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := r.Create(JournalInput{Text: "long walk", Date: "2024-06-06"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	byDate, err := r.List(JournalFilter{Date: "2024-06-05"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(byDate) != 1 || byDate[0].Text != "rainy day" {
		t.Fatalf("date filter: %+v", byDate)
	}

	byQuery, err := r.List(JournalFilter{Query: "WALK"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(byQuery) != 1 || byQuery[0].Text != "long walk" {
		t.Fatalf("query filter: %+v", byQuery)
	}

	// The query also matches the date string.
	byDateQuery, err := r.List(JournalFilter{Query: "06-05"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(byDateQuery) != 1 || byDateQuery[0].Text != "rainy day" {
		t.Fatalf("date substring query: %+v", byDateQuery)
	}
}

func TestJournalUpdatePreservesIdentity(t *testing.T) {
	r := NewJournal(newMemStore())

	e, err := r.Create(JournalInput{Text: "draft", Date: "2024-06-05"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := r.Update(e.ID, JournalInput{Text: "final"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.ID != e.ID {
		t.Fatalf("update changed id: %q != %q", got.ID, e.ID)
	}
	if got.Date != "2024-06-05" {
		t.Fatalf("empty date should keep the old one, got %q", got.Date)
	}
	if got.Updated == nil {
		t.Fatalf("expected updated timestamp")
	}
	if !got.Created.Equal(e.Created.Time) {
		t.Fatalf("update changed creation time")
	}
}

func TestJournalUpdateUnknownID(t *testing.T) {
	r := NewJournal(newMemStore())
	if _, err := r.Update("nope", JournalInput{Text: "x"}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestJournalDeleteExactlyOne(t *testing.T) {
	r := NewJournal(newMemStore())

	a, _ := r.Create(JournalInput{Text: "keep one"})
	b, _ := r.Create(JournalInput{Text: "remove"})
	c, _ := r.Create(JournalInput{Text: "keep two"})

	found, err := r.Delete(b.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !found {
		t.Fatalf("expected delete to find the entry")
	}

	items, err := r.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 survivors, got %d", len(items))
	}
	for _, e := range items {
		if e.ID != a.ID && e.ID != c.ID {
			t.Fatalf("unexpected survivor %q", e.ID)
		}
	}

	found, err = r.Delete("nope")
	if err != nil {
		t.Fatalf("delete missing: %v", err)
	}
	if found {
		t.Fatalf("expected not-found for unknown id")
	}
}

func TestJournalMigratesLegacyRecords(t *testing.T) {
	s := newMemStore()
	s.seed(JournalKey, `[{"text":"old","date":"2023-01-01","created":"2023-01-01T08:00:00Z"}]`)
	r := NewJournal(s)

	items, err := r.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(items))
	}
	if items[0].ID == "" {
		t.Fatalf("legacy record left without id")
	}
	assigned := items[0].ID

	// The assigned id is persisted, so the next read sees the same one.
	again, err := r.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if again[0].ID != assigned {
		t.Fatalf("migration not persisted: %q != %q", again[0].ID, assigned)
	}
}

func TestJournalListNewestFirst(t *testing.T) {
	s := newMemStore()
	s.seed(JournalKey, `[
		{"id":"a","text":"oldest","date":"2024-06-01","created":"2024-06-01T08:00:00Z"},
		{"id":"b","text":"newest","date":"2024-06-03","created":"2024-06-03T08:00:00Z"},
		{"id":"c","text":"middle","date":"2024-06-02","created":"2024-06-02T08:00:00Z"}
	]`)
	r := NewJournal(s)

	items, err := r.List(JournalFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"b", "c", "a"}
	for i, id := range want {
		if items[i].ID != id {
			t.Fatalf("position %d: got %q, want %q", i, items[i].ID, id)
		}
	}
}
