package repo

import (
	"testing"

	"organizer/pkg/record"
)

func TestTaskCreateNormalizesPriority(t *testing.T) {
	r := NewTasks(newMemStore())

	tk, err := r.Create(TaskInput{Title: "renew passport", Priority: "URGENT"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if tk.Priority != record.PriorityMedium {
		t.Fatalf("unknown priority should become medium, got %q", tk.Priority)
	}
	if tk.Done {
		t.Fatalf("new task should start incomplete")
	}
}

func TestTaskListOrder(t *testing.T) {
	s := newMemStore()
	s.seed(TasksKey, `[
		{"id":"done-high","title":"done high","priority":"high","done":true,"created":"2024-06-03T08:00:00Z"},
		{"id":"open-low","title":"open low","priority":"low","done":false,"created":"2024-06-04T08:00:00Z"},
		{"id":"open-high-old","title":"open high old","priority":"high","done":false,"created":"2024-06-01T08:00:00Z"},
		{"id":"open-high-new","title":"open high new","priority":"high","done":false,"created":"2024-06-02T08:00:00Z"},
		{"id":"open-med","title":"open med","priority":"medium","done":false,"created":"2024-06-05T08:00:00Z"}
	]`)
	r := NewTasks(s)

	items, err := r.List(TaskFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	want := []string{"open-high-new", "open-high-old", "open-med", "open-low", "done-high"}
	if len(items) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(items))
	}
	for i, id := range want {
		if items[i].ID != id {
			t.Fatalf("position %d: got %q, want %q", i, items[i].ID, id)
		}
	}
}

func TestTaskFilterCompose(t *testing.T) {
	s := newMemStore()
	s.seed(TasksKey, `[
		{"id":"a","title":"a","priority":"high","done":false,"created":"2024-06-01T08:00:00Z"},
		{"id":"b","title":"b","priority":"high","done":true,"created":"2024-06-02T08:00:00Z"},
		{"id":"c","title":"c","priority":"low","done":false,"created":"2024-06-03T08:00:00Z"}
	]`)
	r := NewTasks(s)

	items, err := r.List(TaskFilter{Status: StatusActive, Priority: "high"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].ID != "a" {
		t.Fatalf("status AND priority should leave only a: %+v", items)
	}

	items, err = r.List(TaskFilter{Status: StatusDone})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].ID != "b" {
		t.Fatalf("done filter: %+v", items)
	}

	items, err = r.List(TaskFilter{Status: StatusAll, Priority: "all"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("all/all should match everything, got %d", len(items))
	}
}

func TestTaskToggle(t *testing.T) {
	r := NewTasks(newMemStore())

	tk, err := r.Create(TaskInput{Title: "water plants"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := r.Toggle(tk.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !got.Done {
		t.Fatalf("expected done after first toggle")
	}

	got, err = r.Toggle(tk.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if got.Done {
		t.Fatalf("expected open after second toggle")
	}

	if _, err := r.Toggle("nope"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTaskDeleteExactlyOne(t *testing.T) {
	r := NewTasks(newMemStore())

	a, _ := r.Create(TaskInput{Title: "first"})
	b, _ := r.Create(TaskInput{Title: "second"})

	found, err := r.Delete(a.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !found {
		t.Fatalf("expected delete to find the task")
	}

	items, err := r.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(items) != 1 || items[0].ID != b.ID {
		t.Fatalf("wrong survivor: %+v", items)
	}
}
