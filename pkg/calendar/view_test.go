package calendar

import (
	"testing"
	"time"
)

func TestViewSelectDrivesEventFilter(t *testing.T) {
	v := NewView(time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local))

	if got := v.Select(5); got != "2024-06-05" {
		t.Fatalf("select: got %q", got)
	}
	if f := v.EventFilter(); f.Date != "2024-06-05" {
		t.Fatalf("filter: got %q", f.Date)
	}

	v.ClearSelection()
	if f := v.EventFilter(); f.Date != "" {
		t.Fatalf("cleared selection should match all days, got %q", f.Date)
	}
}

func TestViewMonthNavigationWraps(t *testing.T) {
	v := NewView(time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local))

	v.Prev()
	if v.Year != 2023 || v.Month != time.December {
		t.Fatalf("prev from January: %d %v", v.Year, v.Month)
	}

	v.Next()
	if v.Year != 2024 || v.Month != time.January {
		t.Fatalf("next from December: %d %v", v.Year, v.Month)
	}

	if v.Title() != "January 2024" {
		t.Fatalf("title: %q", v.Title())
	}
}
