// Package record defines the persisted entity types and the additive
// identifier migration that keeps older data usable.
package record

import "time"

const (
	// DefaultRemindMinutes is the reminder lead time applied when the user
	// does not pick one.
	DefaultRemindMinutes = 10
	// DefaultDurationMinutes is the event duration applied when the user does
	// not pick one. Zero means the event has no end instant.
	DefaultDurationMinutes = 60
)

// JournalEntry is one dated free-text note.
type JournalEntry struct {
	ID      string     `json:"id"`
	Text    string     `json:"text"`
	Date    string     `json:"date"` // YYYY-MM-DD, day granularity
	Created Timestamp  `json:"created"`
	Updated *Timestamp `json:"updated,omitempty"`
}

func (e *JournalEntry) RecordID() string   { return e.ID }
func (e *JournalEntry) AssignID(id string) { e.ID = id }

// Event is a scheduled occurrence with an optional reminder. Notified is
// owned by the reminder scheduler: it transitions false to true exactly once
// and is only reset when an edit or import recreates the event.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	When        Timestamp `json:"when"`
	RemindMin   int       `json:"remindMin"`
	DurationMin int       `json:"durationMin,omitempty"`
	Notified    bool      `json:"notified,omitempty"`
}

func (e *Event) RecordID() string   { return e.ID }
func (e *Event) AssignID(id string) { e.ID = id }

// Day returns the event's local calendar day as YYYY-MM-DD.
func (e *Event) Day() string {
	return e.When.Day()
}

// RemindAt returns the instant the reminder window opens.
func (e *Event) RemindAt() time.Time {
	min := e.RemindMin
	if min < 0 {
		min = 0
	}
	return e.When.Add(-time.Duration(min) * time.Minute)
}

// EndAt returns the event's end instant. ok is false when the duration is
// zero, meaning the event has no end.
func (e *Event) EndAt() (end time.Time, ok bool) {
	if e.DurationMin <= 0 {
		return time.Time{}, false
	}
	return e.When.Add(time.Duration(e.DurationMin) * time.Minute), true
}

// Task is a prioritized to-do item.
type Task struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Priority Priority   `json:"priority"`
	Done     bool       `json:"done"`
	Created  Timestamp  `json:"created"`
	Updated  *Timestamp `json:"updated,omitempty"`
}

func (t *Task) RecordID() string   { return t.ID }
func (t *Task) AssignID(id string) { t.ID = id }

// Settings is the single persisted preferences record.
type Settings struct {
	SoundEnabled bool `json:"soundEnabled"`
}

// DefaultSettings is what absent or unparseable settings degrade to.
func DefaultSettings() Settings {
	return Settings{SoundEnabled: true}
}
