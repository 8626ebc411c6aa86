package record

import (
	"encoding/json"
	"fmt"
	"time"
)

// LayoutISO is the day-granularity date layout used for journal dates,
// calendar selection, and event day filters.
const LayoutISO = "2006-01-02"

// Timestamp wraps time.Time so persisted records always carry RFC3339
// strings, with the zero value encoding as "".
type Timestamp struct {
	time.Time
}

// Now returns the current instant as a Timestamp.
func Now() Timestamp {
	return Timestamp{Time: time.Now()}
}

// ParseTime parses an RFC3339 instant.
func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// SameDay reports whether the timestamp falls on the same local calendar day
// as then.
func (t Timestamp) SameDay(then time.Time) bool {
	ty, tm, td := t.Local().Date()
	oy, om, od := then.Local().Date()
	return ty == oy && tm == om && td == od
}

// Day returns the timestamp's local calendar day as YYYY-MM-DD.
func (t Timestamp) Day() string {
	return t.Local().Format(LayoutISO)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t)), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339)
}
