package record

import "strings"

// Priority ranks a task. The persisted value is the lowercase name.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Weight maps a priority to its sort weight: high=2, medium=1, low=0.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 1
	default:
		return 0
	}
}

// Valid reports whether p is one of the three known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// NormalizePriority maps free-form input onto a known priority. Unknown or
// missing values become PriorityMedium so the invariant "priority is always
// one of the three values" holds from creation onward.
func NormalizePriority(v string) Priority {
	p := Priority(strings.ToLower(strings.TrimSpace(v)))
	if !p.Valid() {
		return PriorityMedium
	}
	return p
}
