package record

import "organizer/pkg/id"

// Identifiable is implemented by records that carry a persistent identifier.
type Identifiable interface {
	RecordID() string
	AssignID(id string)
}

// EnsureIDs assigns a fresh identifier to every record missing one and
// reports whether anything changed. Identifiers already present are never
// touched, so the pass is idempotent and purely additive. It runs on every
// repository read path and again after a backup import, because imported
// data may predate identifier support.
func EnsureIDs[T Identifiable](items []T) bool {
	changed := false
	for _, item := range items {
		if item.RecordID() == "" {
			item.AssignID(id.New())
			changed = true
		}
	}
	return changed
}
