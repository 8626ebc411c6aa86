// Package repo provides the typed CRUD and query surface over the record
// store, one repository per collection.
package repo

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Collection key names. These are the stable persisted identifiers; renaming
// one orphans existing data.
const (
	JournalKey  = "journal"
	EventsKey   = "events"
	TasksKey    = "tasks"
	SettingsKey = "settings"
	ThemeKey    = "theme"
)

// ErrNotFound is returned by update and delete operations when no record
// carries the given identifier.
var ErrNotFound = errors.New("repo: record not found")

var validate = validator.New()

// checkInput validates a create/update input struct. The write is rejected
// before any state change, so validation failures never leave partial state.
func checkInput(kind string, in any) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%s: invalid input: %w", kind, err)
	}
	return nil
}
