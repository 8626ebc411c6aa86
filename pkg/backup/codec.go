// Package backup serializes all collections and settings into one versioned
// snapshot and restores them from an imported one.
package backup

import (
	"encoding/json"
	"fmt"
	"time"

	"organizer/pkg/record"
	"organizer/pkg/repo"
	"organizer/pkg/store"
)

// Version is the current backup schema version.
const Version = 1

// Payload is the exported snapshot. Collections are independent; there are
// no cross-references to preserve.
type Payload struct {
	Journal    []*record.JournalEntry `json:"journal"`
	Events     []*record.Event        `json:"events"`
	Tasks      []*record.Task         `json:"tasks"`
	Settings   record.Settings        `json:"settings"`
	Theme      string                 `json:"theme"`
	ExportedAt record.Timestamp       `json:"exportedAt"`
	Version    int                    `json:"version"`
}

// Codec performs export, import, and wipe over the repositories.
type Codec struct {
	Store    store.Store
	Journal  *repo.Journal
	Events   *repo.Events
	Tasks    *repo.Tasks
	Settings *repo.SettingsStore
}

// Export snapshots every collection in stored order plus settings and theme.
func (c *Codec) Export(now time.Time) (*Payload, error) {
	journal, err := c.Journal.All()
	if err != nil {
		return nil, err
	}
	events, err := c.Events.All()
	if err != nil {
		return nil, err
	}
	tasks, err := c.Tasks.All()
	if err != nil {
		return nil, err
	}

	return &Payload{
		Journal:    emptyNotNil(journal),
		Events:     emptyNotNil(events),
		Tasks:      emptyNotNil(tasks),
		Settings:   c.Settings.Load(),
		Theme:      c.Settings.Theme(),
		ExportedAt: record.Timestamp{Time: now},
		Version:    Version,
	}, nil
}

// ExportJSON renders the snapshot as indented JSON, ready to write to a
// backup file.
func (c *Codec) ExportJSON(now time.Time) ([]byte, error) {
	p, err := c.Export(now)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(p, "", "  ")
}

// Import restores collections from a backup document. Malformed JSON aborts
// the whole import before anything is written. Within a well-formed
// document the import is partial by field: a collection field that is
// missing or not an array leaves the existing collection untouched. Every
// decoded collection passes the identifier migration before it is saved.
func (c *Codec) Import(data []byte) error {
	var raw struct {
		Journal  json.RawMessage `json:"journal"`
		Events   json.RawMessage `json:"events"`
		Tasks    json.RawMessage `json:"tasks"`
		Settings json.RawMessage `json:"settings"`
		Theme    string          `json:"theme"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("backup: malformed document: %w", err)
	}

	// Decode everything up front so a half-parsed payload can never leave
	// partial writes behind.
	journal, haveJournal := decodeList[record.JournalEntry](raw.Journal)
	events, haveEvents := decodeList[record.Event](raw.Events)
	tasks, haveTasks := decodeList[record.Task](raw.Tasks)

	var settings record.Settings
	haveSettings := len(raw.Settings) > 0 && json.Unmarshal(raw.Settings, &settings) == nil

	if haveJournal {
		if err := c.Journal.Replace(journal); err != nil {
			return err
		}
	}
	if haveEvents {
		if err := c.Events.Replace(events); err != nil {
			return err
		}
	}
	if haveTasks {
		if err := c.Tasks.Replace(tasks); err != nil {
			return err
		}
	}
	if haveSettings {
		if err := c.Settings.Save(settings); err != nil {
			return err
		}
	}
	if raw.Theme != "" {
		if err := c.Settings.SetTheme(raw.Theme); err != nil {
			return err
		}
	}
	return nil
}

// Wipe clears every collection and the settings record. The theme
// preference survives a wipe.
func (c *Codec) Wipe() error {
	for _, key := range []string{repo.JournalKey, repo.EventsKey, repo.TasksKey, repo.SettingsKey} {
		if err := c.Store.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

func decodeList[T any](raw json.RawMessage) ([]*T, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, false
	}
	var items []*T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	if items == nil {
		items = []*T{}
	}
	return items, true
}

func emptyNotNil[T any](items []*T) []*T {
	if items == nil {
		return []*T{}
	}
	return items
}
