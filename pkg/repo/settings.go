package repo

import (
	"organizer/pkg/record"
	"organizer/pkg/store"
)

// DefaultTheme is assumed when no theme preference has been persisted.
const DefaultTheme = "light"

// SettingsStore persists the single settings record and the theme
// preference scalar.
type SettingsStore struct {
	s store.Store
}

func NewSettingsStore(s store.Store) *SettingsStore {
	return &SettingsStore{s: s}
}

// Load returns the persisted settings. Absent or unparseable settings
// degrade to the defaults (sound enabled).
func (r *SettingsStore) Load() record.Settings {
	st := record.DefaultSettings()
	if err := r.s.Load(SettingsKey, &st); err != nil {
		return record.DefaultSettings()
	}
	return st
}

func (r *SettingsStore) Save(st record.Settings) error {
	return r.s.Save(SettingsKey, st)
}

// Theme returns the persisted theme preference, defaulting to "light".
func (r *SettingsStore) Theme() string {
	var theme string
	if err := r.s.Load(ThemeKey, &theme); err != nil || theme == "" {
		return DefaultTheme
	}
	return theme
}

func (r *SettingsStore) SetTheme(theme string) error {
	return r.s.Save(ThemeKey, theme)
}
