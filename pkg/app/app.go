// Package app wires the store and repositories into one service shared by
// every CLI surface.
package app

import (
	"go.uber.org/zap"

	"organizer/pkg/backup"
	"organizer/pkg/calendar"
	"organizer/pkg/reminder"
	"organizer/pkg/repo"
	"organizer/pkg/store"
)

// App bundles the persistence layer with the typed repositories.
type App struct {
	Store    store.Store
	Journal  *repo.Journal
	Tasks    *repo.Tasks
	Events   *repo.Events
	Settings *repo.SettingsStore
	Log      *zap.Logger
}

// New opens the store at the configured base path and builds the
// repositories. A nil config resolves via store.LoadConfig; a nil logger
// disables logging.
func New(cfg store.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s, err := store.Load(cfg, log)
	if err != nil {
		return nil, err
	}
	return &App{
		Store:    s,
		Journal:  repo.NewJournal(s),
		Tasks:    repo.NewTasks(s),
		Events:   repo.NewEvents(s),
		Settings: repo.NewSettingsStore(s),
		Log:      log,
	}, nil
}

// Calendar returns an aggregator over the event and task repositories.
func (a *App) Calendar() *calendar.Aggregator {
	return &calendar.Aggregator{Events: a.Events, Tasks: a.Tasks}
}

// Backup returns the export/import codec over every collection.
func (a *App) Backup() *backup.Codec {
	return &backup.Codec{
		Store:    a.Store,
		Journal:  a.Journal,
		Events:   a.Events,
		Tasks:    a.Tasks,
		Settings: a.Settings,
	}
}

// Scheduler returns a reminder scheduler bound to the given sinks.
func (a *App) Scheduler(n reminder.Notifier, audio reminder.Audio) *reminder.Scheduler {
	return reminder.New(a.Events, a.Settings, n, audio, a.Log)
}
