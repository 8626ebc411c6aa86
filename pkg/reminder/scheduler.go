// Package reminder polls the event collection and fires each event's
// reminder at most once.
package reminder

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"organizer/pkg/record"
	"organizer/pkg/repo"
)

// Notifier delivers a reminder to the user. It may be unavailable
// (permission not granted, no display); in that case firing stays silent
// apart from the audio sink.
type Notifier interface {
	Notify(title, body string) error
}

// Audio plays a short fire-and-forget tone. Implementations swallow their
// own failures.
type Audio interface {
	Beep()
}

const (
	// pollSpec is the fixed scan period.
	pollSpec = "@every 30s"
	// fireWindow extends firing one minute past the nominal reminder time to
	// tolerate poll granularity.
	fireWindow = time.Minute
)

// Scheduler scans all events on a fixed period and transitions each one
// Pending -> Notified exactly once, guarded by the persisted notified flag.
// If the flag write is lost (process restarted between detection and
// persistence) the event re-fires on the next poll; that at-least-once
// behavior across restarts is accepted.
type Scheduler struct {
	events   *repo.Events
	settings *repo.SettingsStore
	notifier Notifier
	audio    Audio
	log      *zap.Logger
	now      func() time.Time

	mu sync.Mutex
	c  *cron.Cron
}

// New wires a scheduler over the event repository. notifier and audio may be
// nil, in which case firing only updates the flag.
func New(events *repo.Events, settings *repo.SettingsStore, notifier Notifier, audio Audio, log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{
		events:   events,
		settings: settings,
		notifier: notifier,
		audio:    audio,
		log:      log,
		now:      time.Now,
	}
}

// Start runs an immediate check and installs the periodic poll. Calling
// Start again is always safe: the previous poll loop is stopped first, so at
// most one loop is ever active.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.c != nil {
		s.c.Stop()
		s.c = nil
	}

	s.Check()

	c := cron.New()
	if _, err := c.AddFunc(pollSpec, s.Check); err != nil {
		return fmt.Errorf("reminder: install poll: %w", err)
	}
	c.Start()
	s.c = c
	return nil
}

// Stop halts the poll loop. Safe to call repeatedly or before Start.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.c != nil {
		s.c.Stop()
		s.c = nil
	}
}

// Check performs one scan, firing every pending event whose reminder window
// contains the current instant. The window is [when-remindMin, when+1min).
func (s *Scheduler) Check() {
	now := s.now()

	events, err := s.events.All()
	if err != nil {
		s.log.Warn("reminder: scan failed", zap.Error(err))
		return
	}

	for _, ev := range events {
		if ev.Notified {
			continue
		}
		if now.Before(ev.RemindAt()) || !now.Before(ev.When.Add(fireWindow)) {
			continue
		}
		s.fire(ev)
	}
}

func (s *Scheduler) fire(ev *record.Event) {
	body := fmt.Sprintf("Reminder: %s\nWhen: %s",
		ev.Title, ev.When.Local().Format("Mon Jan 2 15:04"))

	if s.notifier != nil {
		if err := s.notifier.Notify(ev.Title, body); err != nil {
			// Sink unavailable; the flag is still set below so the event
			// does not fire again every 30 seconds.
			s.log.Debug("reminder: notification sink unavailable",
				zap.String("event", ev.ID), zap.Error(err))
		}
	}
	if s.audio != nil && s.settings != nil && s.settings.Load().SoundEnabled {
		s.audio.Beep()
	}

	if _, err := s.events.MarkNotified(ev.ID); err != nil {
		s.log.Warn("reminder: persisting notified flag failed",
			zap.String("event", ev.ID), zap.Error(err))
		return
	}
	s.log.Info("reminder fired",
		zap.String("event", ev.ID), zap.String("title", ev.Title))
}
