package reminder

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"organizer/pkg/repo"
)

type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (m *memStore) Load(name string, v any) error {
	data, ok := m.data[name]
	if !ok {
		return nil
	}
	_ = json.Unmarshal(data, v)
	return nil
}

func (m *memStore) Save(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.data[name] = data
	return nil
}

func (m *memStore) Delete(name string) error {
	delete(m.data, name)
	return nil
}

type fakeNotifier struct {
	calls []string
	err   error
}

func (f *fakeNotifier) Notify(title, body string) error {
	f.calls = append(f.calls, title)
	return f.err
}

type fakeAudio struct {
	beeps int
}

func (f *fakeAudio) Beep() { f.beeps++ }

type fixture struct {
	events   *repo.Events
	settings *repo.SettingsStore
	notifier *fakeNotifier
	audio    *fakeAudio
	sched    *Scheduler
}

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()
	s := newMemStore()
	f := &fixture{
		events:   repo.NewEvents(s),
		settings: repo.NewSettingsStore(s),
		notifier: &fakeNotifier{},
		audio:    &fakeAudio{},
	}
	f.sched = New(f.events, f.settings, f.notifier, f.audio, nil)
	f.sched.now = func() time.Time { return now }
	return f
}

func TestCheckFiresInWindow(t *testing.T) {
	now := time.Date(2024, 6, 5, 15, 25, 0, 0, time.Local)
	f := newFixture(t, now)

	// Reminder opens at 15:20, event at 15:30. 15:25 is inside.
	ev, err := f.events.Create(repo.EventInput{
		Title:     "dentist",
		When:      now.Add(5 * time.Minute),
		RemindMin: 10,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	f.sched.Check()

	if len(f.notifier.calls) != 1 || f.notifier.calls[0] != "dentist" {
		t.Fatalf("expected one notification, got %v", f.notifier.calls)
	}
	if f.audio.beeps != 1 {
		t.Fatalf("expected one beep, got %d", f.audio.beeps)
	}

	got, err := f.events.Get(ev.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Notified {
		t.Fatalf("notified flag not persisted")
	}
}

func TestCheckDoesNotRefire(t *testing.T) {
	now := time.Date(2024, 6, 5, 15, 25, 0, 0, time.Local)
	f := newFixture(t, now)

	if _, err := f.events.Create(repo.EventInput{
		Title:     "standup",
		When:      now.Add(5 * time.Minute),
		RemindMin: 10,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	f.sched.Check()
	f.sched.Check()
	f.sched.Check()

	if len(f.notifier.calls) != 1 {
		t.Fatalf("expected exactly one notification, got %d", len(f.notifier.calls))
	}
}

func TestCheckSkipsOutsideWindow(t *testing.T) {
	now := time.Date(2024, 6, 5, 15, 0, 0, 0, time.Local)
	f := newFixture(t, now)

	// Not due yet: reminder opens at 15:20.
	if _, err := f.events.Create(repo.EventInput{
		Title:     "future",
		When:      now.Add(30 * time.Minute),
		RemindMin: 10,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	// Long past: event ended more than a minute ago.
	if _, err := f.events.Create(repo.EventInput{
		Title:     "stale",
		When:      now.Add(-2 * time.Hour),
		RemindMin: 10,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	f.sched.Check()

	if len(f.notifier.calls) != 0 {
		t.Fatalf("nothing should fire, got %v", f.notifier.calls)
	}
}

func TestCheckFiresJustPastStart(t *testing.T) {
	now := time.Date(2024, 6, 5, 15, 30, 30, 0, time.Local)
	f := newFixture(t, now)

	// The event started 30 seconds ago; the window extends a minute past
	// start to tolerate poll granularity.
	if _, err := f.events.Create(repo.EventInput{
		Title:     "barely late",
		When:      now.Add(-30 * time.Second),
		RemindMin: 10,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	f.sched.Check()

	if len(f.notifier.calls) != 1 {
		t.Fatalf("expected a fire just past start, got %v", f.notifier.calls)
	}
}

func TestCheckHonorsSoundSetting(t *testing.T) {
	now := time.Date(2024, 6, 5, 15, 25, 0, 0, time.Local)
	f := newFixture(t, now)

	st := f.settings.Load()
	st.SoundEnabled = false
	if err := f.settings.Save(st); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	if _, err := f.events.Create(repo.EventInput{
		Title:     "quiet",
		When:      now.Add(5 * time.Minute),
		RemindMin: 10,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	f.sched.Check()

	if len(f.notifier.calls) != 1 {
		t.Fatalf("notification should still fire, got %v", f.notifier.calls)
	}
	if f.audio.beeps != 0 {
		t.Fatalf("sound disabled but got %d beeps", f.audio.beeps)
	}
}

func TestCheckMarksEvenWhenSinkFails(t *testing.T) {
	now := time.Date(2024, 6, 5, 15, 25, 0, 0, time.Local)
	f := newFixture(t, now)
	f.notifier.err = errors.New("no display")

	ev, err := f.events.Create(repo.EventInput{
		Title:     "headless",
		When:      now.Add(5 * time.Minute),
		RemindMin: 10,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	f.sched.Check()

	got, err := f.events.Get(ev.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Notified {
		t.Fatalf("flag should be set even when the sink fails")
	}
}

func TestStartStopIsReentrant(t *testing.T) {
	now := time.Date(2024, 6, 5, 12, 0, 0, 0, time.Local)
	f := newFixture(t, now)

	if err := f.sched.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	// Restarting replaces the previous loop instead of stacking a second one.
	if err := f.sched.Start(); err != nil {
		t.Fatalf("restart: %v", err)
	}
	f.sched.Stop()
	f.sched.Stop()
}
