package timer

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xuxu777xu/random-prompt-focus-app/internal/config"
	"github.com/xuxu777xu/random-prompt-focus-app/internal/session"
)

type memoryStore struct {
	saved   []*session.Session
	nextID  uint64
	saveErr error
}

func (m *memoryStore) SaveSession(sess *session.Session) (uint64, error) {
	if m.saveErr != nil {
		return 0, m.saveErr
	}

	if sess.ID == 0 {
		m.nextID++
		sess.ID = m.nextID
	}

	copied := *sess
	m.saved = append(m.saved, &copied)

	return sess.ID, nil
}

func (m *memoryStore) GetSessions(
	_, _ time.Time,
	_ []string,
) ([]session.Session, error) {
	return nil, nil
}

func (m *memoryStore) DeleteSessions(_ []uint64) error { return nil }

func (m *memoryStore) Close() error { return nil }

func (m *memoryStore) Open() error { return nil }

type fakeClock struct {
	current time.Time
}

func (f *fakeClock) now() time.Time { return f.current }

func (f *fakeClock) advance(d time.Duration) { f.current = f.current.Add(d) }

func testConfig() *config.Config {
	return &config.Config{
		Focus: config.SessionConfig{
			Duration: 25 * time.Minute,
			Message:  "Focus on your task",
		},
		Rest: config.SessionConfig{
			Duration: 5 * time.Minute,
			Message:  "Take a breather",
		},
		Monitor: config.MonitorConfig{
			Enabled:       true,
			Lambda:        0.5,
			PromptTimeout: 15 * time.Second,
		},
	}
}

func newTestController(
	t *testing.T,
	cfg *config.Config,
) (*Controller, *memoryStore, *fakeClock) {
	t.Helper()

	clock := &fakeClock{
		current: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	db := &memoryStore{}

	monitor := NewMonitor(clock.now, fixedRand(0.5))

	ctrl := NewController(
		db,
		func() *config.Config { return cfg },
		clock.now,
		monitor,
	)

	return ctrl, db, clock
}

// tick advances the fake clock and the countdown together.
func tick(ctrl *Controller, clock *fakeClock, n int) {
	for range n {
		clock.advance(time.Second)
		_ = ctrl.Tick()
	}
}

func eventTypes(events []Event) []EventType {
	types := make([]EventType, 0, len(events))
	for _, ev := range events {
		types = append(types, ev.Type)
	}

	return types
}

func TestController_NaturalCompletion(t *testing.T) {
	cfg := testConfig()
	cfg.Monitor.Enabled = false

	ctrl, db, clock := newTestController(t, cfg)

	require.NoError(t, ctrl.Start(session.Focus))

	assert.Equal(t, session.Running, ctrl.Status())
	assert.Equal(t, 25*time.Minute, ctrl.Remaining())
	assert.Equal(t, float64(0), ctrl.Progress())
	assert.Equal(t, "25:00", ctrl.FormatRemaining())

	tick(ctrl, clock, 25*60)

	assert.Equal(t, session.Stopped, ctrl.Status())
	assert.Equal(t, time.Duration(0), ctrl.Remaining())
	assert.Equal(t, session.Rest, ctrl.NextKind())

	require.Len(t, db.saved, 1)

	saved := db.saved[0]
	assert.Equal(t, session.Completed, saved.Status)
	assert.Equal(t, 25*time.Minute, saved.ActualDuration)
	assert.False(t, saved.EndTime.IsZero())
	assert.Equal(t, uint64(1), saved.ID)

	types := eventTypes(ctrl.DrainEvents())
	assert.Contains(t, types, EventSessionStarted)
	assert.Contains(t, types, EventSessionCompleted)
}

func TestController_PauseResumeStop(t *testing.T) {
	cfg := testConfig()
	cfg.Monitor.Enabled = false

	ctrl, db, clock := newTestController(t, cfg)

	require.NoError(t, ctrl.Start(session.Focus))

	tick(ctrl, clock, 5*60)

	require.NoError(t, ctrl.Pause())
	assert.Equal(t, session.Paused, ctrl.Status())
	assert.Equal(t, 20*time.Minute, ctrl.Remaining())

	// the countdown is frozen while paused
	clock.advance(10 * time.Minute)
	_ = ctrl.Tick()
	assert.Equal(t, 20*time.Minute, ctrl.Remaining())

	require.NoError(t, ctrl.Resume())
	require.NoError(t, ctrl.Stop())

	assert.Equal(t, session.Stopped, ctrl.Status())

	require.Len(t, db.saved, 1)

	saved := db.saved[0]
	assert.Equal(t, session.Interrupted, saved.Status)
	assert.Equal(t, 5*time.Minute, saved.ActualDuration)
}

func TestController_StartWhileRunning(t *testing.T) {
	ctrl, _, _ := newTestController(t, testConfig())

	require.NoError(t, ctrl.Start(session.Focus))

	err := ctrl.Start(session.Rest)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, ctrl.Pause())

	// a paused session still blocks a new start
	err = ctrl.Start()
	assert.ErrorIs(t, err, ErrAlreadyRunning)
}

func TestController_InvalidTransitions(t *testing.T) {
	ctrl, db, _ := newTestController(t, testConfig())

	assert.Error(t, ctrl.Pause())
	assert.Error(t, ctrl.Resume())
	assert.Error(t, ctrl.Skip())

	require.NoError(t, ctrl.Start(session.Focus))

	assert.Error(t, ctrl.Resume())
	assert.Error(t, ctrl.Reset())

	assert.Empty(t, db.saved)
}

func TestController_StopIsIdempotent(t *testing.T) {
	ctrl, db, clock := newTestController(t, testConfig())

	require.NoError(t, ctrl.Start(session.Focus))

	tick(ctrl, clock, 60)

	require.NoError(t, ctrl.Stop())
	require.NoError(t, ctrl.Stop())

	assert.Equal(t, session.Stopped, ctrl.Status())
	assert.Len(t, db.saved, 1)
}

func TestController_Reset(t *testing.T) {
	ctrl, db, _ := newTestController(t, testConfig())

	require.NoError(t, ctrl.Start(session.Focus))
	require.NoError(t, ctrl.Stop())

	require.NotNil(t, ctrl.Current())
	require.NoError(t, ctrl.Reset())

	assert.Nil(t, ctrl.Current())

	// the stopped session was persisted exactly once, on finalize
	assert.Len(t, db.saved, 1)
}

func TestController_ProgressRoundTrip(t *testing.T) {
	cfg := testConfig()
	cfg.Monitor.Enabled = false

	ctrl, _, clock := newTestController(t, cfg)

	require.NoError(t, ctrl.Start(session.Focus))
	assert.Equal(t, float64(0), ctrl.Progress())

	tick(ctrl, clock, 25*60-1)

	assert.InDelta(t, 1.0, ctrl.Progress(), 0.001)
	assert.Equal(t, "00:01", ctrl.FormatRemaining())

	tick(ctrl, clock, 1)

	// the session is complete; remaining is zero
	assert.Equal(t, "00:00", ctrl.FormatRemaining())
}

func TestController_SkipWithAutoStart(t *testing.T) {
	cfg := testConfig()
	cfg.Settings.AutoStartRest = true

	ctrl, db, clock := newTestController(t, cfg)

	require.NoError(t, ctrl.Start(session.Focus))

	tick(ctrl, clock, 60)

	require.NoError(t, ctrl.Skip())

	// the rest break started immediately
	assert.Equal(t, session.Running, ctrl.Status())

	current := ctrl.Current()
	require.NotNil(t, current)
	assert.Equal(t, session.Rest, current.Kind)
	assert.Equal(t, 5*time.Minute, current.PlannedDuration)
	assert.Equal(t, 5*time.Minute, ctrl.Remaining())

	require.Len(t, db.saved, 1)
	assert.Equal(t, session.Cancelled, db.saved[0].Status)
}

func TestController_SkipWithoutAutoStart(t *testing.T) {
	ctrl, db, clock := newTestController(t, testConfig())

	require.NoError(t, ctrl.Start(session.Focus))

	tick(ctrl, clock, 60)

	require.NoError(t, ctrl.Skip())

	assert.Equal(t, session.Stopped, ctrl.Status())
	assert.Equal(t, session.Rest, ctrl.NextKind())
	assert.Len(t, db.saved, 1)
}

func TestController_PersistenceFailureStillTransitions(t *testing.T) {
	ctrl, db, _ := newTestController(t, testConfig())

	db.saveErr = errors.New("disk full")

	require.NoError(t, ctrl.Start(session.Focus))
	require.NoError(t, ctrl.Stop())

	assert.Equal(t, session.Stopped, ctrl.Status())
	assert.Equal(t, session.Rest, ctrl.NextKind())
	assert.True(t, ctrl.Current().Finalized())
}

func TestController_DistractionsMergeOnFinalize(t *testing.T) {
	ctrl, db, clock := newTestController(t, testConfig())

	require.NoError(t, ctrl.Start(session.Focus))

	pt, ok := ctrl.Monitor().NextTimer()
	require.True(t, ok)

	clock.advance(pt.Delay)
	ctrl.HandlePromptDue(pt.Gen)

	require.True(t, ctrl.Monitor().Prompting())

	timeout, ok := ctrl.Monitor().NextTimer()
	require.True(t, ok)

	clock.advance(timeout.Delay)
	ctrl.HandlePromptTimeout(timeout.Gen)

	// the next prompt is answered negatively by the user
	next, ok := ctrl.Monitor().NextTimer()
	require.True(t, ok)

	clock.advance(next.Delay)
	ctrl.HandlePromptDue(next.Gen)
	ctrl.RespondToPrompt(false)

	require.NoError(t, ctrl.Stop())

	require.Len(t, db.saved, 1)

	saved := db.saved[0]
	assert.Equal(t, 2, saved.DistractionCount)
	assert.Len(t, saved.Distractions, 2)
}

func TestController_PromptEventRaised(t *testing.T) {
	ctrl, _, _ := newTestController(t, testConfig())

	require.NoError(t, ctrl.Start(session.Focus))

	ctrl.DrainEvents()

	pt, ok := ctrl.Monitor().NextTimer()
	require.True(t, ok)

	ctrl.HandlePromptDue(pt.Gen)

	events := ctrl.DrainEvents()
	require.NotEmpty(t, events)
	assert.Equal(t, EventPromptRaised, events[0].Type)
	assert.True(t, events[0].Prompting)
}

func TestController_RestSessionsAreNotMonitored(t *testing.T) {
	ctrl, db, clock := newTestController(t, testConfig())

	require.NoError(t, ctrl.Start(session.Rest))

	_, ok := ctrl.Monitor().NextTimer()
	assert.False(t, ok)

	tick(ctrl, clock, 5*60)

	require.Len(t, db.saved, 1)
	assert.Equal(t, 0, db.saved[0].DistractionCount)
	assert.Equal(t, session.Focus, ctrl.NextKind())
}

func TestController_StalePromptCallbackAfterPause(t *testing.T) {
	ctrl, _, _ := newTestController(t, testConfig())

	require.NoError(t, ctrl.Start(session.Focus))

	pt, ok := ctrl.Monitor().NextTimer()
	require.True(t, ok)

	require.NoError(t, ctrl.Pause())

	// the timer callback was queued before the pause cancelled it
	ctrl.HandlePromptDue(pt.Gen)

	assert.False(t, ctrl.Monitor().Prompting())
}
