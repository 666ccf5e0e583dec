package timer

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuxu777xu/random-prompt-focus-app/internal/config"
	"github.com/xuxu777xu/random-prompt-focus-app/internal/session"
	"github.com/xuxu777xu/random-prompt-focus-app/internal/timeutil"
	"github.com/xuxu777xu/random-prompt-focus-app/store"
)

// Controller owns the lifecycle of the current session: starting,
// pausing, stopping, the one-second countdown, and handing finalized
// sessions to the store. It drives the attention monitor through the
// same lifecycle. All methods must be called from a single goroutine.
type Controller struct {
	db      store.DB
	cfg     func() *config.Config
	now     func() time.Time
	monitor *Monitor

	current   *session.Session
	remaining time.Duration
	nextKind  session.Kind
	events    []Event
}

// NewController creates a session controller. The config provider is
// called fresh on every session start so settings changes apply without
// a restart.
func NewController(
	db store.DB,
	cfg func() *config.Config,
	now func() time.Time,
	monitor *Monitor,
) *Controller {
	if now == nil {
		now = time.Now
	}

	if monitor == nil {
		monitor = NewMonitor(now, nil)
	}

	return &Controller{
		db:       db,
		cfg:      cfg,
		now:      now,
		monitor:  monitor,
		nextKind: session.Focus,
	}
}

// Monitor returns the attention monitor driven by this controller.
func (c *Controller) Monitor() *Monitor {
	return c.monitor
}

// Current returns the live session, or nil when none is active.
func (c *Controller) Current() *session.Session {
	return c.current
}

// Status returns the live session's status, or Stopped when no session
// exists.
func (c *Controller) Status() session.Status {
	if c.current == nil || c.current.Finalized() {
		return session.Stopped
	}

	return c.current.Status
}

// NextKind returns the kind the next session will use when none is
// specified explicitly.
func (c *Controller) NextKind() session.Kind {
	return c.nextKind
}

// Remaining returns the time left on the countdown.
func (c *Controller) Remaining() time.Duration {
	return c.remaining
}

// Progress returns the fraction of the planned duration already spent,
// in [0, 1].
func (c *Controller) Progress() float64 {
	if c.current == nil || c.current.PlannedDuration == 0 {
		return 0
	}

	planned := c.current.PlannedDuration

	return float64(planned-c.remaining) / float64(planned)
}

// FormatRemaining renders the countdown as MM:SS. The minutes component
// is not capped at 59.
func (c *Controller) FormatRemaining() string {
	mins, secs := timeutil.SecsToMinsAndSecs(c.remaining.Seconds())

	return fmt.Sprintf("%02d:%02d", mins, secs)
}

// DrainEvents returns the notifications accumulated since the last
// drain and clears the queue.
func (c *Controller) DrainEvents() []Event {
	ev := c.events
	c.events = nil

	return ev
}

func (c *Controller) emit(typ EventType) {
	kind := c.nextKind
	if c.current != nil {
		kind = c.current.Kind
	}

	c.events = append(c.events, Event{
		Time:      c.now(),
		Type:      typ,
		Kind:      kind,
		Status:    c.Status(),
		Remaining: c.remaining,
		Prompting: c.monitor.Prompting(),
	})
}

// Start begins a new session of the given kind, or of the next kind in
// the cycle when none is given. It fails with ErrAlreadyRunning while a
// session is live so that an active session's progress is never
// silently discarded.
func (c *Controller) Start(kind ...session.Kind) error {
	if c.current != nil && !c.current.Finalized() {
		return ErrAlreadyRunning
	}

	cfg := c.cfg()

	effective := c.nextKind
	if len(kind) > 0 {
		effective = kind[0]
	}

	sess := session.New(effective, c.now(), cfg.Duration(effective))
	sess.Tags = cfg.CLI.Tags
	sess.Notes = cfg.CLI.Notes

	c.current = sess
	c.remaining = sess.PlannedDuration
	c.nextKind = effective

	c.monitor.Begin(effective, cfg.Monitor)

	c.emit(EventSessionStarted)
	c.emit(EventStateChanged)

	return nil
}

// Pause freezes the countdown. Attention scheduling is suspended but a
// pending prompt and recorded distractions carry over to resume.
func (c *Controller) Pause() error {
	if c.Status() != session.Running {
		return errNotRunning
	}

	c.current.Status = session.Paused

	c.monitor.Suspend()

	c.emit(EventStateChanged)

	return nil
}

// Resume restarts a paused countdown and re-arms attention scheduling
// with a freshly drawn interval.
func (c *Controller) Resume() error {
	if c.Status() != session.Paused {
		return errNotPaused
	}

	c.current.Status = session.Running

	c.monitor.Resume()

	c.emit(EventStateChanged)

	return nil
}

// Stop interrupts the live session, persists it, and returns to the
// stopped state. Stopping when nothing is running has no effect.
func (c *Controller) Stop() error {
	if c.Status() != session.Running && c.Status() != session.Paused {
		return nil
	}

	c.finalize(session.Interrupted)

	c.emit(EventStateChanged)

	return nil
}

// Reset discards an already-finalized session without persisting
// anything further. It is invalid while a session is live.
func (c *Controller) Reset() error {
	if c.Status() != session.Stopped {
		return errSessionActive
	}

	c.current = nil
	c.remaining = 0

	c.emit(EventStateChanged)

	return nil
}

// Skip cancels the live session, persists it, and moves on to the next
// kind, starting it immediately when the matching auto-start setting is
// enabled.
func (c *Controller) Skip() error {
	if c.Status() != session.Running && c.Status() != session.Paused {
		return errNotRunning
	}

	ended := c.current.Kind

	c.finalize(session.Cancelled)

	c.emit(EventStateChanged)

	return c.advance(ended)
}

// Tick advances the countdown by one second. When the countdown reaches
// zero the session completes naturally. Ticks arriving while not
// running are ignored so a callback queued before a pause or stop
// cannot corrupt state.
func (c *Controller) Tick() error {
	if c.Status() != session.Running {
		return nil
	}

	c.remaining -= time.Second

	if c.remaining > 0 {
		c.emit(EventStateChanged)
		return nil
	}

	c.remaining = 0

	ended := c.current.Kind

	c.finalize(session.Completed)

	c.emit(EventSessionCompleted)
	c.emit(EventStateChanged)

	return c.advance(ended)
}

// HandlePromptDue feeds a fired next-prompt timer into the monitor and
// emits the prompt notification when a prompt is actually raised.
func (c *Controller) HandlePromptDue(gen int) {
	if c.Status() != session.Running {
		return
	}

	if c.monitor.PromptDue(gen) {
		c.emit(EventPromptRaised)
		c.emit(EventStateChanged)
	}
}

// HandlePromptTimeout feeds a fired prompt-response timeout into the
// monitor.
func (c *Controller) HandlePromptTimeout(gen int) {
	if c.Status() != session.Running {
		return
	}

	if c.monitor.TimeoutExpired(gen) {
		c.emit(EventStateChanged)
	}
}

// RespondToPrompt resolves a pending attention prompt with the user's
// answer.
func (c *Controller) RespondToPrompt(attentive bool) {
	if c.Status() != session.Running {
		return
	}

	c.monitor.Respond(attentive)

	c.emit(EventStateChanged)
}

// finalize merges the monitor's distraction record into the session,
// marks it terminal, and persists it. A failed write is logged but
// never blocks the transition: the in-memory lifecycle always
// completes.
func (c *Controller) finalize(status session.Status) {
	sess := c.current

	for _, at := range c.monitor.Distractions() {
		sess.RecordDistraction(at)
	}

	c.monitor.End()

	sess.Finalize(status, c.now(), c.remaining)

	c.remaining = 0
	c.nextKind = sess.Kind.Next()

	if c.db == nil {
		return
	}

	_, err := c.db.SaveSession(sess)
	if err != nil {
		slog.Error(
			"unable to save session",
			slog.Any("error", err),
			slog.String("kind", string(sess.Kind)),
			slog.String("status", string(sess.Status)),
		)
	}
}

// advance starts the next session when the relevant auto-start setting
// is on, and otherwise stays stopped with the next kind queued up.
func (c *Controller) advance(ended session.Kind) error {
	cfg := c.cfg()

	autoStart := cfg.Settings.AutoStartFocus
	if ended == session.Focus {
		autoStart = cfg.Settings.AutoStartRest
	}

	if !autoStart {
		return nil
	}

	return c.Start(ended.Next())
}
