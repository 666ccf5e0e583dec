package timer

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/xuxu777xu/random-prompt-focus-app/internal/config"
	"github.com/xuxu777xu/random-prompt-focus-app/internal/session"
)

const (
	minPromptInterval = 1 * time.Minute
	maxPromptInterval = 30 * time.Minute

	// fallbackLambda guards against a zero or negative rate slipping
	// past config validation, which would otherwise yield an infinite
	// delay.
	fallbackLambda = 0.01
)

// timerKind distinguishes the two one-shot timers the monitor asks its
// host to arm. At most one of them is pending at any instant.
type timerKind int

const (
	timerPrompt timerKind = iota
	timerTimeout
)

// PromptTimer describes a one-shot timer the host must arm on the
// monitor's behalf. Gen must be passed back when the timer fires so
// that callbacks outliving a pause or stop are discarded.
type PromptTimer struct {
	Delay time.Duration
	Gen   int
	kind  timerKind
}

// Timeout reports whether the timer is a prompt-response timeout rather
// than a next-prompt delay.
func (p PromptTimer) Timeout() bool {
	return p.kind == timerTimeout
}

// Monitor schedules randomized attention checks during a running focus
// session and records distractions when a prompt times out or is
// answered negatively. It owns no real timers: every delay is handed to
// the host as a PromptTimer and comes back through PromptDue,
// TimeoutExpired, or Respond.
type Monitor struct {
	now  func() time.Time
	rand func() float64

	opts         config.MonitorConfig
	distractions []time.Time
	pending      *PromptTimer
	gen          int
	active       bool
	prompting    bool
}

// NewMonitor creates an attention monitor. The random source must
// return uniform samples in [0, 1).
func NewMonitor(now func() time.Time, random func() float64) *Monitor {
	if now == nil {
		now = time.Now
	}

	if random == nil {
		random = rand.Float64
	}

	return &Monitor{
		now:  now,
		rand: random,
	}
}

// Prompting reports whether an attention prompt is awaiting a response.
func (m *Monitor) Prompting() bool {
	return m.prompting
}

// Distractions returns the distraction timestamps recorded for the
// current session so far.
func (m *Monitor) Distractions() []time.Time {
	return m.distractions
}

// NextTimer pops the one-shot timer the host must arm next, if any.
func (m *Monitor) NextTimer() (PromptTimer, bool) {
	if m.pending == nil {
		return PromptTimer{}, false
	}

	p := *m.pending
	m.pending = nil

	return p, true
}

// nextInterval draws the delay until the next attention prompt by
// inverse-CDF sampling of an exponential distribution with the
// configured rate, clamped to the operational window.
func (m *Monitor) nextInterval() time.Duration {
	lambda := m.opts.Lambda
	if lambda <= 0 {
		lambda = fallbackLambda
	}

	u := m.rand()

	mins := -math.Log(1-u) / lambda

	delay := time.Duration(mins * float64(time.Minute))

	if delay < minPromptInterval {
		delay = minPromptInterval
	}

	if delay > maxPromptInterval {
		delay = maxPromptInterval
	}

	return delay
}

// schedule arms the next-prompt timer under a fresh generation.
func (m *Monitor) schedule() {
	m.gen++
	m.pending = &PromptTimer{
		Delay: m.nextInterval(),
		Gen:   m.gen,
		kind:  timerPrompt,
	}
}

// Begin starts attention monitoring for a new session. It does nothing
// when monitoring is disabled or the session is a rest break. The
// monitor pulls its settings fresh on each call so that configuration
// changes take effect on the next session.
func (m *Monitor) Begin(kind session.Kind, opts config.MonitorConfig) {
	m.distractions = nil
	m.prompting = false
	m.pending = nil
	m.gen++

	if !opts.Enabled || kind != session.Focus {
		m.active = false
		return
	}

	m.opts = opts
	m.active = true

	m.schedule()
}

// Suspend cancels any pending timer without clearing the prompting flag
// or the recorded distractions. A prompt that was on screen when the
// session paused is still awaiting its answer after resume.
func (m *Monitor) Suspend() {
	if !m.active {
		return
	}

	m.gen++
	m.pending = nil
}

// Resume re-arms the monitor after a pause. A preserved prompt gets a
// full response timeout again; otherwise a new interval is drawn, with
// no carry-over of wait time elapsed before the pause.
func (m *Monitor) Resume() {
	if !m.active {
		return
	}

	if m.prompting {
		m.gen++
		m.pending = &PromptTimer{
			Delay: m.opts.PromptTimeout,
			Gen:   m.gen,
			kind:  timerTimeout,
		}

		return
	}

	m.schedule()
}

// End shuts the monitor down when its session leaves the running state.
// Recorded distractions survive until the next Begin so the controller
// can merge them into the finalized session.
func (m *Monitor) End() {
	m.gen++
	m.pending = nil
	m.prompting = false
	m.active = false
}

// PromptDue handles the next-prompt timer firing. It reports whether a
// prompt was raised; a stale generation means the timer was cancelled
// after the callback was already queued and must be ignored.
func (m *Monitor) PromptDue(gen int) bool {
	if !m.active || m.prompting || gen != m.gen {
		return false
	}

	m.prompting = true

	m.gen++
	m.pending = &PromptTimer{
		Delay: m.opts.PromptTimeout,
		Gen:   m.gen,
		kind:  timerTimeout,
	}

	return true
}

// Respond resolves a pending prompt. A negative answer records a
// distraction. Responses arriving when no prompt is pending are
// silently ignored since the user may race the timeout.
func (m *Monitor) Respond(attentive bool) {
	if !m.active || !m.prompting {
		return
	}

	if !attentive {
		m.distractions = append(m.distractions, m.now())
	}

	m.prompting = false

	m.schedule()
}

// TimeoutExpired handles the prompt-response timeout firing. An
// unanswered prompt counts as a distraction.
func (m *Monitor) TimeoutExpired(gen int) bool {
	if !m.active || !m.prompting || gen != m.gen {
		return false
	}

	m.distractions = append(m.distractions, m.now())

	m.prompting = false

	m.schedule()

	return true
}
