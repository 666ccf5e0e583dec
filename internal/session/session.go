// Package session defines focus and rest sessions and their outcomes
package session

import "time"

// Kind represents the session kind.
type Kind string

const (
	Focus Kind = "Focus session"
	Rest  Kind = "Rest break"
)

// Next returns the kind that follows the receiver in the focus/rest
// cycle.
func (k Kind) Next() Kind {
	if k == Focus {
		return Rest
	}

	return Focus
}

// Status represents the lifecycle state of a session.
type Status string

const (
	Running     Status = "running"
	Paused      Status = "paused"
	Completed   Status = "completed"
	Interrupted Status = "interrupted"
	Cancelled   Status = "cancelled"
	Stopped     Status = "stopped"
)

// Terminal reports whether the status ends a session's lifecycle.
func (s Status) Terminal() bool {
	return s == Completed || s == Interrupted || s == Cancelled
}

// Message maps a session kind to a message.
type Message map[Kind]string

// Duration maps a session kind to a time duration value.
type Duration map[Kind]time.Duration

// Session represents one timed focus or rest interval with a recorded
// outcome. A session is immutable once finalized.
type Session struct {
	StartTime        time.Time     `json:"start_time"`
	EndTime          time.Time     `json:"end_time"`
	Kind             Kind          `json:"kind"`
	Status           Status        `json:"status"`
	Tags             []string      `json:"tags"`
	Distractions     []time.Time   `json:"distractions"`
	Notes            string        `json:"notes,omitempty"`
	ID               uint64        `json:"id,omitempty"`
	PlannedDuration  time.Duration `json:"planned_duration"`
	ActualDuration   time.Duration `json:"actual_duration"`
	DistractionCount int           `json:"distraction_count"`
}

// New initialises an unfinalized running session of the given kind.
func New(kind Kind, startTime time.Time, planned time.Duration) *Session {
	return &Session{
		Kind:            kind,
		StartTime:       startTime,
		PlannedDuration: planned,
		Status:          Running,
	}
}

// Saved reports whether the session has been assigned a persistent
// identifier by the store.
func (s *Session) Saved() bool {
	return s.ID != 0
}

// Finalized reports whether the session has reached a terminal status.
func (s *Session) Finalized() bool {
	return s.Status.Terminal()
}

// RecordDistraction appends a distraction timestamp, keeping the count
// and the timestamp list in lockstep. Rest sessions never accumulate
// distractions.
func (s *Session) RecordDistraction(at time.Time) {
	if s.Kind != Focus {
		return
	}

	s.Distractions = append(s.Distractions, at)
	s.DistractionCount = len(s.Distractions)
}

// Finalize moves the session to a terminal status, setting the end time
// and the actual duration from the time left on the clock. It is a
// no-op if the session is already finalized or the status is not
// terminal.
func (s *Session) Finalize(
	status Status,
	endTime time.Time,
	remaining time.Duration,
) {
	if s.Finalized() || !status.Terminal() {
		return
	}

	if remaining < 0 {
		remaining = 0
	}

	s.Status = status
	s.EndTime = endTime
	s.ActualDuration = s.PlannedDuration - remaining

	if status == Completed {
		s.ActualDuration = s.PlannedDuration
	}
}
