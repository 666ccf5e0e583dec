package timer

import (
	"time"

	"github.com/xuxu777xu/random-prompt-focus-app/internal/session"
)

// EventType identifies a lifecycle notification emitted by the
// controller.
type EventType string

const (
	EventSessionStarted   EventType = "session-started"
	EventSessionCompleted EventType = "session-completed"
	EventPromptRaised     EventType = "attention-prompt-raised"
	EventStateChanged     EventType = "state-changed"
)

// Event is a notification emitted after a state mutation. It carries a
// snapshot of the timer state at the moment of emission so consumers
// never reach back into live state.
type Event struct {
	Time      time.Time      `json:"time"`
	Type      EventType      `json:"type"`
	Kind      session.Kind   `json:"kind"`
	Status    session.Status `json:"status"`
	Remaining time.Duration  `json:"remaining"`
	Prompting bool           `json:"prompting"`
}
