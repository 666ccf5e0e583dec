package store

import (
	"time"

	"github.com/xuxu777xu/random-prompt-focus-app/internal/session"
)

// DB is the database storage interface.
type DB interface {
	// SaveSession persists a finalized session. The store assigns a
	// persistent identifier on first save and returns it; subsequent
	// saves of the same session overwrite the stored copy.
	SaveSession(sess *session.Session) (uint64, error)
	// GetSessions returns saved sessions whose start time falls within
	// the given bounds, filtered by tags when any are provided.
	GetSessions(
		startTime, endTime time.Time,
		tags []string,
	) ([]session.Session, error)
	// DeleteSessions deletes one or more saved sessions by identifier.
	DeleteSessions(ids []uint64) error
	// Close ends the database connection.
	Close() error
	// Open begins a database connection.
	Open() error
}
