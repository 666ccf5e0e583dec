// Package store connects to the data store and manages saved sessions
package store

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"io/fs"
	"slices"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/xuxu777xu/random-prompt-focus-app/internal/session"
)

var pathToDB string

var sessionsBucket = []byte("sessions")

var errAlreadyRunning = errors.New(
	"is Vigil already running? Only one instance can be active at a time",
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// itob converts a session identifier to a big-endian byte key so that
// bolt cursors iterate sessions in insertion order.
func itob(id uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, id)

	return b
}

func (c *Client) SaveSession(sess *session.Session) (uint64, error) {
	err := c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(sessionsBucket)

		if sess.ID == 0 {
			id, err := b.NextSequence()
			if err != nil {
				return err
			}

			sess.ID = id
		}

		value, err := json.Marshal(sess)
		if err != nil {
			return err
		}

		return b.Put(itob(sess.ID), value)
	})
	if err != nil {
		return 0, err
	}

	return sess.ID, nil
}

func (c *Client) GetSessions(
	startTime, endTime time.Time,
	tags []string,
) ([]session.Session, error) {
	var sessions []session.Session

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket(sessionsBucket).Cursor()

		for k, v := cur.First(); k != nil; k, v = cur.Next() {
			var sess session.Session

			err := json.Unmarshal(v, &sess)
			if err != nil {
				return err
			}

			if sess.StartTime.Before(startTime) ||
				sess.StartTime.After(endTime) {
				continue
			}

			if len(tags) != 0 && !matchesTags(&sess, tags) {
				continue
			}

			sessions = append(sessions, sess)
		}

		return nil
	})

	return sessions, err
}

func matchesTags(sess *session.Session, tags []string) bool {
	for _, t := range sess.Tags {
		if slices.Contains(tags, t) {
			return true
		}
	}

	return false
}

func (c *Client) DeleteSessions(ids []uint64) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(sessionsBucket)

		for _, id := range ids {
			err := b.Delete(itob(id))
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func (c *Client) Open() error {
	db, err := openDB(pathToDB)
	if err != nil {
		return err
	}

	*c = Client{
		db,
	}

	return nil
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	pathToDB = dbPath

	db, err := openDB(pathToDB)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists(sessionsBucket)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		db,
	}, nil
}
