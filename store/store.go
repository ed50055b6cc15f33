// Package store persists preferences and the session history in a BoltDB
// database
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/rytavi/howmuch/history"
	"github.com/rytavi/howmuch/internal/apperr"
	"github.com/rytavi/howmuch/internal/models"
	"github.com/rytavi/howmuch/internal/timeutil"
)

const (
	settingsBucket = "settings"
	sessionBucket  = "sessions"
	prefsKey       = "preferences"
)

var ErrAlreadyRunning = &apperr.Error{
	Message: "is howmuch already running? Only one instance can be active at a time",
}

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// Load reads the preferences and every session record. Values that cannot
// be decoded are skipped so that one bad entry does not lose the rest.
func (c *Client) Load() (*models.Snapshot, error) {
	snap := &models.Snapshot{}

	err := c.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(settingsBucket)).Get([]byte(prefsKey)); len(v) > 0 {
			var prefs models.Preferences

			if err := json.Unmarshal(v, &prefs); err != nil {
				slog.Warn("discarding malformed preferences", slog.Any("error", err))
			} else {
				snap.Preferences = prefs
			}
		}

		cur := tx.Bucket([]byte(sessionBucket)).Cursor()

		for k, v := cur.Last(); k != nil; k, v = cur.Prev() {
			var rec history.Record

			if err := json.Unmarshal(v, &rec); err != nil {
				slog.Warn(
					"discarding malformed session record",
					slog.String("key", string(k)),
					slog.Any("error", err),
				)

				continue
			}

			snap.History = append(snap.History, rec)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return snap, nil
}

// Save overwrites the stored preferences and history in a single
// transaction.
func (c *Client) Save(snap *models.Snapshot) error {
	prefs, err := json.Marshal(snap.Preferences)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		err := tx.Bucket([]byte(settingsBucket)).Put([]byte(prefsKey), prefs)
		if err != nil {
			return err
		}

		err = tx.DeleteBucket([]byte(sessionBucket))
		if err != nil {
			return err
		}

		b, err := tx.CreateBucket([]byte(sessionBucket))
		if err != nil {
			return err
		}

		for i := range snap.History {
			rec := snap.History[i]

			value, err := json.Marshal(rec)
			if err != nil {
				return err
			}

			if err := b.Put(recordKey(rec), value); err != nil {
				return err
			}
		}

		return nil
	})
}

// recordKey orders records chronologically under a cursor. The id keeps
// records with identical timestamps apart.
func recordKey(rec history.Record) []byte {
	return append(timeutil.ToKey(rec.Timestamp), "_"+rec.ID...)
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
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, ErrAlreadyRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(settingsBucket))
		if err != nil {
			return err
		}

		_, err = tx.CreateBucketIfNotExists([]byte(sessionBucket))

		return err
	})
	if err != nil {
		_ = db.Close()

		return nil, err
	}

	return &Client{
		db,
	}, nil
}
