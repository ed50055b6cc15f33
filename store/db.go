package store

import (
	"github.com/rytavi/howmuch/internal/models"
)

// DB is the database storage interface.
type DB interface {
	// Load returns the persisted preferences and history. A fresh database
	// yields an empty snapshot.
	Load() (*models.Snapshot, error)
	// Save replaces the persisted preferences and history with snap
	Save(snap *models.Snapshot) error
	// Close ends the database connection
	Close() error
}
