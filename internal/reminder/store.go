package reminder

import (
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// HandleStore persists the mapping from entity key to the handle of its
// active notification. It is the only component that reads or writes the
// reminder_handles table.
type HandleStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// PendingReminder is a persisted reminder row, used to restore timers
// after a restart.
type PendingReminder struct {
	EntityKey string
	Handle    string
	FireAt    time.Time
	Title     string
	Body      string
}

// NewHandleStore creates a store on top of an open database.
func NewHandleStore(db *sql.DB, logger *zap.Logger) *HandleStore {
	return &HandleStore{db: db, logger: logger}
}

// Put writes the handle for key, overwriting any previous row.
func (s *HandleStore) Put(key, handle string, fireAt time.Time, title, body string) error {
	_, err := s.db.Exec(`
		INSERT INTO reminder_handles (entity_key, handle, fire_at, title, body)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(entity_key) DO UPDATE SET
			handle = excluded.handle,
			fire_at = excluded.fire_at,
			title = excluded.title,
			body = excluded.body,
			created_at = CURRENT_TIMESTAMP
	`, key, handle, fireAt.UTC(), title, body)
	if err != nil {
		return fmt.Errorf("failed to store reminder handle: %w", err)
	}

	s.logger.Debug("Reminder handle stored",
		zap.String("entity_key", key),
		zap.String("handle", handle),
	)
	return nil
}

// Get returns the handle for key, if one is persisted.
func (s *HandleStore) Get(key string) (string, bool, error) {
	var handle string
	err := s.db.QueryRow(`
		SELECT handle FROM reminder_handles WHERE entity_key = ?
	`, key).Scan(&handle)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to look up reminder handle: %w", err)
	}
	return handle, true, nil
}

// Delete removes the row for key. Deleting a missing key is a no-op.
func (s *HandleStore) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM reminder_handles WHERE entity_key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete reminder handle: %w", err)
	}
	return nil
}

// Pending returns every persisted reminder, ordered by fire time.
func (s *HandleStore) Pending() ([]PendingReminder, error) {
	rows, err := s.db.Query(`
		SELECT entity_key, handle, fire_at, title, body
		FROM reminder_handles
		ORDER BY fire_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending reminders: %w", err)
	}
	defer rows.Close()

	var pending []PendingReminder
	for rows.Next() {
		var p PendingReminder
		if err := rows.Scan(&p.EntityKey, &p.Handle, &p.FireAt, &p.Title, &p.Body); err != nil {
			s.logger.Error("Failed to scan reminder row", zap.Error(err))
			continue
		}
		pending = append(pending, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return pending, nil
}
