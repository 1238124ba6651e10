// Package reminder schedules local notifications ahead of appointment due
// times and manages their cancel/reschedule lifecycle keyed by entity
// identity.
package reminder

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Scheduler ties notification timers to entity identities. At most one
// reminder is meant to exist per (kind, id) pair; Reschedule enforces
// that, Schedule alone trusts the caller.
type Scheduler struct {
	dispatcher *Dispatcher
	store      *HandleStore
	logger     *zap.Logger
}

// NewScheduler creates a scheduler on top of a dispatcher and a handle store.
func NewScheduler(dispatcher *Dispatcher, store *HandleStore, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		dispatcher: dispatcher,
		store:      store,
		logger:     logger,
	}
}

// entityKey builds the persisted key for a (kind, id) pair.
func entityKey(kindKey string, entityID int64) string {
	return fmt.Sprintf("%s-%d", kindKey, entityID)
}

// Schedule registers a reminder to fire lead before whenDue. When that
// point is already in the past the reminder fires at whenDue itself; it
// is never dropped and never scheduled behind now. The persisted handle
// for the key is overwritten without canceling a previous timer — callers
// that may be replacing an existing reminder use Reschedule.
func (s *Scheduler) Schedule(kindKey string, entityID int64, whenDue time.Time, lead time.Duration, title, body string) error {
	fireAt := whenDue.Add(-lead)
	if fireAt.Before(time.Now()) {
		fireAt = whenDue
	}

	handle := s.dispatcher.ScheduleAt(fireAt, title, body)

	key := entityKey(kindKey, entityID)
	if err := s.store.Put(key, handle, fireAt, title, body); err != nil {
		s.dispatcher.Cancel(handle)
		return err
	}

	s.logger.Info("Reminder scheduled",
		zap.String("entity_key", key),
		zap.Time("due", whenDue),
		zap.Time("fire_at", fireAt),
	)
	return nil
}

// Cancel stops and forgets the reminder for the key. A key with no
// persisted handle is a no-op, not an error.
func (s *Scheduler) Cancel(kindKey string, entityID int64) error {
	key := entityKey(kindKey, entityID)

	handle, ok, err := s.store.Get(key)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	s.dispatcher.Cancel(handle)
	if err := s.store.Delete(key); err != nil {
		return err
	}

	s.logger.Info("Reminder canceled", zap.String("entity_key", key))
	return nil
}

// Reschedule replaces the reminder for the key: cancel, then schedule
// with the new parameters. Used when an entity's due time changes.
func (s *Scheduler) Reschedule(kindKey string, entityID int64, whenDue time.Time, lead time.Duration, title, body string) error {
	if err := s.Cancel(kindKey, entityID); err != nil {
		return err
	}
	return s.Schedule(kindKey, entityID, whenDue, lead, title, body)
}

// NotifyNow fires a confirmation notification immediately, typically
// after a create/update/delete completes. Nothing is persisted and the
// notification cannot be canceled.
func (s *Scheduler) NotifyNow(kind, action, message string) {
	title := fmt.Sprintf("%s %s", kind, action)
	if message == "" {
		message = title
	}
	s.dispatcher.Notify(title, message)
}

// Restore re-registers timers for every persisted reminder after a
// restart. Reminders whose fire time passed while the process was down
// fire immediately. Each restored reminder gets a fresh handle.
func (s *Scheduler) Restore() error {
	pending, err := s.store.Pending()
	if err != nil {
		return err
	}

	for _, p := range pending {
		handle := s.dispatcher.ScheduleAt(p.FireAt, p.Title, p.Body)
		if err := s.store.Put(p.EntityKey, handle, p.FireAt, p.Title, p.Body); err != nil {
			s.logger.Error("Failed to restore reminder",
				zap.String("entity_key", p.EntityKey),
				zap.Error(err),
			)
			s.dispatcher.Cancel(handle)
			continue
		}
	}

	if len(pending) > 0 {
		s.logger.Info("Reminders restored", zap.Int("count", len(pending)))
	}
	return nil
}
