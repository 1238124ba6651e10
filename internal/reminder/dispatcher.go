package reminder

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mototrack/internal/notify"
)

// Dispatcher is the in-process notification facility. It keeps one timer
// per scheduled notification, keyed by an opaque handle, and delivers
// through the configured sender when a timer fires. Delivery failures are
// logged and swallowed; from the scheduler's perspective a reminder that
// cannot be shown simply never appears.
type Dispatcher struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
	sender notify.Sender
	logger *zap.Logger
}

// NewDispatcher creates a dispatcher delivering through sender.
func NewDispatcher(sender notify.Sender, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		timers: make(map[string]*time.Timer),
		sender: sender,
		logger: logger,
	}
}

// ScheduleAt registers a notification to fire at fireAt and returns its
// handle. A fire time at or before now fires immediately.
func (d *Dispatcher) ScheduleAt(fireAt time.Time, title, body string) string {
	handle := uuid.NewString()

	delay := time.Until(fireAt)
	if delay < 0 {
		delay = 0
	}

	d.mu.Lock()
	d.timers[handle] = time.AfterFunc(delay, func() {
		d.fire(handle, title, body)
	})
	d.mu.Unlock()

	d.logger.Debug("Notification scheduled",
		zap.String("handle", handle),
		zap.Time("fire_at", fireAt),
	)
	return handle
}

// Cancel stops the timer for handle. Unknown handles are a no-op.
func (d *Dispatcher) Cancel(handle string) bool {
	d.mu.Lock()
	timer, ok := d.timers[handle]
	if ok {
		timer.Stop()
		delete(d.timers, handle)
	}
	d.mu.Unlock()

	if ok {
		d.logger.Debug("Notification canceled", zap.String("handle", handle))
	}
	return ok
}

// Notify delivers a notification immediately, with no handle and no
// cancel path.
func (d *Dispatcher) Notify(title, body string) {
	d.send(title, body)
}

// Active returns the number of pending timers.
func (d *Dispatcher) Active() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.timers)
}

// Stop cancels every pending timer.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	for handle, timer := range d.timers {
		timer.Stop()
		delete(d.timers, handle)
	}
	d.mu.Unlock()
	d.logger.Info("Notification dispatcher stopped")
}

func (d *Dispatcher) fire(handle, title, body string) {
	d.mu.Lock()
	delete(d.timers, handle)
	d.mu.Unlock()

	d.send(title, body)
}

func (d *Dispatcher) send(title, body string) {
	err := d.sender.Send(context.Background(), notify.Notification{
		Title: title,
		Body:  body,
	})
	if err != nil {
		d.logger.Warn("Notification delivery failed",
			zap.String("title", title),
			zap.Error(err),
		)
	}
}
