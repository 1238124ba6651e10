package notify

import (
	"context"

	"go.uber.org/zap"
)

// LogSender writes notifications to the log instead of a device. Used
// when Firebase credentials are not configured, and in tests.
type LogSender struct {
	logger *zap.Logger
}

func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, n Notification) error {
	s.logger.Info("Notification",
		zap.String("title", n.Title),
		zap.String("body", n.Body),
	)
	return nil
}
