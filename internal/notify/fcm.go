package notify

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// FCMSender pushes notifications to the user's device through Firebase
// Cloud Messaging.
type FCMSender struct {
	client      *messaging.Client
	deviceToken string
	logger      *zap.Logger
}

// NewFCMSender initializes the Firebase app from a credentials file and
// targets the given device token.
func NewFCMSender(ctx context.Context, credentialsPath, deviceToken string, logger *zap.Logger) (*FCMSender, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting Messaging client: %w", err)
	}

	logger.Info("Firebase messaging initialized")

	return &FCMSender{
		client:      client,
		deviceToken: deviceToken,
		logger:      logger,
	}, nil
}

// Send delivers one notification. A rejected or unregistered token is
// reported as an error; the caller decides whether that matters.
func (s *FCMSender) Send(ctx context.Context, n Notification) error {
	if s.deviceToken == "" {
		return fmt.Errorf("device token is empty")
	}

	message := &messaging.Message{
		Token: s.deviceToken,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Data: n.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				Sound:        "default",
				ChannelID:    "mototrack_reminders",
				DefaultSound: true,
			},
		},
	}

	response, err := s.client.Send(ctx, message)
	if err != nil {
		if messaging.IsRegistrationTokenNotRegistered(err) {
			s.logger.Warn("Device token no longer registered")
		}
		return fmt.Errorf("error sending push: %w", err)
	}

	s.logger.Debug("Push delivered", zap.String("message_id", response))
	return nil
}
