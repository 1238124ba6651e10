package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"mototrack/internal/client"
	"mototrack/internal/config"
	"mototrack/internal/database"
	"mototrack/internal/health"
	"mototrack/internal/logger"
	"mototrack/internal/notify"
	"mototrack/internal/reminder"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "config/local.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting MotoTrack agent",
		zap.String("env", cfg.Env),
		zap.String("backend_url", cfg.API.BaseURL),
	)

	// Initialize database
	db, err := database.New(cfg.StoragePath, log.Logger)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()

	// Initialize API client
	apiClient := client.New(client.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: time.Duration(cfg.API.Timeout) * time.Second,
	}, log.Logger)

	// Pick the notification sender: FCM when configured, log output otherwise
	var sender notify.Sender
	if cfg.Reminder.FirebaseCredentials != "" && cfg.Reminder.DeviceToken != "" {
		fcm, err := notify.NewFCMSender(
			context.Background(),
			cfg.Reminder.FirebaseCredentials,
			cfg.Reminder.DeviceToken,
			log.Logger,
		)
		if err != nil {
			log.Fatal("Failed to initialize Firebase", zap.Error(err))
		}
		sender = fcm
	} else {
		log.Info("Firebase not configured, notifications go to the log")
		sender = notify.NewLogSender(log.Logger)
	}

	// Initialize reminder scheduling
	dispatcher := reminder.NewDispatcher(sender, log.Logger)
	handleStore := reminder.NewHandleStore(db.DB, log.Logger)
	scheduler := reminder.NewScheduler(dispatcher, handleStore, log.Logger)

	// Re-arm reminders persisted before the last shutdown
	if err := scheduler.Restore(); err != nil {
		log.Error("Failed to restore reminders", zap.Error(err))
	}

	// Start connectivity polling
	poller := health.NewPoller(
		apiClient,
		time.Duration(cfg.Health.PollInterval)*time.Second,
		log.Logger,
	)
	poller.Start()

	log.Info("MotoTrack agent started")

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	log.Info("Received shutdown signal", zap.String("signal", sig.String()))

	poller.Stop()
	dispatcher.Stop()

	log.Info("MotoTrack agent stopped")
}
