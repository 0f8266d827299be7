package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chico-slowpitch/attendance-system/config"
	"github.com/chico-slowpitch/attendance-system/db"
	"github.com/chico-slowpitch/attendance-system/handlers"
	"github.com/chico-slowpitch/attendance-system/repositories"
	api "github.com/chico-slowpitch/attendance-system/routes"
	"github.com/chico-slowpitch/attendance-system/scheduler"
	"github.com/chico-slowpitch/attendance-system/services"
	"github.com/chico-slowpitch/attendance-system/storage"
	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.Int("min_players", cfg.MinPlayers),
		slog.String("rotation_weekday", cfg.RotationWeekday.String()),
		slog.String("rotation_timezone", cfg.RotationTimezone.String()))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	if err := db.Migrate(context.Background(), dbConn); err != nil {
		logger.Error("failed to apply schema", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("schema up to date")

	// Snapshot uploads are optional; without R2 credentials the weekly
	// reset simply skips the archive step.
	var uploader storage.FileUploader
	if cfg.SnapshotsEnabled() {
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized")
	} else {
		logger.Info("ledger snapshots disabled (no R2 configuration)")
	}

	attendeeRepo := repositories.NewPostgresAttendeeRepository(dbConn)
	gameRepo := repositories.NewPostgresGameRepository(dbConn)
	rosterRepo := repositories.NewPostgresRosterRepository(dbConn)
	logger.Info("repositories initialized")

	attendanceService := services.NewAttendanceService(attendeeRepo, cfg.MinPlayers)
	gameService := services.NewGameService(gameRepo)
	rosterService := services.NewRosterService(rosterRepo)
	rotationService := services.NewRotationService(attendanceService, gameService, uploader, logger)
	logger.Info("services initialized")

	seeded, err := gameService.EnsureSeasonSchedule(context.Background())
	if err != nil {
		logger.Error("failed to seed season schedule", slog.Any("error", err))
		os.Exit(1)
	}
	if seeded > 0 {
		logger.Info("season schedule seeded", slog.Int("games", seeded))
	}

	schedulerCtx, cancelScheduler := context.WithCancel(context.Background())
	defer cancelScheduler()

	weekly := scheduler.NewWeekly(rotationService, cfg.RotationWeekday, cfg.RotationTimezone, logger)
	go weekly.Start(schedulerCtx)
	logger.Info("weekly rotation scheduler started")

	attendeeHandler := handlers.NewAttendeeHandler(attendanceService)
	gameHandler := handlers.NewGameHandler(gameService)
	rosterHandler := handlers.NewRosterHandler(rosterService)
	logger.Info("HTTP handlers initialized")

	router := chi.NewRouter()
	api.SetupRoutes(router, attendeeHandler, gameHandler, rosterHandler)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		} else {
			logger.Info("server stopped gracefully")
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		cancelScheduler()
		weekly.Stop()
		logger.Info("weekly rotation scheduler stopped")

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		} else {
			logger.Info("server shutdown complete")
		}
	}
	logger.Info("application exited")
}
