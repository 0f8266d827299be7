package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the application.
type Config struct {
	DatabaseURL string
	ServerPort  int

	// MinPlayers is the attendance threshold that separates "Good to Play"
	// from "Need More Players" on the stats endpoint.
	MinPlayers int

	// Weekly rotation: the reset fires at 00:00 on RotationWeekday in
	// RotationTimezone.
	RotationWeekday  time.Weekday
	RotationTimezone *time.Location

	// Cloudflare R2 credentials for the pre-rotation ledger snapshot.
	// All empty means snapshots are disabled.
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicBaseURL   string
}

// SnapshotsEnabled reports whether R2 snapshot archiving is configured.
func (c *Config) SnapshotsEnabled() bool {
	return c.R2AccountID != "" || c.R2AccessKeyID != "" || c.R2SecretAccessKey != "" ||
		c.R2BucketName != "" || c.R2PublicBaseURL != ""
}

var weekdays = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

// Load reads configuration from environment variables. A .env file is
// loaded first when present; its absence is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	port, err := strconv.Atoi(getEnvOrDefault("SERVER_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	minPlayers, err := strconv.Atoi(getEnvOrDefault("MIN_PLAYERS", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid MIN_PLAYERS environment variable: %w", err)
	}
	if minPlayers < 1 {
		return nil, fmt.Errorf("MIN_PLAYERS must be positive, got %d", minPlayers)
	}

	weekdayName := getEnvOrDefault("ROTATION_WEEKDAY", "Saturday")
	weekday, ok := weekdays[weekdayName]
	if !ok {
		return nil, fmt.Errorf("invalid ROTATION_WEEKDAY %q", weekdayName)
	}

	tzName := getEnvOrDefault("ROTATION_TIMEZONE", "America/Los_Angeles")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("invalid ROTATION_TIMEZONE %q: %w", tzName, err)
	}

	cfg := &Config{
		DatabaseURL:       dbURL,
		ServerPort:        port,
		MinPlayers:        minPlayers,
		RotationWeekday:   weekday,
		RotationTimezone:  loc,
		R2AccountID:       os.Getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
		R2BucketName:      os.Getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL:   os.Getenv("R2_PUBLIC_BASE_URL"),
	}

	return cfg, nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
