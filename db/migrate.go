package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema statements are idempotent so Migrate can run on every startup.
// Uniqueness on names is enforced here rather than in application code:
// the check-in upsert and the roster conflict check both depend on it.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS attendees (
		id            SERIAL PRIMARY KEY,
		first_name    TEXT NOT NULL,
		last_name     TEXT NOT NULL,
		status        TEXT NOT NULL,
		checked_in_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS attendees_name_key
		ON attendees (first_name, last_name)`,
	`CREATE TABLE IF NOT EXISTS games (
		id        SERIAL PRIMARY KEY,
		opponent  TEXT NOT NULL,
		home_away TEXT NOT NULL,
		field     TEXT NOT NULL,
		date      DATE NOT NULL,
		time      TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS team_roster (
		id         SERIAL PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name  TEXT NOT NULL,
		is_active  BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS team_roster_active_name_key
		ON team_roster (first_name, last_name) WHERE is_active`,
}

// Migrate applies the schema. Statements are ordered and each is safe to
// re-run, so there is no separate migration bookkeeping table.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
