package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/chico-slowpitch/attendance-system/models"
)

var ErrAttendeeNotFound = errors.New("attendee not found")

type AttendeeRepository interface {
	// List returns the ledger ordered by most recent check-in first.
	List(ctx context.Context) ([]models.Attendee, error)
	GetByName(ctx context.Context, firstName, lastName string) (*models.Attendee, error)
	// Upsert inserts a check-in or, when the name already has a row,
	// overwrites its status and check-in time in a single statement.
	Upsert(ctx context.Context, firstName, lastName string, status models.AttendanceStatus) (*models.Attendee, error)
	Delete(ctx context.Context, id int) error
	DeleteAll(ctx context.Context) error
	CountByStatus(ctx context.Context) (attending, notAttending int, err error)
}

type postgresAttendeeRepository struct {
	db *sql.DB
}

func NewPostgresAttendeeRepository(db *sql.DB) AttendeeRepository {
	return &postgresAttendeeRepository{db: db}
}

func (r *postgresAttendeeRepository) List(ctx context.Context) ([]models.Attendee, error) {
	query := `
		SELECT id, first_name, last_name, status, checked_in_at
		FROM attendees
		ORDER BY checked_in_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attendees := make([]models.Attendee, 0)
	for rows.Next() {
		var a models.Attendee
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Status, &a.CheckedInAt); err != nil {
			return nil, err
		}
		attendees = append(attendees, a)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return attendees, nil
}

func (r *postgresAttendeeRepository) GetByName(ctx context.Context, firstName, lastName string) (*models.Attendee, error) {
	query := `
		SELECT id, first_name, last_name, status, checked_in_at
		FROM attendees
		WHERE first_name = $1 AND last_name = $2`

	var a models.Attendee
	err := r.db.QueryRowContext(ctx, query, firstName, lastName).Scan(
		&a.ID, &a.FirstName, &a.LastName, &a.Status, &a.CheckedInAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAttendeeNotFound
		}
		return nil, err
	}
	return &a, nil
}

// Upsert relies on the attendees_name_key unique index, so two concurrent
// check-ins for the same name serialize in the database and the later one
// wins. checked_in_at resets on every call, including pure status changes.
func (r *postgresAttendeeRepository) Upsert(ctx context.Context, firstName, lastName string, status models.AttendanceStatus) (*models.Attendee, error) {
	query := `
		INSERT INTO attendees (first_name, last_name, status, checked_in_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (first_name, last_name)
		DO UPDATE SET status = EXCLUDED.status, checked_in_at = now()
		RETURNING id, first_name, last_name, status, checked_in_at`

	var a models.Attendee
	err := r.db.QueryRowContext(ctx, query, firstName, lastName, status).Scan(
		&a.ID, &a.FirstName, &a.LastName, &a.Status, &a.CheckedInAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert attendee: %w", err)
	}
	return &a, nil
}

func (r *postgresAttendeeRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM attendees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrAttendeeNotFound)
}

func (r *postgresAttendeeRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM attendees`)
	return err
}

func (r *postgresAttendeeRepository) CountByStatus(ctx context.Context) (int, int, error) {
	query := `SELECT status, COUNT(*) FROM attendees GROUP BY status`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return 0, 0, err
	}
	defer rows.Close()

	var attending, notAttending int
	for rows.Next() {
		var status models.AttendanceStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return 0, 0, err
		}
		switch status {
		case models.StatusIn:
			attending = count
		case models.StatusOut:
			notAttending = count
		}
	}
	if err = rows.Err(); err != nil {
		return 0, 0, err
	}

	return attending, notAttending, nil
}
