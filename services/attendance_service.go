package services

import (
	"context"
	"errors"
	"strings"

	"github.com/chico-slowpitch/attendance-system/models"
	"github.com/chico-slowpitch/attendance-system/repositories"
)

// Labels returned in AttendanceStats.GameStatus.
const (
	GameStatusGood        = "Good to Play"
	GameStatusNeedPlayers = "Need More Players"
)

type CheckInInput struct {
	FirstName string                  `json:"first_name"`
	LastName  string                  `json:"last_name"`
	Status    models.AttendanceStatus `json:"status"`
}

type AttendanceService interface {
	ListAttendees(ctx context.Context) ([]models.Attendee, error)
	// CheckIn upserts by (first name, last name): a repeated check-in for
	// the same name overwrites status and check-in time instead of adding
	// a second row.
	CheckIn(ctx context.Context, input CheckInInput) (*models.Attendee, error)
	// RemoveAttendee is idempotent: deleting an id that no longer exists
	// is treated as success.
	RemoveAttendee(ctx context.Context, id int) error
	ClearAll(ctx context.Context) error
	// Stats is computed from the ledger alone; it never consults the
	// game schedule.
	Stats(ctx context.Context) (*models.AttendanceStats, error)
}

type attendanceService struct {
	attendeeRepo repositories.AttendeeRepository
	minPlayers   int
}

func NewAttendanceService(attendeeRepo repositories.AttendeeRepository, minPlayers int) AttendanceService {
	return &attendanceService{
		attendeeRepo: attendeeRepo,
		minPlayers:   minPlayers,
	}
}

func (s *attendanceService) ListAttendees(ctx context.Context) ([]models.Attendee, error) {
	return s.attendeeRepo.List(ctx)
}

func (s *attendanceService) CheckIn(ctx context.Context, input CheckInInput) (*models.Attendee, error) {
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)

	if firstName == "" {
		return nil, ErrFirstNameRequired
	}
	if lastName == "" {
		return nil, ErrLastNameRequired
	}
	if !input.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	return s.attendeeRepo.Upsert(ctx, firstName, lastName, input.Status)
}

func (s *attendanceService) RemoveAttendee(ctx context.Context, id int) error {
	err := s.attendeeRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrAttendeeNotFound) {
		return nil
	}
	return err
}

func (s *attendanceService) ClearAll(ctx context.Context) error {
	return s.attendeeRepo.DeleteAll(ctx)
}

func (s *attendanceService) Stats(ctx context.Context) (*models.AttendanceStats, error) {
	attending, notAttending, err := s.attendeeRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	gameStatus := GameStatusNeedPlayers
	if attending >= s.minPlayers {
		gameStatus = GameStatusGood
	}

	return &models.AttendanceStats{
		Attending:    attending,
		NotAttending: notAttending,
		Total:        attending + notAttending,
		GameStatus:   gameStatus,
	}, nil
}
