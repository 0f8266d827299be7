package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/chico-slowpitch/attendance-system/models"
	"github.com/chico-slowpitch/attendance-system/storage"
)

// ledgerSnapshot is what gets archived before the weekly reset wipes the
// ledger: the closing state of the week, paired with the game it was for.
type ledgerSnapshot struct {
	TakenAt   time.Time         `json:"taken_at"`
	Game      *models.Game      `json:"game"`
	Attendees []models.Attendee `json:"attendees"`
}

type RotationService interface {
	// RunWeeklyReset archives the ledger (when an uploader is
	// configured), clears it, and advances the active game to the next
	// schedule entry. At the end of the season the active game stays put
	// and only the ledger is cleared.
	RunWeeklyReset(ctx context.Context) error
}

type rotationService struct {
	attendance AttendanceService
	games      GameService
	uploader   storage.FileUploader // nil disables snapshots
	logger     *slog.Logger
}

func NewRotationService(attendance AttendanceService, games GameService, uploader storage.FileUploader, logger *slog.Logger) RotationService {
	return &rotationService{
		attendance: attendance,
		games:      games,
		uploader:   uploader,
		logger:     logger,
	}
}

func (s *rotationService) RunWeeklyReset(ctx context.Context) error {
	// Snapshot first: once ClearAll runs the week's ledger is gone, so a
	// failed archive aborts the reset and the next fire retries.
	if s.uploader != nil {
		if err := s.archiveLedger(ctx); err != nil {
			return fmt.Errorf("ledger snapshot failed, reset aborted: %w", err)
		}
	}

	if err := s.attendance.ClearAll(ctx); err != nil {
		return fmt.Errorf("failed to clear attendance: %w", err)
	}
	s.logger.Info("weekly reset: attendance cleared")

	next, err := s.games.NextGame(ctx)
	if err != nil {
		return fmt.Errorf("failed to determine next game: %w", err)
	}
	if next == nil {
		s.logger.Info("weekly reset: no next game on the schedule, active game unchanged")
		return nil
	}

	if err := s.games.ActivateGame(ctx, next.ID); err != nil {
		return fmt.Errorf("failed to activate game %d: %w", next.ID, err)
	}
	s.logger.Info("weekly reset: activated next game",
		slog.Int("game_id", next.ID),
		slog.String("opponent", next.Opponent))

	return nil
}

func (s *rotationService) archiveLedger(ctx context.Context) error {
	attendees, err := s.attendance.ListAttendees(ctx)
	if err != nil {
		return fmt.Errorf("failed to list attendees: %w", err)
	}
	game, err := s.games.GetActiveGame(ctx)
	if err != nil {
		return fmt.Errorf("failed to load active game: %w", err)
	}

	snapshot := ledgerSnapshot{
		TakenAt:   time.Now().UTC(),
		Game:      game,
		Attendees: attendees,
	}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	key := fmt.Sprintf("snapshots/ledger-%s.json", snapshot.TakenAt.Format("2006-01-02T15-04-05Z"))
	result, err := s.uploader.Upload(ctx, key, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	s.logger.Info("weekly reset: ledger archived",
		slog.String("key", result.Key),
		slog.Int("attendees", len(attendees)))

	return nil
}
