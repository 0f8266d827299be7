package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/chico-slowpitch/attendance-system/models"
	"github.com/chico-slowpitch/attendance-system/repositories"
	"github.com/chico-slowpitch/attendance-system/storage"
)

type fakeUploader struct {
	uploads []string
	failErr error
}

func (u *fakeUploader) Upload(ctx context.Context, key, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	if u.failErr != nil {
		return nil, u.failErr
	}
	if _, err := io.ReadAll(reader); err != nil {
		return nil, err
	}
	u.uploads = append(u.uploads, key)
	return &storage.UploadResult{Key: key}, nil
}

func (u *fakeUploader) Delete(ctx context.Context, key string) error { return nil }

func (u *fakeUploader) GetPublicURL(key string) string { return "https://snapshots.test/" + key }

type rotationFixture struct {
	attendance AttendanceService
	games      GameService
	seed       []models.Game
}

func newRotationFixture(t *testing.T, uploader storage.FileUploader) (RotationService, *rotationFixture) {
	t.Helper()

	_, attendanceSvc := newAttendanceFixture(10)
	gameRepo := repositories.NewInMemoryGameRepository()
	gameSvc := NewGameService(gameRepo)
	ctx := context.Background()

	seed := []models.Game{
		{Opponent: "Chico Islanders", HomeAway: models.GameHome, Field: "Hooker Oak Park", Date: fridayOf(2025, time.June, 20), Time: "7:10 PM PST", IsActive: true},
		{Opponent: "Hignell Hooligans", HomeAway: models.GameHome, Field: "Hooker Oak Park", Date: fridayOf(2025, time.June, 27), Time: "6:00 PM PST"},
	}
	for i := range seed {
		if err := gameRepo.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("seed game err=%v", err)
		}
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewRotationService(attendanceSvc, gameSvc, uploader, logger)
	return svc, &rotationFixture{attendance: attendanceSvc, games: gameSvc, seed: seed}
}

func (f *rotationFixture) checkInSome(t *testing.T) {
	t.Helper()
	for _, n := range [][2]string{{"Ann", "Avila"}, {"Ben", "Brock"}} {
		if _, err := f.attendance.CheckIn(context.Background(), CheckInInput{FirstName: n[0], LastName: n[1], Status: models.StatusIn}); err != nil {
			t.Fatalf("CheckIn err=%v", err)
		}
	}
}

func TestRotationService_RunWeeklyReset_AdvancesGameAndClearsLedger(t *testing.T) {
	t.Parallel()

	svc, f := newRotationFixture(t, nil)
	ctx := context.Background()
	f.checkInSome(t)

	if err := svc.RunWeeklyReset(ctx); err != nil {
		t.Fatalf("RunWeeklyReset err=%v", err)
	}

	attendees, err := f.attendance.ListAttendees(ctx)
	if err != nil {
		t.Fatalf("ListAttendees err=%v", err)
	}
	if len(attendees) != 0 {
		t.Fatalf("ledger not cleared: %d records", len(attendees))
	}

	active, err := f.games.GetActiveGame(ctx)
	if err != nil {
		t.Fatalf("GetActiveGame err=%v", err)
	}
	if active == nil || active.ID != f.seed[1].ID {
		t.Fatalf("active=%+v, want next game id %d", active, f.seed[1].ID)
	}
}

func TestRotationService_RunWeeklyReset_EndOfSeasonKeepsActiveGame(t *testing.T) {
	t.Parallel()

	svc, f := newRotationFixture(t, nil)
	ctx := context.Background()

	// Walk to the last game, then reset once more.
	if err := f.games.ActivateGame(ctx, f.seed[1].ID); err != nil {
		t.Fatalf("ActivateGame err=%v", err)
	}
	f.checkInSome(t)

	if err := svc.RunWeeklyReset(ctx); err != nil {
		t.Fatalf("RunWeeklyReset err=%v", err)
	}

	attendees, err := f.attendance.ListAttendees(ctx)
	if err != nil {
		t.Fatalf("ListAttendees err=%v", err)
	}
	if len(attendees) != 0 {
		t.Fatalf("end-of-season reset must still clear attendance")
	}

	active, err := f.games.GetActiveGame(ctx)
	if err != nil {
		t.Fatalf("GetActiveGame err=%v", err)
	}
	if active == nil || active.ID != f.seed[1].ID {
		t.Fatalf("active=%+v, want unchanged id %d", active, f.seed[1].ID)
	}
}

func TestRotationService_RunWeeklyReset_ArchivesLedgerFirst(t *testing.T) {
	t.Parallel()

	uploader := &fakeUploader{}
	svc, f := newRotationFixture(t, uploader)
	f.checkInSome(t)

	if err := svc.RunWeeklyReset(context.Background()); err != nil {
		t.Fatalf("RunWeeklyReset err=%v", err)
	}
	if len(uploader.uploads) != 1 {
		t.Fatalf("uploads=%d, want 1", len(uploader.uploads))
	}
}

func TestRotationService_RunWeeklyReset_SnapshotFailureAbortsReset(t *testing.T) {
	t.Parallel()

	uploader := &fakeUploader{failErr: errors.New("bucket unavailable")}
	svc, f := newRotationFixture(t, uploader)
	ctx := context.Background()
	f.checkInSome(t)

	if err := svc.RunWeeklyReset(ctx); err == nil {
		t.Fatalf("expected error from failed snapshot")
	}

	// Nothing was cleared and the game did not advance.
	attendees, err := f.attendance.ListAttendees(ctx)
	if err != nil {
		t.Fatalf("ListAttendees err=%v", err)
	}
	if len(attendees) != 2 {
		t.Fatalf("ledger touched after failed snapshot: %d records", len(attendees))
	}
	active, err := f.games.GetActiveGame(ctx)
	if err != nil {
		t.Fatalf("GetActiveGame err=%v", err)
	}
	if active == nil || active.ID != f.seed[0].ID {
		t.Fatalf("active=%+v, want unchanged id %d", active, f.seed[0].ID)
	}
}
