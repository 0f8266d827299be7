package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/chico-slowpitch/attendance-system/models"
	"github.com/chico-slowpitch/attendance-system/repositories"
)

// manualClock hands out strictly increasing timestamps.
type manualClock struct {
	t time.Time
}

func newManualClock() *manualClock {
	return &manualClock{t: time.Date(2025, time.June, 20, 18, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time {
	c.t = c.t.Add(time.Minute)
	return c.t
}

func newAttendanceFixture(minPlayers int) (*repositories.InMemoryAttendeeRepository, AttendanceService) {
	repo := repositories.NewInMemoryAttendeeRepository()
	repo.Now = newManualClock().Now
	return repo, NewAttendanceService(repo, minPlayers)
}

func TestAttendanceService_CheckIn_CreatesRecord(t *testing.T) {
	t.Parallel()

	_, svc := newAttendanceFixture(10)

	attendee, err := svc.CheckIn(context.Background(), CheckInInput{
		FirstName: "Sam",
		LastName:  "Porter",
		Status:    models.StatusIn,
	})
	if err != nil {
		t.Fatalf("CheckIn err=%v", err)
	}
	if attendee.ID == 0 {
		t.Fatalf("expected assigned id, got %d", attendee.ID)
	}
	if attendee.Status != models.StatusIn {
		t.Fatalf("status=%q, want %q", attendee.Status, models.StatusIn)
	}
	if attendee.CheckedInAt.IsZero() {
		t.Fatalf("checked_in_at not set")
	}
}

func TestAttendanceService_CheckIn_UpsertIsIdempotent(t *testing.T) {
	t.Parallel()

	_, svc := newAttendanceFixture(10)
	ctx := context.Background()

	first, err := svc.CheckIn(ctx, CheckInInput{FirstName: "Sam", LastName: "Porter", Status: models.StatusIn})
	if err != nil {
		t.Fatalf("first CheckIn err=%v", err)
	}
	second, err := svc.CheckIn(ctx, CheckInInput{FirstName: "Sam", LastName: "Porter", Status: models.StatusOut})
	if err != nil {
		t.Fatalf("second CheckIn err=%v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("second check-in created a new record: ids %d vs %d", first.ID, second.ID)
	}
	if second.Status != models.StatusOut {
		t.Fatalf("status=%q, want latest status %q", second.Status, models.StatusOut)
	}
	if second.CheckedInAt.Before(first.CheckedInAt) {
		t.Fatalf("checked_in_at went backwards: %v then %v", first.CheckedInAt, second.CheckedInAt)
	}

	attendees, err := svc.ListAttendees(ctx)
	if err != nil {
		t.Fatalf("ListAttendees err=%v", err)
	}
	if len(attendees) != 1 {
		t.Fatalf("got %d records, want exactly 1", len(attendees))
	}
}

func TestAttendanceService_CheckIn_TrimsNames(t *testing.T) {
	t.Parallel()

	_, svc := newAttendanceFixture(10)
	ctx := context.Background()

	a, err := svc.CheckIn(ctx, CheckInInput{FirstName: "  Sam ", LastName: " Porter ", Status: models.StatusIn})
	if err != nil {
		t.Fatalf("CheckIn err=%v", err)
	}
	if a.FirstName != "Sam" || a.LastName != "Porter" {
		t.Fatalf("names not trimmed: %q %q", a.FirstName, a.LastName)
	}

	// The trimmed spelling must hit the same record.
	b, err := svc.CheckIn(ctx, CheckInInput{FirstName: "Sam", LastName: "Porter", Status: models.StatusOut})
	if err != nil {
		t.Fatalf("CheckIn err=%v", err)
	}
	if b.ID != a.ID {
		t.Fatalf("trimmed and untrimmed check-ins diverged: ids %d vs %d", a.ID, b.ID)
	}
}

func TestAttendanceService_CheckIn_Validation(t *testing.T) {
	t.Parallel()

	_, svc := newAttendanceFixture(10)
	ctx := context.Background()

	cases := []struct {
		name    string
		input   CheckInInput
		wantErr error
	}{
		{"empty first name", CheckInInput{FirstName: "  ", LastName: "Porter", Status: models.StatusIn}, ErrFirstNameRequired},
		{"empty last name", CheckInInput{FirstName: "Sam", LastName: "", Status: models.StatusIn}, ErrLastNameRequired},
		{"unknown status", CheckInInput{FirstName: "Sam", LastName: "Porter", Status: "maybe"}, ErrInvalidStatus},
		{"missing status", CheckInInput{FirstName: "Sam", LastName: "Porter"}, ErrInvalidStatus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CheckIn(ctx, tc.input); !errors.Is(err, tc.wantErr) {
				t.Fatalf("err=%v, want %v", err, tc.wantErr)
			}
		})
	}

	attendees, err := svc.ListAttendees(ctx)
	if err != nil {
		t.Fatalf("ListAttendees err=%v", err)
	}
	if len(attendees) != 0 {
		t.Fatalf("validation failures wrote %d records", len(attendees))
	}
}

func TestAttendanceService_ListAttendees_MostRecentFirst(t *testing.T) {
	t.Parallel()

	_, svc := newAttendanceFixture(10)
	ctx := context.Background()

	names := [][2]string{{"Ann", "Avila"}, {"Ben", "Brock"}, {"Cal", "Cruz"}}
	for _, n := range names {
		if _, err := svc.CheckIn(ctx, CheckInInput{FirstName: n[0], LastName: n[1], Status: models.StatusIn}); err != nil {
			t.Fatalf("CheckIn err=%v", err)
		}
	}

	attendees, err := svc.ListAttendees(ctx)
	if err != nil {
		t.Fatalf("ListAttendees err=%v", err)
	}
	if len(attendees) != 3 {
		t.Fatalf("got %d attendees", len(attendees))
	}
	if attendees[0].FirstName != "Cal" || attendees[2].FirstName != "Ann" {
		t.Fatalf("wrong order: %q ... %q, want most recent first", attendees[0].FirstName, attendees[2].FirstName)
	}
}

func TestAttendanceService_RemoveAttendee_IsIdempotent(t *testing.T) {
	t.Parallel()

	_, svc := newAttendanceFixture(10)
	ctx := context.Background()

	a, err := svc.CheckIn(ctx, CheckInInput{FirstName: "Sam", LastName: "Porter", Status: models.StatusIn})
	if err != nil {
		t.Fatalf("CheckIn err=%v", err)
	}

	if err := svc.RemoveAttendee(ctx, a.ID); err != nil {
		t.Fatalf("RemoveAttendee err=%v", err)
	}
	// Second delete of the same id and a delete of a never-existing id
	// both succeed.
	if err := svc.RemoveAttendee(ctx, a.ID); err != nil {
		t.Fatalf("repeat RemoveAttendee err=%v", err)
	}
	if err := svc.RemoveAttendee(ctx, 9999); err != nil {
		t.Fatalf("unknown-id RemoveAttendee err=%v", err)
	}
}

func TestAttendanceService_ClearAll(t *testing.T) {
	t.Parallel()

	_, svc := newAttendanceFixture(10)
	ctx := context.Background()

	for _, n := range [][2]string{{"Ann", "Avila"}, {"Ben", "Brock"}} {
		if _, err := svc.CheckIn(ctx, CheckInInput{FirstName: n[0], LastName: n[1], Status: models.StatusIn}); err != nil {
			t.Fatalf("CheckIn err=%v", err)
		}
	}

	if err := svc.ClearAll(ctx); err != nil {
		t.Fatalf("ClearAll err=%v", err)
	}
	attendees, err := svc.ListAttendees(ctx)
	if err != nil {
		t.Fatalf("ListAttendees err=%v", err)
	}
	if len(attendees) != 0 {
		t.Fatalf("ledger not empty after ClearAll: %d records", len(attendees))
	}
}

func TestAttendanceService_Stats(t *testing.T) {
	t.Parallel()

	_, svc := newAttendanceFixture(7)
	ctx := context.Background()

	ins := [][2]string{
		{"Ann", "Avila"}, {"Ben", "Brock"}, {"Cal", "Cruz"}, {"Dee", "Dunn"},
		{"Eli", "Estes"}, {"Flo", "Ford"}, {"Gil", "Gray"},
	}
	for _, n := range ins {
		if _, err := svc.CheckIn(ctx, CheckInInput{FirstName: n[0], LastName: n[1], Status: models.StatusIn}); err != nil {
			t.Fatalf("CheckIn err=%v", err)
		}
	}
	for _, n := range [][2]string{{"Hal", "Hess"}, {"Ida", "Irwin"}} {
		if _, err := svc.CheckIn(ctx, CheckInInput{FirstName: n[0], LastName: n[1], Status: models.StatusOut}); err != nil {
			t.Fatalf("CheckIn err=%v", err)
		}
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats err=%v", err)
	}
	want := models.AttendanceStats{Attending: 7, NotAttending: 2, Total: 9, GameStatus: GameStatusGood}
	if *stats != want {
		t.Fatalf("stats=%+v, want %+v", *stats, want)
	}

	// One attendee flips to out; the count drops below the threshold.
	if _, err := svc.CheckIn(ctx, CheckInInput{FirstName: "Gil", LastName: "Gray", Status: models.StatusOut}); err != nil {
		t.Fatalf("CheckIn err=%v", err)
	}
	stats, err = svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats err=%v", err)
	}
	if stats.Attending != 6 || stats.NotAttending != 3 || stats.Total != 9 {
		t.Fatalf("stats=%+v after flip", *stats)
	}
	if stats.GameStatus != GameStatusNeedPlayers {
		t.Fatalf("game status=%q, want %q", stats.GameStatus, GameStatusNeedPlayers)
	}
}

func TestAttendanceService_Stats_EmptyLedger(t *testing.T) {
	t.Parallel()

	_, svc := newAttendanceFixture(10)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats err=%v", err)
	}
	want := models.AttendanceStats{Attending: 0, NotAttending: 0, Total: 0, GameStatus: GameStatusNeedPlayers}
	if *stats != want {
		t.Fatalf("stats=%+v, want %+v", *stats, want)
	}
}
