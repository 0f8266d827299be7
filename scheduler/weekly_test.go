package scheduler

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

func TestNextFire(t *testing.T) {
	t.Parallel()

	pacific, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Fatalf("LoadLocation err=%v", err)
	}

	cases := []struct {
		name    string
		now     time.Time
		weekday time.Weekday
		want    time.Time
	}{
		{
			name:    "midweek to saturday",
			now:     time.Date(2025, time.June, 25, 15, 30, 0, 0, pacific), // Wednesday
			weekday: time.Saturday,
			want:    time.Date(2025, time.June, 28, 0, 0, 0, 0, pacific),
		},
		{
			name:    "saturday after midnight waits a week",
			now:     time.Date(2025, time.June, 28, 0, 0, 1, 0, pacific),
			weekday: time.Saturday,
			want:    time.Date(2025, time.July, 5, 0, 0, 0, 0, pacific),
		},
		{
			name:    "exactly at fire time schedules next week",
			now:     time.Date(2025, time.June, 28, 0, 0, 0, 0, pacific),
			weekday: time.Saturday,
			want:    time.Date(2025, time.July, 5, 0, 0, 0, 0, pacific),
		},
		{
			name:    "friday evening to saturday midnight",
			now:     time.Date(2025, time.June, 27, 23, 59, 59, 0, pacific),
			weekday: time.Saturday,
			want:    time.Date(2025, time.June, 28, 0, 0, 0, 0, pacific),
		},
		{
			name:    "crosses month boundary",
			now:     time.Date(2025, time.August, 30, 12, 0, 0, 0, pacific), // Saturday noon
			weekday: time.Saturday,
			want:    time.Date(2025, time.September, 6, 0, 0, 0, 0, pacific),
		},
		{
			name:    "utc zone is respected",
			now:     time.Date(2025, time.June, 25, 15, 30, 0, 0, time.UTC),
			weekday: time.Sunday,
			want:    time.Date(2025, time.June, 29, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NextFire(tc.now, tc.weekday)
			if !got.Equal(tc.want) {
				t.Fatalf("NextFire(%v, %v)=%v, want %v", tc.now, tc.weekday, got, tc.want)
			}
			if got.Weekday() != tc.weekday {
				t.Fatalf("fire day=%v, want %v", got.Weekday(), tc.weekday)
			}
		})
	}
}

type countingRunner struct {
	calls atomic.Int32
}

func (r *countingRunner) RunWeeklyReset(ctx context.Context) error {
	r.calls.Add(1)
	return nil
}

func TestWeekly_StopBeforeFire(t *testing.T) {
	t.Parallel()

	runner := &countingRunner{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	w := NewWeekly(runner, time.Saturday, time.UTC, logger)

	done := make(chan struct{})
	go func() {
		w.Start(context.Background())
		close(done)
	}()

	w.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Start did not return after Stop")
	}
	if runner.calls.Load() != 0 {
		t.Fatalf("runner fired %d times before the scheduled instant", runner.calls.Load())
	}
}

func TestWeekly_ContextCancelStops(t *testing.T) {
	t.Parallel()

	runner := &countingRunner{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	w := NewWeekly(runner, time.Saturday, time.UTC, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Start did not return after context cancel")
	}
}
