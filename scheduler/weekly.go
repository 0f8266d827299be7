// Package scheduler fires the weekly attendance rotation. It runs on its
// own goroutine, isolated from request handling: a failed run is logged
// and retried at the next scheduled fire, never propagated.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// RotationRunner is implemented by services.RotationService.
type RotationRunner interface {
	RunWeeklyReset(ctx context.Context) error
}

// Weekly fires at 00:00 on a fixed weekday in a fixed timezone.
type Weekly struct {
	runner  RotationRunner
	weekday time.Weekday
	loc     *time.Location
	logger  *slog.Logger

	// now is swapped out in tests.
	now func() time.Time

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewWeekly(runner RotationRunner, weekday time.Weekday, loc *time.Location, logger *slog.Logger) *Weekly {
	return &Weekly{
		runner:   runner,
		weekday:  weekday,
		loc:      loc,
		logger:   logger,
		now:      time.Now,
		stopChan: make(chan struct{}),
	}
}

// Start blocks until the context is cancelled or Stop is called. Run it
// on its own goroutine.
func (w *Weekly) Start(ctx context.Context) {
	w.wg.Add(1)
	defer w.wg.Done()

	for {
		fireAt := NextFire(w.now().In(w.loc), w.weekday)
		w.logger.Info("weekly rotation scheduled", slog.Time("fire_at", fireAt))

		timer := time.NewTimer(time.Until(fireAt))
		select {
		case <-ctx.Done():
			timer.Stop()
			w.logger.Info("weekly rotation scheduler stopped (context cancelled)")
			return
		case <-w.stopChan:
			timer.Stop()
			w.logger.Info("weekly rotation scheduler stopped")
			return
		case <-timer.C:
			if err := w.runner.RunWeeklyReset(ctx); err != nil {
				w.logger.Error("weekly rotation failed, will retry next week", slog.Any("error", err))
			}
		}
	}
}

// Stop signals the scheduler to stop and waits for Start to return.
func (w *Weekly) Stop() {
	w.stopOnce.Do(func() { close(w.stopChan) })
	w.wg.Wait()
}

// NextFire returns the first midnight on the given weekday strictly after
// now, in now's location. A fire exactly at now schedules the following
// week, so a fresh loop iteration never re-fires the same instant.
func NextFire(now time.Time, weekday time.Weekday) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	days := (int(weekday) - int(midnight.Weekday()) + 7) % 7
	fire := midnight.AddDate(0, 0, days)
	if !fire.After(now) {
		fire = fire.AddDate(0, 0, 7)
	}
	return fire
}
