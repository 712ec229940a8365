package preview

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
)

// Scheduler runs periodic regenerations, picking up changes the watcher
// cannot see such as new git commits stamped into "last updated" dates.
type Scheduler struct {
	scheduler gocron.Scheduler
}

// NewScheduler creates a stopped scheduler.
func NewScheduler() (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryInternal, "failed to create scheduler").Build()
	}
	return &Scheduler{scheduler: s}, nil
}

// SchedulePeriodicRebuild runs rebuild every interval and returns the job ID.
// Overlapping runs are skipped.
func (s *Scheduler) SchedulePeriodicRebuild(ctx context.Context, interval time.Duration, rebuild RebuildFunc) (string, error) {
	job, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			start := time.Now()
			if err := rebuild(ctx); err != nil {
				slog.Warn("Scheduled rebuild failed", logfields.Error(err))
				return
			}
			slog.Info("Scheduled rebuild complete",
				logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
		}),
		gocron.WithName("periodic-rebuild"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryInternal, "failed to create periodic rebuild job").
			WithContext("interval", interval.String()).Build()
	}
	return job.ID().String(), nil
}

// Start begins running scheduled jobs.
func (s *Scheduler) Start() {
	slog.Info("Starting scheduler")
	s.scheduler.Start()
}

// Stop shuts the scheduler down and waits for running jobs.
func (s *Scheduler) Stop() error {
	slog.Info("Stopping scheduler")
	return s.scheduler.Shutdown()
}
