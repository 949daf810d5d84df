package rate

import (
	"context"
	"fmt"
	"time"

	"vesrates/internal/adapters"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultRealtimeInterval = 90 * time.Second

// Scheduler runs the three sync cadences against the same idempotent
// upsert. Each invocation is stateless; the override-precedence check in
// the job is what keeps manual and automated writes from thrashing.
type Scheduler struct {
	provider      adapters.RateProvider
	rates         adapters.RateRepository
	notifications adapters.NotificationRepository

	dailyHour        int
	realtimeInterval time.Duration
	// -----
	sched gocron.Scheduler
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.sched = scheduler

	jobs := []struct {
		cadence    Cadence
		definition gocron.JobDefinition
	}{
		{DailyCadence, gocron.CronJob(fmt.Sprintf("0 %d * * *", s.dailyHour), false)},
		{HourlyCadence, gocron.CronJob("0 * * * *", false)},
		{RealtimeCadence, gocron.DurationJob(s.realtimeInterval)},
	}

	for _, j := range jobs {
		cadence := j.cadence
		task := func(jobCtx context.Context) {
			s.runCadence(jobCtx, cadence)
		}
		if _, err = scheduler.NewJob(
			j.definition,
			gocron.NewTask(task),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		); err != nil {
			return err
		}
	}

	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) runCadence(ctx context.Context, cadence Cadence) {
	execID := uuid.NewString()
	result, err := RunUpdate(ctx, execID, cadence, s.provider, s.rates, s.notifications, time.Now())
	switch {
	case err != nil:
		logrus.Errorf("Rate sync %s (%s cadence) failed: %v", execID, cadence.SourceTag, err)
	case result.Skipped:
		// Already logged by the job; nothing was written.
	default:
		logrus.Infof("Rate sync %s (%s cadence) stored %.4f for %s", execID, cadence.SourceTag, result.Rate, result.AsOfDate.Format(time.DateOnly))
	}
}

func (s *Scheduler) Shutdown() error {
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}

func NewScheduler(
	provider adapters.RateProvider,
	rates adapters.RateRepository,
	notifications adapters.NotificationRepository,
	dailyHour int,
	realtimeInterval time.Duration,
) *Scheduler {
	if realtimeInterval <= 0 {
		realtimeInterval = defaultRealtimeInterval
	}
	if dailyHour < 0 || dailyHour > 23 {
		dailyHour = 8
	}
	return &Scheduler{
		provider:         provider,
		rates:            rates,
		notifications:    notifications,
		dailyHour:        dailyHour,
		realtimeInterval: realtimeInterval,
	}
}
