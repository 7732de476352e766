package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// Pinger is anything whose connection can be checked.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Scheduler periodically checks the location store connection and logs
// failures. A failing store never stops the process.
type Scheduler struct {
	scheduler *gocron.Scheduler
	target    Pinger
	interval  time.Duration
	logger    *zap.Logger
}

// New creates a new Scheduler.
func New(target Pinger, interval time.Duration, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		target:    target,
		interval:  interval,
		logger:    logger,
	}
}

// Start schedules the health check job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if s.target == nil || s.interval <= 0 {
		s.logger.Info("scheduler: store health check disabled")
		return nil
	}

	if _, err := s.scheduler.Every(s.interval).Do(s.check); err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

func (s *Scheduler) check() {
	timeout := s.interval
	if timeout > 10*time.Second {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.target.Ping(ctx); err != nil {
		s.logger.Error("scheduler: store connection error", zap.Error(err))
		return
	}
	s.logger.Debug("scheduler: store connection ok")
}
