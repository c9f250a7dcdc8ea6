package watch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"
)

// Scheduler runs periodic re-validation on a cron schedule, independent of
// file-change events. Useful when the dataset is rewritten in place by jobs
// the watcher cannot see (network mounts, atomic renames from temp dirs).
type Scheduler struct {
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger

	mu      sync.Mutex
	running bool
}

// NewScheduler creates a scheduler for the given cron expression.
//
// Common expressions:
//   - "@hourly"     - every hour
//   - "0 3 * * *"   - daily at 3 AM
//   - "*/15 * * * *" - every 15 minutes
func NewScheduler(schedule string, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "watch.scheduler"),
	}
}

// Start begins scheduled runs of fn. An empty schedule is a no-op. Start
// returns immediately; the scheduler stops when the context is cancelled.
func (s *Scheduler) Start(ctx context.Context, fn func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.schedule == "" {
		s.logger.Info("no schedule configured, skipping scheduler")
		return nil
	}
	if s.running {
		return fmt.Errorf("scheduler already running")
	}

	if _, err := cron.ParseStandard(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", s.schedule, err)
	}

	if _, err := s.cron.AddFunc(s.schedule, fn); err != nil {
		return fmt.Errorf("failed to schedule re-validation: %w", err)
	}

	s.cron.Start()
	s.running = true

	s.logger.Info("re-validation scheduler started", "schedule", s.schedule)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Stop stops the scheduler, waiting for any in-flight run to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.running = false

	s.logger.Info("re-validation scheduler stopped")
}
