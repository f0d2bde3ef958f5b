package scheduler

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Scheduler owns the cron runner for the reconciliation sweep. Start and
// Stop bracket the process lifecycle; main is the only caller.
type Scheduler struct {
	cron       *cron.Cron
	reconciler *Reconciler
	schedule   string
	logger     *slog.Logger
}

// NewScheduler creates a new scheduler instance. schedule is a cron spec,
// e.g. "@every 24h".
func NewScheduler(reconciler *Reconciler, schedule string, logger *slog.Logger) *Scheduler {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))
	c := cron.New(cron.WithChain(cron.Recover(cronLogger)))

	return &Scheduler{
		cron:       c,
		reconciler: reconciler,
		schedule:   schedule,
		logger:     logger,
	}
}

// Start runs one sweep immediately, registers the recurring job, and starts
// the cron runner.
func (s *Scheduler) Start() {
	go s.reconciler.Run()

	if _, err := s.cron.AddFunc(s.schedule, s.reconciler.Run); err != nil {
		s.logger.Error("failed to schedule reconciliation sweep", "error", err, "schedule", s.schedule)
	} else {
		s.logger.Info("scheduled reconciliation sweep", "schedule", s.schedule)
	}

	s.cron.Start()
}

// Stop gracefully stops the cron runner. The returned context is done once
// any in-flight sweep has finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
