package cronjob

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Purger deletes inquiries older than the retention window.
type Purger interface {
	Purge(ctx context.Context, retention time.Duration) (int64, error)
}

// Scheduler runs the nightly retention purge.
type Scheduler struct {
	cron      *cron.Cron
	purger    Purger
	retention time.Duration
	timeout   time.Duration
	log       *zap.Logger
}

func NewScheduler(purger Purger, retention time.Duration, log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{
		cron:      cron.New(cron.WithSeconds()),
		purger:    purger,
		retention: retention,
		timeout:   5 * time.Minute,
		log:       log.Named("cron"),
	}
}

// Start registers the purge job on spec (six fields, seconds first) and starts the cron loop.
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.runPurge); err != nil {
		return fmt.Errorf("failed to create cron job: %w", err)
	}

	s.cron.Start()
	s.log.Info("cron scheduler started", zap.String("schedule", spec), zap.Duration("retention", s.retention))
	return nil
}

// Stop halts the loop and waits for a running purge to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.log.Warn("cron stop timed out waiting for running job")
	}
}

func (s *Scheduler) runPurge() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	n, err := s.purger.Purge(ctx, s.retention)
	if err != nil {
		s.log.Error("inquiry purge failed", zap.Error(err))
		return
	}
	s.log.Info("inquiry purge completed", zap.Int64("deleted", n), zap.Duration("took", time.Since(start)))
}
