package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"channel_syncer/internal/domain"
)

type Syncer interface {
	Sync(ctx context.Context) (*domain.SyncStats, error)
}

// Scheduler runs a pass immediately and then every interval. Each pass gets its
// own deadline; a pass still running when the ticker fires delays the next one.
type Scheduler struct {
	syncer   Syncer
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
}

func NewScheduler(syncer Syncer, interval, timeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncer:   syncer,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval, "timeout", s.timeout)

	s.runSync(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runSync(ctx)
		}
	}
}

func (s *Scheduler) runSync(ctx context.Context) {
	syncCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	stats, err := s.syncer.Sync(syncCtx)

	var batch *domain.BatchError
	switch {
	case errors.As(err, &batch):
		s.logger.Warn("sync finished with failures",
			"failed", len(batch.Failures),
			"succeeded", stats.Succeeded,
			"error", err,
		)
	case err != nil:
		s.logger.Error("sync failed", "error", err)
	}
}
