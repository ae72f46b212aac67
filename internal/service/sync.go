package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"channel_syncer/internal/config"
	"channel_syncer/internal/domain"
	"channel_syncer/internal/metrics"
)

// SyncService is the entry point: it fans targets out to the channel and
// playlist syncers and sums their results.
type SyncService struct {
	channels  *ChannelSyncer
	playlists *PlaylistSyncer
	logger    *slog.Logger
	config    config.SyncConfig

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewSyncService(
	catalog CatalogClient,
	repo SyncRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SyncService {
	videos := NewVideoUpserter(catalog, repo, publisher, logger)
	playlists := NewPlaylistSyncer(catalog, repo, videos, cfg.PageSize, logger)
	channels := NewChannelSyncer(catalog, repo, txManager, videos, playlists, publisher, logger, cfg)

	return &SyncService{
		channels:  channels,
		playlists: playlists,
		logger:    logger,
		config:    cfg,
		inflight:  make(map[string]struct{}),
	}
}

// Sync runs one pass over the configured targets.
func (s *SyncService) Sync(ctx context.Context) (*domain.SyncStats, error) {
	s.logger.Info("starting sync",
		"targets", len(s.config.Targets),
		"level", s.config.DepthLevel(),
	)
	return s.SyncMany(ctx, s.config.Targets)
}

// SyncOne syncs a single target and returns how many new videos it stored.
// Targets missing upstream count as zero, not as failures.
func (s *SyncService) SyncOne(ctx context.Context, target string) (int, error) {
	t := domain.ParseTarget(target)
	if t.ID == "" {
		return 0, fmt.Errorf("empty target %q", target)
	}

	if !s.acquire(t.ID) {
		return 0, fmt.Errorf("%s: %w", t, domain.ErrSyncInProgress)
	}
	defer s.release(t.ID)

	start := time.Now()
	n, skipped, err := s.run(ctx, t)

	outcome := "success"
	switch {
	case err != nil:
		outcome = "error"
	case skipped:
		outcome = "noop"
	}
	metrics.SyncPasses.WithLabelValues(string(t.Kind), outcome).Inc()
	metrics.SyncDuration.WithLabelValues(string(t.Kind)).Observe(time.Since(start).Seconds())

	return n, err
}

func (s *SyncService) run(ctx context.Context, t domain.Target) (int, bool, error) {
	level := domain.SyncLevel(s.config.DepthLevel())

	switch t.Kind {
	case domain.TargetPlaylist:
		res, err := s.playlists.SyncByID(ctx, t.ID, true)
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Info("playlist not found upstream", "playlist_id", t.ID)
			return 0, true, nil
		}
		if err != nil {
			return 0, false, err
		}
		return res.NewVideos, false, nil
	default:
		res, err := s.channels.Sync(ctx, t.ID, level)
		if err != nil {
			return 0, false, err
		}
		return res.NewVideos, res.Skipped, nil
	}
}

// uniqueTargets keeps the first spelling of each target id, so "UC1" and
// "channel:UC1" in one batch run a single pass.
func uniqueTargets(targets []string) []string {
	seen := make(map[string]struct{}, len(targets))
	out := make([]string, 0, len(targets))
	for _, target := range targets {
		id := domain.ParseTarget(target).ID
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, target)
	}
	return out
}

// SyncMany syncs every target independently. A failing target does not stop
// the others; failures are returned as a *domain.BatchError naming each target.
func (s *SyncService) SyncMany(ctx context.Context, targets []string) (*domain.SyncStats, error) {
	start := time.Now()
	targets = uniqueTargets(targets)
	stats := &domain.SyncStats{Targets: len(targets)}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(s.config.ChannelConcurrency, 1))

	for _, target := range targets {
		g.Go(func() error {
			n, err := s.SyncOne(gctx, target)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				stats.Failures = append(stats.Failures, domain.TargetFailure{Target: target, Err: err})
				s.logger.Error("target sync failed", "target", target, "error", err)
				return nil
			}
			stats.Succeeded++
			stats.NewVideos += n
			return nil
		})
	}
	_ = g.Wait()

	stats.Duration = time.Since(start)

	s.logger.Info("sync completed",
		"targets", stats.Targets,
		"succeeded", stats.Succeeded,
		"failed", len(stats.Failures),
		"new", stats.NewVideos,
		"duration", stats.Duration,
	)

	if len(stats.Failures) > 0 {
		return stats, &domain.BatchError{Failures: stats.Failures}
	}
	return stats, nil
}

func (s *SyncService) acquire(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[id]; busy {
		return false
	}
	s.inflight[id] = struct{}{}
	return true
}

func (s *SyncService) release(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, id)
}
