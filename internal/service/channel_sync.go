package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"channel_syncer/internal/config"
	"channel_syncer/internal/domain"
	"channel_syncer/internal/pagination"
)

// Pass stages, logged as a channel moves through a sync.
const (
	stageNotSynced         = "not_synced"
	stagePrimaryFeedSynced = "uploads_synced"
	stageCollectionsSynced = "playlists_synced"
	stagePersisted         = "persisted"
)

// ChannelSyncer runs one channel pass: uploads, then playlists, then the
// channel counters and finally the sync state.
type ChannelSyncer struct {
	catalog   CatalogClient
	repo      SyncRepository
	txManager TransactionManager
	videos    *VideoUpserter
	playlists *PlaylistSyncer
	publisher EventPublisher
	logger    *slog.Logger
	config    config.SyncConfig
	now       func() time.Time
}

func NewChannelSyncer(
	catalog CatalogClient,
	repo SyncRepository,
	txManager TransactionManager,
	videos *VideoUpserter,
	playlists *PlaylistSyncer,
	publisher EventPublisher,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *ChannelSyncer {
	return &ChannelSyncer{
		catalog:   catalog,
		repo:      repo,
		txManager: txManager,
		videos:    videos,
		playlists: playlists,
		publisher: publisher,
		logger:    logger,
		config:    cfg,
		now:       time.Now,
	}
}

type uploadsResult struct {
	newVideos int
	total     int
	newest    time.Time
}

type playlistRollup struct {
	newVideos  int
	playlists  int64
	items      int64
	uniqueVids int64
}

// Sync runs a pass for channelID. A channel missing upstream, or one without
// an uploads playlist, is a no-op reported with Skipped set.
func (s *ChannelSyncer) Sync(ctx context.Context, channelID string, level domain.SyncLevel) (*domain.ChannelResult, error) {
	start := s.now()
	logger := s.logger.With("channel_id", channelID)
	result := &domain.ChannelResult{ChannelID: channelID}

	var since time.Time
	prior, err := s.repo.GetSyncState(ctx, channelID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		logger.Debug("no previous sync", "stage", stageNotSynced)
	case err != nil:
		return nil, fmt.Errorf("get sync state: %w", err)
	default:
		since = prior.LastSyncedAt
	}

	channel, err := s.catalog.GetChannel(ctx, channelID)
	if errors.Is(err, domain.ErrNotFound) || (err == nil && channel.UploadsPlaylistID == "") {
		logger.Info("channel has nothing to sync")
		result.Skipped = true
		return result, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get channel: %w", err)
	}

	ctx = withVideoClaims(ctx)

	uploads, err := s.syncUploads(ctx, channel.UploadsPlaylistID, since)
	if err != nil {
		return nil, fmt.Errorf("sync uploads: %w", err)
	}
	result.NewVideos = uploads.newVideos
	result.VideoCount = int64(uploads.total)
	result.NewestPublishedAt = uploads.newest

	logger.Debug("uploads walked",
		"stage", stagePrimaryFeedSynced,
		"incremental", !since.IsZero(),
		"new", uploads.newVideos,
		"total", uploads.total,
	)

	if level.SyncsPlaylists() {
		rollup, err := s.syncPlaylists(ctx, channelID, level)
		if err != nil {
			return nil, fmt.Errorf("sync playlists: %w", err)
		}
		result.NewVideos += rollup.newVideos
		result.PlaylistCount = rollup.playlists
		result.PlaylistItemCount = rollup.items
		result.PlaylistVideoCount = rollup.uniqueVids

		logger.Debug("playlists walked",
			"stage", stageCollectionsSynced,
			"playlists", rollup.playlists,
			"new", rollup.newVideos,
		)
	} else {
		stored, err := s.repo.GetChannel(ctx, channelID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
		case err != nil:
			return nil, fmt.Errorf("get stored channel: %w", err)
		default:
			// Playlists are not walked at this level; keep the last rollup.
			result.PlaylistCount = stored.PlaylistCount
			result.PlaylistItemCount = stored.PlaylistItemCount
			result.PlaylistVideoCount = stored.PlaylistVideoCount
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	channel.VideoCount = result.VideoCount
	channel.PlaylistCount = result.PlaylistCount
	channel.PlaylistItemCount = result.PlaylistItemCount
	channel.PlaylistVideoCount = result.PlaylistVideoCount
	if result.NewestPublishedAt.After(channel.LastPublishedAt) {
		channel.LastPublishedAt = result.NewestPublishedAt
	}
	channel.UpdatedAt = s.now()

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.repo.SaveChannel(txCtx, channel); err != nil {
			return fmt.Errorf("save channel: %w: %w", domain.ErrStoreWrite, err)
		}

		state := &domain.SyncState{
			ChannelID:         channelID,
			UploadsPlaylistID: channel.UploadsPlaylistID,
			LastSyncedAt:      s.now(),
			Level:             level,
		}
		if err := s.repo.SaveSyncState(txCtx, state); err != nil {
			return fmt.Errorf("save sync state: %w: %w", domain.ErrStoreWrite, err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrStoreWrite) {
			err = fmt.Errorf("persist channel: %w: %w", domain.ErrStoreWrite, err)
		}
		return nil, err
	}

	result.Duration = s.now().Sub(start)

	if s.publisher != nil {
		if err := s.publisher.PublishChannelSynced(ctx, result); err != nil {
			logger.Warn("failed to publish channel event", "error", err)
		}
	}

	logger.Info("channel synced",
		"stage", stagePersisted,
		"level", int(level),
		"new", result.NewVideos,
		"videos", result.VideoCount,
		"playlists", result.PlaylistCount,
		"duration", result.Duration,
	)

	return result, nil
}

// syncUploads walks the uploads playlist newest first and stops at the first
// page the incremental window cuts short.
func (s *ChannelSyncer) syncUploads(ctx context.Context, uploadsID string, since time.Time) (uploadsResult, error) {
	var res uploadsResult

	walker := pagination.NewWalker(func(ctx context.Context, pageSize int, cursor string) (domain.Page[domain.VideoRef], error) {
		return s.catalog.ListPlaylistItems(ctx, uploadsID, pageSize, cursor)
	}, s.config.PageSize)

	err := walker.Walk(ctx, func(page domain.Page[domain.VideoRef]) (bool, error) {
		res.total = page.TotalCount
		for _, ref := range page.Items {
			if ref.PublishedAt.After(res.newest) {
				res.newest = ref.PublishedAt
			}
		}

		kept, more := FilterWindow(page.Items, since, s.overlap())
		n, err := s.videos.Upsert(ctx, kept)
		if err != nil {
			return false, err
		}
		res.newVideos += n
		return more, nil
	})
	return res, err
}

func (s *ChannelSyncer) syncPlaylists(ctx context.Context, channelID string, level domain.SyncLevel) (playlistRollup, error) {
	var rollup playlistRollup

	playlists, _, err := pagination.Collect(ctx, func(ctx context.Context, pageSize int, cursor string) (domain.Page[domain.Playlist], error) {
		return s.catalog.ListPlaylists(ctx, channelID, pageSize, cursor)
	}, s.config.PageSize)
	if err != nil {
		return rollup, fmt.Errorf("list playlists: %w", err)
	}
	playlists = uniquePlaylists(playlists)
	if len(playlists) == 0 {
		return rollup, nil
	}

	if err := s.repo.SavePlaylists(ctx, playlists); err != nil {
		return rollup, fmt.Errorf("save playlists: %w: %w", domain.ErrStoreWrite, err)
	}

	results := make([]*domain.PlaylistResult, len(playlists))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(s.config.PlaylistConcurrency, 1))

	for i := range playlists {
		g.Go(func() error {
			res, err := s.playlists.Sync(gctx, &playlists[i], level.FetchesPlaylistVideos())
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return rollup, err
	}

	unique := make(map[string]struct{})
	for _, res := range results {
		rollup.newVideos += res.NewVideos
		rollup.items += int64(len(res.VideoIDs))
		for _, id := range res.VideoIDs {
			unique[id] = struct{}{}
		}
	}
	rollup.playlists = int64(len(playlists))
	rollup.uniqueVids = int64(len(unique))

	return rollup, nil
}

// uniquePlaylists drops repeated ids, which show up when the listing shifts
// between pages. The first position wins and the last copy's fields are kept.
func uniquePlaylists(playlists []domain.Playlist) []domain.Playlist {
	index := make(map[string]int, len(playlists))
	out := playlists[:0:0]
	for _, p := range playlists {
		if i, ok := index[p.ID]; ok {
			out[i] = p
			continue
		}
		index[p.ID] = len(out)
		out = append(out, p)
	}
	return out
}

func (s *ChannelSyncer) overlap() time.Duration {
	if s.config.Overlap > 0 {
		return s.config.Overlap
	}
	return DefaultOverlap
}
