package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"channel_syncer/internal/domain"
	"channel_syncer/internal/pagination"
)

// PlaylistSyncer walks one playlist, stores new member videos and replaces the
// stored membership list.
type PlaylistSyncer struct {
	catalog  CatalogClient
	repo     SyncRepository
	videos   *VideoUpserter
	pageSize int
	logger   *slog.Logger
	now      func() time.Time
}

func NewPlaylistSyncer(
	catalog CatalogClient,
	repo SyncRepository,
	videos *VideoUpserter,
	pageSize int,
	logger *slog.Logger,
) *PlaylistSyncer {
	return &PlaylistSyncer{
		catalog:  catalog,
		repo:     repo,
		videos:   videos,
		pageSize: pageSize,
		logger:   logger,
		now:      time.Now,
	}
}

// SyncByID looks the playlist up upstream before syncing it. A missing
// playlist surfaces as domain.ErrNotFound.
func (s *PlaylistSyncer) SyncByID(ctx context.Context, playlistID string, fetchVideos bool) (*domain.PlaylistResult, error) {
	playlist, err := s.catalog.GetPlaylist(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("get playlist: %w", err)
	}
	return s.Sync(ctx, playlist, fetchVideos)
}

// Sync walks every page of the playlist. With fetchVideos false only the
// membership is recorded.
func (s *PlaylistSyncer) Sync(ctx context.Context, playlist *domain.Playlist, fetchVideos bool) (*domain.PlaylistResult, error) {
	logger := s.logger.With("playlist_id", playlist.ID)
	result := &domain.PlaylistResult{PlaylistID: playlist.ID}

	walker := pagination.NewWalker(func(ctx context.Context, pageSize int, cursor string) (domain.Page[domain.VideoRef], error) {
		return s.catalog.ListPlaylistItems(ctx, playlist.ID, pageSize, cursor)
	}, s.pageSize)

	err := walker.Walk(ctx, func(page domain.Page[domain.VideoRef]) (bool, error) {
		result.TotalItemCount = page.TotalCount
		for _, ref := range page.Items {
			result.VideoIDs = append(result.VideoIDs, ref.ID)
		}

		if fetchVideos {
			n, err := s.videos.Upsert(ctx, page.Items)
			if err != nil {
				return false, err
			}
			result.NewVideos += n
		}
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk playlist %s: %w", playlist.ID, err)
	}

	record := *playlist
	record.ItemCount = int64(len(result.VideoIDs))
	record.TotalItemCount = int64(result.TotalItemCount)
	record.UpdatedAt = s.now()

	if err := s.repo.SavePlaylist(ctx, &record); err != nil {
		return nil, fmt.Errorf("save playlist: %w: %w", domain.ErrStoreWrite, err)
	}
	if err := s.repo.SavePlaylistMembership(ctx, playlist.ID, result.VideoIDs); err != nil {
		return nil, fmt.Errorf("save playlist membership: %w: %w", domain.ErrStoreWrite, err)
	}

	logger.Debug("playlist synced",
		"pages", walker.Pages(),
		"items", len(result.VideoIDs),
		"new", result.NewVideos,
	)

	return result, nil
}
