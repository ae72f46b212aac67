package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"channel_syncer/internal/domain"
)

// CatalogClient is the upstream catalog. Lookups return domain.ErrNotFound when
// the channel or playlist does not exist.
type CatalogClient interface {
	GetChannel(ctx context.Context, channelID string) (*domain.Channel, error)
	GetPlaylist(ctx context.Context, playlistID string) (*domain.Playlist, error)
	ListPlaylists(ctx context.Context, channelID string, pageSize int, cursor string) (domain.Page[domain.Playlist], error)
	ListPlaylistItems(ctx context.Context, playlistID string, pageSize int, cursor string) (domain.Page[domain.VideoRef], error)
	GetVideos(ctx context.Context, ids []string) ([]domain.Video, error)
}

// SyncRepository is the narrow store contract the sync engine writes through.
// GetSyncState and GetChannel return domain.ErrNotFound for a channel never synced.
type SyncRepository interface {
	GetSyncState(ctx context.Context, channelID string) (*domain.SyncState, error)
	SaveSyncState(ctx context.Context, state *domain.SyncState) error
	GetChannel(ctx context.Context, channelID string) (*domain.Channel, error)
	SaveChannel(ctx context.Context, channel *domain.Channel) (int64, error)
	SavePlaylist(ctx context.Context, playlist *domain.Playlist) error
	SavePlaylists(ctx context.Context, playlists []domain.Playlist) error
	SavePlaylistMembership(ctx context.Context, playlistID string, videoIDs []string) error
	SaveVideos(ctx context.Context, videos []domain.Video) error
	GetExistingVideoIDs(ctx context.Context, ids []string) ([]string, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type EventPublisher interface {
	PublishVideo(ctx context.Context, video *domain.Video) error
	PublishChannelSynced(ctx context.Context, result *domain.ChannelResult) error
	Close() error
}
