package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"channel_syncer/internal/domain"
	"channel_syncer/internal/pagination"
)

// Repository bundles the per-table stores behind the sync engine's
// repository contract. Writes join the transaction carried in ctx, if any.
type Repository struct {
	Channels  *ChannelStore
	Playlists *PlaylistStore
	Videos    *VideoStore
	SyncState *SyncStateStore
	now       func() time.Time
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Channels:  NewChannelStore(db),
		Playlists: NewPlaylistStore(db),
		Videos:    NewVideoStore(db),
		SyncState: NewSyncStateStore(db),
		now:       time.Now,
	}
}

func (r *Repository) GetSyncState(ctx context.Context, channelID string) (*domain.SyncState, error) {
	return r.SyncState.Get(ctx, channelID)
}

func (r *Repository) SaveSyncState(ctx context.Context, state *domain.SyncState) error {
	return r.SyncState.Save(ctx, state)
}

func (r *Repository) GetChannel(ctx context.Context, channelID string) (*domain.Channel, error) {
	return r.Channels.Get(ctx, channelID)
}

func (r *Repository) SaveChannel(ctx context.Context, channel *domain.Channel) (int64, error) {
	return r.Channels.Save(ctx, channel)
}

func (r *Repository) SavePlaylist(ctx context.Context, playlist *domain.Playlist) error {
	return r.Playlists.Save(ctx, playlist)
}

func (r *Repository) SavePlaylists(ctx context.Context, playlists []domain.Playlist) error {
	return r.Playlists.SaveBatch(ctx, playlists)
}

func (r *Repository) SavePlaylistMembership(ctx context.Context, playlistID string, videoIDs []string) error {
	return r.Playlists.SaveMembership(ctx, playlistID, videoIDs, r.now())
}

func (r *Repository) SaveVideos(ctx context.Context, videos []domain.Video) error {
	return r.Videos.SaveBatch(ctx, videos)
}

func (r *Repository) GetExistingVideoIDs(ctx context.Context, ids []string) ([]string, error) {
	return r.Videos.ExistingIDs(ctx, ids)
}

// ListPlaylistMembers pages the stored member list of a playlist. An empty or
// stale token starts from the first page.
func (r *Repository) ListPlaylistMembers(ctx context.Context, playlistID string, pageSize int, token string) (domain.Page[string], error) {
	membership, err := r.Playlists.GetMembership(ctx, playlistID)
	if err != nil {
		return domain.Page[string]{}, fmt.Errorf("get membership: %w", err)
	}
	return pagination.Slice(membership.VideoIDs, pageSize, token), nil
}
