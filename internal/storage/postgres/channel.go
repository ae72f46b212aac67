package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"channel_syncer/internal/domain"
)

type ChannelStore struct {
	db *sqlx.DB
}

func NewChannelStore(db *sqlx.DB) *ChannelStore {
	return &ChannelStore{db: db}
}

// Save upserts the channel and returns the number of rows written.
func (s *ChannelStore) Save(ctx context.Context, channel *domain.Channel) (int64, error) {
	query := `
		INSERT INTO channels (
			id, title, uploads_playlist_id, video_count, playlist_count,
			playlist_item_count, playlist_video_count, last_published_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			uploads_playlist_id = EXCLUDED.uploads_playlist_id,
			video_count = EXCLUDED.video_count,
			playlist_count = EXCLUDED.playlist_count,
			playlist_item_count = EXCLUDED.playlist_item_count,
			playlist_video_count = EXCLUDED.playlist_video_count,
			last_published_at = GREATEST(channels.last_published_at, EXCLUDED.last_published_at),
			updated_at = EXCLUDED.updated_at`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		channel.ID,
		channel.Title,
		channel.UploadsPlaylistID,
		channel.VideoCount,
		channel.PlaylistCount,
		channel.PlaylistItemCount,
		channel.PlaylistVideoCount,
		channel.LastPublishedAt,
		channel.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *ChannelStore) Get(ctx context.Context, id string) (*domain.Channel, error) {
	var channel domain.Channel
	query := `
		SELECT id, title, uploads_playlist_id, video_count, playlist_count,
			playlist_item_count, playlist_video_count, last_published_at, updated_at
		FROM channels
		WHERE id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &channel, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &channel, nil
}
