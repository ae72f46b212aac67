package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"channel_syncer/internal/domain"
)

type PlaylistStore struct {
	db *sqlx.DB
}

func NewPlaylistStore(db *sqlx.DB) *PlaylistStore {
	return &PlaylistStore{db: db}
}

// Save upserts the playlist including its counters.
func (s *PlaylistStore) Save(ctx context.Context, playlist *domain.Playlist) error {
	query := `
		INSERT INTO playlists (id, channel_id, title, item_count, total_item_count, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			channel_id = EXCLUDED.channel_id,
			title = EXCLUDED.title,
			item_count = EXCLUDED.item_count,
			total_item_count = EXCLUDED.total_item_count,
			updated_at = EXCLUDED.updated_at`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		playlist.ID,
		playlist.ChannelID,
		playlist.Title,
		playlist.ItemCount,
		playlist.TotalItemCount,
		playlist.UpdatedAt,
	)
	return err
}

// SaveBatch upserts playlist metadata. The walked item count of existing rows
// is left to the per-playlist Save that follows the walk.
func (s *PlaylistStore) SaveBatch(ctx context.Context, playlists []domain.Playlist) error {
	if len(playlists) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO playlists (id, channel_id, title, total_item_count, updated_at) VALUES ")
	args := make([]any, 0, len(playlists)*5)

	for i, p := range playlists {
		if i > 0 {
			sb.WriteString(", ")
		}
		n := i * 5
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4, n+5)
		args = append(args, p.ID, p.ChannelID, p.Title, p.TotalItemCount, p.UpdatedAt)
	}
	sb.WriteString(` ON CONFLICT (id) DO UPDATE SET
		channel_id = EXCLUDED.channel_id,
		title = EXCLUDED.title,
		total_item_count = EXCLUDED.total_item_count`)

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), args...)
	return err
}

func (s *PlaylistStore) Get(ctx context.Context, id string) (*domain.Playlist, error) {
	var playlist domain.Playlist
	query := `
		SELECT id, channel_id, title, item_count, total_item_count, updated_at
		FROM playlists
		WHERE id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &playlist, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

// SaveMembership replaces the stored member list of a playlist.
func (s *PlaylistStore) SaveMembership(ctx context.Context, playlistID string, videoIDs []string, at time.Time) error {
	if videoIDs == nil {
		videoIDs = []string{}
	}

	query := `
		INSERT INTO playlist_members (playlist_id, video_ids, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (playlist_id) DO UPDATE SET
			video_ids = EXCLUDED.video_ids,
			updated_at = EXCLUDED.updated_at`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, playlistID, pq.Array(videoIDs), at)
	return err
}

func (s *PlaylistStore) GetMembership(ctx context.Context, playlistID string) (*domain.PlaylistMembership, error) {
	var (
		ids       pq.StringArray
		updatedAt time.Time
	)
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx,
		"SELECT video_ids, updated_at FROM playlist_members WHERE playlist_id = $1",
		playlistID,
	).Scan(&ids, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &domain.PlaylistMembership{
		PlaylistID: playlistID,
		VideoIDs:   []string(ids),
		UpdatedAt:  updatedAt,
	}, nil
}
