package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"channel_syncer/internal/domain"
)

type SyncStateStore struct {
	db *sqlx.DB
}

func NewSyncStateStore(db *sqlx.DB) *SyncStateStore {
	return &SyncStateStore{db: db}
}

// Get returns domain.ErrNotFound for a channel that never completed a pass.
func (s *SyncStateStore) Get(ctx context.Context, channelID string) (*domain.SyncState, error) {
	var state domain.SyncState
	query := `
		SELECT channel_id, uploads_playlist_id, last_synced_at, level
		FROM sync_state
		WHERE channel_id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &state, query, channelID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *SyncStateStore) Save(ctx context.Context, state *domain.SyncState) error {
	query := `
		INSERT INTO sync_state (channel_id, uploads_playlist_id, last_synced_at, level)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (channel_id) DO UPDATE SET
			uploads_playlist_id = EXCLUDED.uploads_playlist_id,
			last_synced_at = EXCLUDED.last_synced_at,
			level = EXCLUDED.level`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		state.ChannelID,
		state.UploadsPlaylistID,
		state.LastSyncedAt,
		int(state.Level),
	)
	return err
}
