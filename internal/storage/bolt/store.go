// Package bolt is the embedded SyncRepository backend: one bbolt file holding
// JSON documents keyed by id, one bucket per entity.
package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"channel_syncer/internal/domain"
	"channel_syncer/internal/pagination"
)

var (
	bucketChannels  = []byte("channels")
	bucketPlaylists = []byte("playlists")
	bucketMembers   = []byte("playlist_members")
	bucketVideos    = []byte("videos")
	bucketSyncState = []byte("sync_state")
)

type Store struct {
	db  *bbolt.DB
	now func() time.Time
}

func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, bucket := range [][]byte{bucketChannels, bucketPlaylists, bucketMembers, bucketVideos, bucketSyncState} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create buckets: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// === Generic helpers ===

func get(tx *bbolt.Tx, bucket []byte, key string, dest any) (bool, error) {
	v := tx.Bucket(bucket).Get([]byte(key))
	if v == nil {
		return false, nil
	}
	if err := json.Unmarshal(v, dest); err != nil {
		return false, fmt.Errorf("decode %s/%s: %w", bucket, key, err)
	}
	return true, nil
}

func put(tx *bbolt.Tx, bucket []byte, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", bucket, key, err)
	}
	return tx.Bucket(bucket).Put([]byte(key), data)
}

func (s *Store) getOne(ctx context.Context, bucket []byte, key string, dest any) error {
	return s.view(ctx, func(tx *bbolt.Tx) error {
		found, err := get(tx, bucket, key, dest)
		if err != nil {
			return err
		}
		if !found {
			return domain.ErrNotFound
		}
		return nil
	})
}

// === SyncRepository ===

func (s *Store) GetSyncState(ctx context.Context, channelID string) (*domain.SyncState, error) {
	var state domain.SyncState
	if err := s.getOne(ctx, bucketSyncState, channelID, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *Store) SaveSyncState(ctx context.Context, state *domain.SyncState) error {
	return s.update(ctx, func(tx *bbolt.Tx) error {
		return put(tx, bucketSyncState, state.ChannelID, state)
	})
}

// SaveChannel never moves LastPublishedAt backwards. It always writes one document.
func (s *Store) SaveChannel(ctx context.Context, channel *domain.Channel) (int64, error) {
	err := s.update(ctx, func(tx *bbolt.Tx) error {
		record := *channel

		var existing domain.Channel
		found, err := get(tx, bucketChannels, channel.ID, &existing)
		if err != nil {
			return err
		}
		if found && existing.LastPublishedAt.After(record.LastPublishedAt) {
			record.LastPublishedAt = existing.LastPublishedAt
		}
		return put(tx, bucketChannels, record.ID, &record)
	})
	if err != nil {
		return 0, err
	}
	return 1, nil
}

func (s *Store) GetChannel(ctx context.Context, id string) (*domain.Channel, error) {
	var channel domain.Channel
	if err := s.getOne(ctx, bucketChannels, id, &channel); err != nil {
		return nil, err
	}
	return &channel, nil
}

func (s *Store) SavePlaylist(ctx context.Context, playlist *domain.Playlist) error {
	return s.update(ctx, func(tx *bbolt.Tx) error {
		return put(tx, bucketPlaylists, playlist.ID, playlist)
	})
}

// SavePlaylists stores playlist metadata, keeping the counters of playlists
// already stored.
func (s *Store) SavePlaylists(ctx context.Context, playlists []domain.Playlist) error {
	return s.update(ctx, func(tx *bbolt.Tx) error {
		for _, p := range playlists {
			var existing domain.Playlist
			found, err := get(tx, bucketPlaylists, p.ID, &existing)
			if err != nil {
				return err
			}
			if found {
				p.ItemCount = existing.ItemCount
				p.UpdatedAt = existing.UpdatedAt
			}
			if err := put(tx, bucketPlaylists, p.ID, &p); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) GetPlaylist(ctx context.Context, id string) (*domain.Playlist, error) {
	var playlist domain.Playlist
	if err := s.getOne(ctx, bucketPlaylists, id, &playlist); err != nil {
		return nil, err
	}
	return &playlist, nil
}

func (s *Store) SavePlaylistMembership(ctx context.Context, playlistID string, videoIDs []string) error {
	if videoIDs == nil {
		videoIDs = []string{}
	}
	membership := domain.PlaylistMembership{
		PlaylistID: playlistID,
		VideoIDs:   videoIDs,
		UpdatedAt:  s.now(),
	}
	return s.update(ctx, func(tx *bbolt.Tx) error {
		return put(tx, bucketMembers, playlistID, &membership)
	})
}

// ListPlaylistMembers pages the stored member list of a playlist. An empty or
// stale token starts from the first page.
func (s *Store) ListPlaylistMembers(ctx context.Context, playlistID string, pageSize int, token string) (domain.Page[string], error) {
	var membership domain.PlaylistMembership
	if err := s.getOne(ctx, bucketMembers, playlistID, &membership); err != nil {
		return domain.Page[string]{}, fmt.Errorf("get membership: %w", err)
	}
	return pagination.Slice(membership.VideoIDs, pageSize, token), nil
}

func (s *Store) SaveVideos(ctx context.Context, videos []domain.Video) error {
	return s.update(ctx, func(tx *bbolt.Tx) error {
		for i := range videos {
			if err := put(tx, bucketVideos, videos[i].ID, &videos[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) GetVideo(ctx context.Context, id string) (*domain.Video, error) {
	var video domain.Video
	if err := s.getOne(ctx, bucketVideos, id, &video); err != nil {
		return nil, err
	}
	return &video, nil
}

// GetExistingVideoIDs returns the subset of ids already stored, in input order.
func (s *Store) GetExistingVideoIDs(ctx context.Context, ids []string) ([]string, error) {
	var existing []string
	err := s.view(ctx, func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketVideos)
		for _, id := range ids {
			if b.Get([]byte(id)) != nil {
				existing = append(existing, id)
			}
		}
		return nil
	})
	return existing, err
}
