package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"channel_syncer/internal/domain"
)

// videoBatchSize keeps a multi-row insert well under the 65535 parameter limit.
const videoBatchSize = 500

type VideoStore struct {
	db *sqlx.DB
}

func NewVideoStore(db *sqlx.DB) *VideoStore {
	return &VideoStore{db: db}
}

type videoRow struct {
	domain.Video
	Tags pq.StringArray `db:"tags"`
}

// SaveBatch upserts videos. Duplicate ids keep their last occurrence, since
// one INSERT cannot touch the same row twice.
func (s *VideoStore) SaveBatch(ctx context.Context, videos []domain.Video) error {
	videos = lastByID(videos)
	for start := 0; start < len(videos); start += videoBatchSize {
		if err := s.saveBatch(ctx, videos[start:min(start+videoBatchSize, len(videos))]); err != nil {
			return err
		}
	}
	return nil
}

func (s *VideoStore) saveBatch(ctx context.Context, videos []domain.Video) error {
	const cols = 10

	var sb strings.Builder
	sb.WriteString(`INSERT INTO videos (
		id, channel_id, title, description, thumbnail_url,
		duration, view_count, tags, published_at, updated_at
	) VALUES `)
	args := make([]any, 0, len(videos)*cols)

	for i, v := range videos {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for c := 1; c <= cols; c++ {
			if c > 1 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "$%d", i*cols+c)
		}
		sb.WriteString(")")

		args = append(args,
			v.ID,
			v.ChannelID,
			v.Title,
			v.Description,
			v.ThumbnailURL,
			v.Duration,
			v.ViewCount,
			pq.Array(v.Tags),
			v.PublishedAt,
			v.UpdatedAt,
		)
	}
	sb.WriteString(` ON CONFLICT (id) DO UPDATE SET
		title = EXCLUDED.title,
		description = EXCLUDED.description,
		thumbnail_url = EXCLUDED.thumbnail_url,
		duration = EXCLUDED.duration,
		view_count = EXCLUDED.view_count,
		tags = EXCLUDED.tags,
		updated_at = EXCLUDED.updated_at`)

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), args...)
	return err
}

// ExistingIDs returns the subset of ids already stored.
func (s *VideoStore) ExistingIDs(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var result []string
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &result,
		"SELECT id FROM videos WHERE id = ANY($1)",
		pq.Array(ids),
	)
	return result, err
}

func (s *VideoStore) Get(ctx context.Context, id string) (*domain.Video, error) {
	var row videoRow
	query := `
		SELECT id, channel_id, title, description, thumbnail_url,
			duration, view_count, tags, published_at, updated_at
		FROM videos
		WHERE id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	video := row.Video
	video.Tags = []string(row.Tags)
	return &video, nil
}

func lastByID(videos []domain.Video) []domain.Video {
	index := make(map[string]int, len(videos))
	out := make([]domain.Video, 0, len(videos))
	for _, v := range videos {
		if i, ok := index[v.ID]; ok {
			out[i] = v
			continue
		}
		index[v.ID] = len(out)
		out = append(out, v)
	}
	return out
}
