package domain

import "time"

type Video struct {
	ID           string    `db:"id" json:"id"`
	ChannelID    string    `db:"channel_id" json:"channel_id"`
	Title        string    `db:"title" json:"title"`
	Description  string    `db:"description" json:"description,omitempty"`
	ThumbnailURL *string   `db:"thumbnail_url" json:"thumbnail_url,omitempty"`
	Duration     string    `db:"duration" json:"duration,omitempty"` // ISO 8601, as reported upstream
	ViewCount    int64     `db:"view_count" json:"view_count"`
	Tags         []string  `db:"-" json:"tags,omitempty"`
	PublishedAt  time.Time `db:"published_at" json:"published_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// VideoRef is the minimal per-video data returned by playlist listings.
type VideoRef struct {
	ID          string
	PublishedAt time.Time
}

// Page is one page of a paginated upstream listing. NextCursor is nil when no
// further page exists; an empty string is a valid cursor.
type Page[T any] struct {
	Items      []T
	TotalCount int
	NextCursor *string
}

func (p Page[T]) HasNext() bool {
	return p.NextCursor != nil
}
