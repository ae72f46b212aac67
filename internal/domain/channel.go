package domain

import "time"

// Channel is the top-level publisher being mirrored. Counters are denormalized
// and rewritten at the end of every successful pass.
type Channel struct {
	ID                 string    `db:"id" json:"id"`
	Title              string    `db:"title" json:"title"`
	UploadsPlaylistID  string    `db:"uploads_playlist_id" json:"uploads_playlist_id"`
	VideoCount         int64     `db:"video_count" json:"video_count"`
	PlaylistCount      int64     `db:"playlist_count" json:"playlist_count"`
	PlaylistItemCount  int64     `db:"playlist_item_count" json:"playlist_item_count"`
	PlaylistVideoCount int64     `db:"playlist_video_count" json:"playlist_video_count"`
	LastPublishedAt    time.Time `db:"last_published_at" json:"last_published_at"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`
}

type Playlist struct {
	ID             string    `db:"id" json:"id"`
	ChannelID      string    `db:"channel_id" json:"channel_id"`
	Title          string    `db:"title" json:"title"`
	ItemCount      int64     `db:"item_count" json:"item_count"`
	TotalItemCount int64     `db:"total_item_count" json:"total_item_count"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// PlaylistMembership is a replacement record: each pass overwrites VideoIDs.
type PlaylistMembership struct {
	PlaylistID string    `json:"playlist_id"`
	VideoIDs   []string  `json:"video_ids"`
	UpdatedAt  time.Time `json:"updated_at"`
}
