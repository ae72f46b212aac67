package domain

import (
	"strings"
	"time"
)

// SyncLevel controls how deep a channel pass goes.
type SyncLevel int

const (
	// LevelUploads only walks the uploads playlist.
	LevelUploads SyncLevel = iota
	// LevelPlaylists also records playlist membership without fetching video details.
	LevelPlaylists
	// LevelDeep fetches and stores details for every playlist member.
	LevelDeep
)

func (l SyncLevel) SyncsPlaylists() bool { return l >= LevelPlaylists }

func (l SyncLevel) FetchesPlaylistVideos() bool { return l >= LevelDeep }

// SyncState is overwritten after every successful channel pass and is the only
// source of "what changed since last time".
type SyncState struct {
	ChannelID         string    `db:"channel_id" json:"channel_id"`
	UploadsPlaylistID string    `db:"uploads_playlist_id" json:"uploads_playlist_id"`
	LastSyncedAt      time.Time `db:"last_synced_at" json:"last_synced_at"`
	Level             SyncLevel `db:"level" json:"level"`
}

type TargetKind string

const (
	TargetChannel  TargetKind = "channel"
	TargetPlaylist TargetKind = "playlist"
)

// Target is one orchestrator input: "channel:<id>", "playlist:<id>" or a bare channel id.
type Target struct {
	Kind TargetKind
	ID   string
}

func ParseTarget(s string) Target {
	s = strings.TrimSpace(s)
	if kind, id, ok := strings.Cut(s, ":"); ok {
		switch TargetKind(kind) {
		case TargetChannel, TargetPlaylist:
			return Target{Kind: TargetKind(kind), ID: id}
		}
	}
	return Target{Kind: TargetChannel, ID: s}
}

func (t Target) String() string {
	return string(t.Kind) + ":" + t.ID
}

// PlaylistResult is what a playlist walk reports back to the channel rollup.
type PlaylistResult struct {
	PlaylistID     string
	NewVideos      int
	TotalItemCount int
	VideoIDs       []string
}

// ChannelResult summarizes one channel pass.
type ChannelResult struct {
	ChannelID          string        `json:"channel_id"`
	NewVideos          int           `json:"new_videos"`
	VideoCount         int64         `json:"video_count"`
	PlaylistCount      int64         `json:"playlist_count"`
	PlaylistItemCount  int64         `json:"playlist_item_count"`
	PlaylistVideoCount int64         `json:"playlist_video_count"`
	NewestPublishedAt  time.Time     `json:"newest_published_at"`
	Skipped            bool          `json:"skipped,omitempty"`
	Duration           time.Duration `json:"duration_ns"`
}

// SyncStats holds the outcome of a batch of targets.
type SyncStats struct {
	Targets   int
	Succeeded int
	NewVideos int
	Failures  []TargetFailure
	Duration  time.Duration
}

type TargetFailure struct {
	Target string
	Err    error
}
