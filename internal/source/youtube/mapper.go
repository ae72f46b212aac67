package youtube

import (
	"fmt"
	"time"

	"google.golang.org/api/youtube/v3"

	"channel_syncer/internal/domain"
)

func toChannel(item *youtube.Channel) *domain.Channel {
	ch := &domain.Channel{ID: item.Id}
	if item.Snippet != nil {
		ch.Title = item.Snippet.Title
	}
	if item.ContentDetails != nil && item.ContentDetails.RelatedPlaylists != nil {
		ch.UploadsPlaylistID = item.ContentDetails.RelatedPlaylists.Uploads
	}
	return ch
}

func toPlaylist(item *youtube.Playlist) *domain.Playlist {
	pl := &domain.Playlist{ID: item.Id}
	if item.Snippet != nil {
		pl.ChannelID = item.Snippet.ChannelId
		pl.Title = item.Snippet.Title
	}
	if item.ContentDetails != nil {
		pl.TotalItemCount = item.ContentDetails.ItemCount
	}
	return pl
}

// toVideoRef prefers the video's own publish time over the time it was added
// to the playlist. Entries without a video id are dropped.
func toVideoRef(item *youtube.PlaylistItem) (domain.VideoRef, bool) {
	var ref domain.VideoRef

	if cd := item.ContentDetails; cd != nil {
		ref.ID = cd.VideoId
		ref.PublishedAt = parseTime(cd.VideoPublishedAt)
	}
	if sn := item.Snippet; sn != nil {
		if ref.ID == "" && sn.ResourceId != nil {
			ref.ID = sn.ResourceId.VideoId
		}
		if ref.PublishedAt.IsZero() {
			ref.PublishedAt = parseTime(sn.PublishedAt)
		}
	}

	return ref, ref.ID != ""
}

func toVideo(item *youtube.Video) (domain.Video, error) {
	if item.Snippet == nil {
		return domain.Video{}, fmt.Errorf("video %s: missing snippet", item.Id)
	}

	publishedAt, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
	if err != nil {
		return domain.Video{}, fmt.Errorf("parse published_at: %w", err)
	}

	video := domain.Video{
		ID:          item.Id,
		ChannelID:   item.Snippet.ChannelId,
		Title:       item.Snippet.Title,
		Description: item.Snippet.Description,
		Tags:        item.Snippet.Tags,
		PublishedAt: publishedAt.UTC(),
	}
	if url := bestThumbnail(item.Snippet.Thumbnails); url != "" {
		video.ThumbnailURL = &url
	}
	if item.ContentDetails != nil {
		video.Duration = item.ContentDetails.Duration
	}
	if item.Statistics != nil {
		video.ViewCount = int64(item.Statistics.ViewCount)
	}

	return video, nil
}

func bestThumbnail(t *youtube.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	for _, th := range []*youtube.Thumbnail{t.Maxres, t.High, t.Medium, t.Default} {
		if th != nil && th.Url != "" {
			return th.Url
		}
	}
	return ""
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
