package youtube

import (
	"context"
	"fmt"

	"google.golang.org/api/youtube/v3"

	"channel_syncer/internal/domain"
)

var (
	channelParts  = []string{"snippet", "contentDetails"}
	playlistParts = []string{"snippet", "contentDetails"}
	itemParts     = []string{"snippet", "contentDetails"}
	videoParts    = []string{"snippet", "contentDetails", "statistics"}
)

// GetChannel returns the channel with its uploads playlist id. The API answers
// an unknown id with an empty list, which maps to domain.ErrNotFound.
func (c *Client) GetChannel(ctx context.Context, channelID string) (*domain.Channel, error) {
	resp, err := call(ctx, c, "channels.list", func(ctx context.Context) (*youtube.ChannelListResponse, error) {
		return c.service.Channels.List(channelParts).Id(channelID).Context(ctx).Do()
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("channel %s: %w", channelID, domain.ErrNotFound)
	}
	return toChannel(resp.Items[0]), nil
}

func (c *Client) GetPlaylist(ctx context.Context, playlistID string) (*domain.Playlist, error) {
	resp, err := call(ctx, c, "playlists.list", func(ctx context.Context) (*youtube.PlaylistListResponse, error) {
		return c.service.Playlists.List(playlistParts).Id(playlistID).Context(ctx).Do()
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("playlist %s: %w", playlistID, domain.ErrNotFound)
	}
	return toPlaylist(resp.Items[0]), nil
}

func (c *Client) ListPlaylists(ctx context.Context, channelID string, pageSize int, cursor string) (domain.Page[domain.Playlist], error) {
	resp, err := call(ctx, c, "playlists.list", func(ctx context.Context) (*youtube.PlaylistListResponse, error) {
		return c.service.Playlists.List(playlistParts).
			ChannelId(channelID).
			MaxResults(clampPageSize(pageSize)).
			PageToken(cursor).
			Context(ctx).
			Do()
	})
	if err != nil {
		return domain.Page[domain.Playlist]{}, err
	}

	page := domain.Page[domain.Playlist]{
		Items:      make([]domain.Playlist, 0, len(resp.Items)),
		TotalCount: totalResults(resp.PageInfo, len(resp.Items)),
		NextCursor: nextCursor(resp.NextPageToken),
	}
	for _, item := range resp.Items {
		page.Items = append(page.Items, *toPlaylist(item))
	}
	return page, nil
}

// ListPlaylistItems returns one page of playlist entries in server order,
// which for an uploads playlist is newest first.
func (c *Client) ListPlaylistItems(ctx context.Context, playlistID string, pageSize int, cursor string) (domain.Page[domain.VideoRef], error) {
	resp, err := call(ctx, c, "playlistItems.list", func(ctx context.Context) (*youtube.PlaylistItemListResponse, error) {
		return c.service.PlaylistItems.List(itemParts).
			PlaylistId(playlistID).
			MaxResults(clampPageSize(pageSize)).
			PageToken(cursor).
			Context(ctx).
			Do()
	})
	if err != nil {
		return domain.Page[domain.VideoRef]{}, err
	}

	page := domain.Page[domain.VideoRef]{
		Items:      make([]domain.VideoRef, 0, len(resp.Items)),
		TotalCount: totalResults(resp.PageInfo, len(resp.Items)),
		NextCursor: nextCursor(resp.NextPageToken),
	}
	for _, item := range resp.Items {
		if ref, ok := toVideoRef(item); ok {
			page.Items = append(page.Items, ref)
		}
	}
	return page, nil
}

// GetVideos fetches full metadata in batches of 50 ids. Ids the API does not
// return (deleted or private videos) are silently absent from the result.
func (c *Client) GetVideos(ctx context.Context, ids []string) ([]domain.Video, error) {
	videos := make([]domain.Video, 0, len(ids))

	for start := 0; start < len(ids); start += maxIDsPerRequest {
		chunk := ids[start:min(start+maxIDsPerRequest, len(ids))]

		resp, err := call(ctx, c, "videos.list", func(ctx context.Context) (*youtube.VideoListResponse, error) {
			return c.service.Videos.List(videoParts).
				Id(chunk...).
				Context(ctx).
				Do()
		})
		if err != nil {
			return nil, err
		}

		for _, item := range resp.Items {
			video, err := toVideo(item)
			if err != nil {
				c.logger.Warn("skipping video with bad metadata",
					"video_id", item.Id,
					"error", err,
				)
				continue
			}
			videos = append(videos, video)
		}
	}

	return videos, nil
}

func clampPageSize(pageSize int) int64 {
	if pageSize <= 0 || pageSize > maxIDsPerRequest {
		return maxIDsPerRequest
	}
	return int64(pageSize)
}

// nextCursor maps the API's empty page token to "no further page".
func nextCursor(token string) *string {
	if token == "" {
		return nil
	}
	return &token
}

func totalResults(info *youtube.PageInfo, fallback int) int {
	if info == nil {
		return fallback
	}
	return int(info.TotalResults)
}
