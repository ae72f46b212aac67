package youtube

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/youtube/v3"
)

func TestToVideoRef(t *testing.T) {
	tests := []struct {
		name   string
		item   *youtube.PlaylistItem
		wantID string
		wantAt time.Time
		wantOK bool
	}{
		{
			name: "content details win",
			item: &youtube.PlaylistItem{
				ContentDetails: &youtube.PlaylistItemContentDetails{VideoId: "v1", VideoPublishedAt: "2024-03-01T12:00:00Z"},
				Snippet:        &youtube.PlaylistItemSnippet{PublishedAt: "2024-03-05T00:00:00Z"},
			},
			wantID: "v1",
			wantAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name: "falls back to snippet",
			item: &youtube.PlaylistItem{
				Snippet: &youtube.PlaylistItemSnippet{
					PublishedAt: "2024-03-05T00:00:00+02:00",
					ResourceId:  &youtube.ResourceId{VideoId: "v2"},
				},
			},
			wantID: "v2",
			wantAt: time.Date(2024, 3, 4, 22, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "no video id",
			item:   &youtube.PlaylistItem{ContentDetails: &youtube.PlaylistItemContentDetails{}},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, ok := toVideoRef(tt.item)

			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantID, ref.ID)
				assert.True(t, tt.wantAt.Equal(ref.PublishedAt))
			}
		})
	}
}

func TestToVideo(t *testing.T) {
	item := &youtube.Video{
		Id: "v1",
		Snippet: &youtube.VideoSnippet{
			ChannelId:   "UC1",
			Title:       "Intro",
			PublishedAt: "2024-03-01T12:00:00Z",
			Thumbnails: &youtube.ThumbnailDetails{
				Default: &youtube.Thumbnail{Url: "https://i.ytimg.com/default.jpg"},
				Medium:  &youtube.Thumbnail{Url: "https://i.ytimg.com/medium.jpg"},
			},
		},
		Statistics: &youtube.VideoStatistics{ViewCount: 7},
	}

	video, err := toVideo(item)

	require.NoError(t, err)
	assert.Equal(t, "UC1", video.ChannelID)
	assert.Equal(t, int64(7), video.ViewCount)
	require.NotNil(t, video.ThumbnailURL)
	assert.Equal(t, "https://i.ytimg.com/medium.jpg", *video.ThumbnailURL)
	assert.Empty(t, video.Duration)
}

func TestToVideo_BadMetadata(t *testing.T) {
	_, err := toVideo(&youtube.Video{Id: "v1"})
	assert.Error(t, err)

	_, err = toVideo(&youtube.Video{Id: "v1", Snippet: &youtube.VideoSnippet{PublishedAt: "yesterday"}})
	assert.Error(t, err)
}

func TestToChannel_WithoutUploads(t *testing.T) {
	ch := toChannel(&youtube.Channel{Id: "UC1"})

	assert.Equal(t, "UC1", ch.ID)
	assert.Empty(t, ch.UploadsPlaylistID)
}
