package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"channel_syncer/internal/domain"
	"channel_syncer/internal/service/mocks"
)

type PlaylistSyncerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	catalog *mocks.MockCatalogClient
	repo    *mocks.MockSyncRepository

	syncer *PlaylistSyncer
	now    time.Time
}

func (s *PlaylistSyncerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.catalog = mocks.NewMockCatalogClient(s.ctrl)
	s.repo = mocks.NewMockSyncRepository(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	videos := NewVideoUpserter(s.catalog, s.repo, nil, logger)

	s.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.syncer = NewPlaylistSyncer(s.catalog, s.repo, videos, 2, logger)
	s.syncer.now = func() time.Time { return s.now }
}

func (s *PlaylistSyncerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPlaylistSyncerTestSuite(t *testing.T) {
	suite.Run(t, new(PlaylistSyncerTestSuite))
}

func (s *PlaylistSyncerTestSuite) expectPages(playlistID string, pages ...[]string) {
	total := 0
	for _, p := range pages {
		total += len(p)
	}

	cursor := ""
	for i, ids := range pages {
		page := domain.Page[domain.VideoRef]{TotalCount: total}
		for _, id := range ids {
			page.Items = append(page.Items, domain.VideoRef{ID: id, PublishedAt: s.now})
		}
		if i < len(pages)-1 {
			next := string(rune('1' + i))
			page.NextCursor = &next
		}
		s.catalog.EXPECT().ListPlaylistItems(gomock.Any(), playlistID, 2, cursor).Return(page, nil)
		if page.NextCursor != nil {
			cursor = *page.NextCursor
		}
	}
}

func (s *PlaylistSyncerTestSuite) TestSync_ShallowRecordsMembership() {
	ctx := context.Background()
	playlist := &domain.Playlist{ID: "PL1", ChannelID: "UC1", Title: "Talks"}

	s.expectPages("PL1", []string{"a", "b"}, []string{"c"})

	s.repo.EXPECT().SavePlaylist(ctx, &domain.Playlist{
		ID:             "PL1",
		ChannelID:      "UC1",
		Title:          "Talks",
		ItemCount:      3,
		TotalItemCount: 3,
		UpdatedAt:      s.now,
	}).Return(nil)
	s.repo.EXPECT().SavePlaylistMembership(ctx, "PL1", []string{"a", "b", "c"}).Return(nil)

	res, err := s.syncer.Sync(ctx, playlist, false)

	s.NoError(err)
	s.Equal(0, res.NewVideos)
	s.Equal(3, res.TotalItemCount)
	s.Equal([]string{"a", "b", "c"}, res.VideoIDs)
	s.Zero(playlist.ItemCount, "caller's playlist must not be mutated")
}

func (s *PlaylistSyncerTestSuite) TestSync_DeepFetchesNewVideos() {
	ctx := context.Background()
	playlist := &domain.Playlist{ID: "PL1", ChannelID: "UC1"}

	s.expectPages("PL1", []string{"a", "b"})

	s.repo.EXPECT().GetExistingVideoIDs(gomock.Any(), []string{"a", "b"}).Return([]string{"a"}, nil)
	videos := []domain.Video{{ID: "b"}}
	s.catalog.EXPECT().GetVideos(gomock.Any(), []string{"b"}).Return(videos, nil)
	s.repo.EXPECT().SaveVideos(gomock.Any(), videos).Return(nil)
	s.repo.EXPECT().SavePlaylist(ctx, gomock.Any()).Return(nil)
	s.repo.EXPECT().SavePlaylistMembership(ctx, "PL1", []string{"a", "b"}).Return(nil)

	res, err := s.syncer.Sync(ctx, playlist, true)

	s.NoError(err)
	s.Equal(1, res.NewVideos)
}

func (s *PlaylistSyncerTestSuite) TestSync_ListFailureSavesNothing() {
	ctx := context.Background()

	s.catalog.EXPECT().ListPlaylistItems(gomock.Any(), "PL1", 2, "").
		Return(domain.Page[domain.VideoRef]{}, domain.ErrUpstreamUnavailable)

	_, err := s.syncer.Sync(ctx, &domain.Playlist{ID: "PL1"}, true)

	s.ErrorIs(err, domain.ErrUpstreamUnavailable)
}

func (s *PlaylistSyncerTestSuite) TestSync_MembershipWriteFailure() {
	ctx := context.Background()

	s.expectPages("PL1", []string{"a"})
	s.repo.EXPECT().SavePlaylist(ctx, gomock.Any()).Return(nil)
	s.repo.EXPECT().SavePlaylistMembership(ctx, "PL1", []string{"a"}).Return(errors.New("deadlock"))

	_, err := s.syncer.Sync(ctx, &domain.Playlist{ID: "PL1"}, false)

	s.ErrorIs(err, domain.ErrStoreWrite)
}

func (s *PlaylistSyncerTestSuite) TestSyncByID_NotFound() {
	ctx := context.Background()

	s.catalog.EXPECT().GetPlaylist(ctx, "PLgone").Return(nil, domain.ErrNotFound)

	_, err := s.syncer.SyncByID(ctx, "PLgone", true)

	s.ErrorIs(err, domain.ErrNotFound)
}
