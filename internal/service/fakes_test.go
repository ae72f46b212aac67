package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"sync"
	"time"

	"channel_syncer/internal/domain"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeCatalog struct {
	mu               sync.Mutex
	channels         map[string]*domain.Channel
	playlists        map[string]*domain.Playlist
	channelPlaylists map[string][]string
	items            map[string][]domain.VideoRef
	videos           map[string]domain.Video
	failItems        map[string]error

	itemPages     map[string]int
	playlistLists int
	fetched       []string
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		channels:         make(map[string]*domain.Channel),
		playlists:        make(map[string]*domain.Playlist),
		channelPlaylists: make(map[string][]string),
		items:            make(map[string][]domain.VideoRef),
		videos:           make(map[string]domain.Video),
		failItems:        make(map[string]error),
		itemPages:        make(map[string]int),
	}
}

func (c *fakeCatalog) addChannel(id, uploadsID string) {
	c.channels[id] = &domain.Channel{ID: id, Title: "channel " + id, UploadsPlaylistID: uploadsID}
}

// addVideos registers videos under playlistID; refs must be given newest first.
func (c *fakeCatalog) addVideos(channelID, playlistID string, refs ...domain.VideoRef) {
	c.items[playlistID] = append(c.items[playlistID], refs...)
	for _, ref := range refs {
		c.videos[ref.ID] = domain.Video{
			ID:          ref.ID,
			ChannelID:   channelID,
			Title:       "video " + ref.ID,
			PublishedAt: ref.PublishedAt,
		}
	}
}

func (c *fakeCatalog) addPlaylist(channelID, playlistID string, refs ...domain.VideoRef) {
	c.playlists[playlistID] = &domain.Playlist{ID: playlistID, ChannelID: channelID, Title: "playlist " + playlistID}
	c.channelPlaylists[channelID] = append(c.channelPlaylists[channelID], playlistID)
	c.addVideos(channelID, playlistID, refs...)
}

func (c *fakeCatalog) GetChannel(_ context.Context, channelID string) (*domain.Channel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch, ok := c.channels[channelID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *ch
	return &cp, nil
}

func (c *fakeCatalog) GetPlaylist(_ context.Context, playlistID string) (*domain.Playlist, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	pl, ok := c.playlists[playlistID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *pl
	return &cp, nil
}

func (c *fakeCatalog) ListPlaylists(_ context.Context, channelID string, pageSize int, cursor string) (domain.Page[domain.Playlist], error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.playlistLists++

	var all []domain.Playlist
	for _, id := range c.channelPlaylists[channelID] {
		all = append(all, *c.playlists[id])
	}
	return pageOf(all, pageSize, cursor), nil
}

func (c *fakeCatalog) ListPlaylistItems(_ context.Context, playlistID string, pageSize int, cursor string) (domain.Page[domain.VideoRef], error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.failItems[playlistID]; err != nil {
		return domain.Page[domain.VideoRef]{}, err
	}
	c.itemPages[playlistID]++
	return pageOf(c.items[playlistID], pageSize, cursor), nil
}

func (c *fakeCatalog) GetVideos(_ context.Context, ids []string) ([]domain.Video, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetched = append(c.fetched, ids...)

	var out []domain.Video
	for _, id := range ids {
		if v, ok := c.videos[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (c *fakeCatalog) fetchedIDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.fetched)
}

func pageOf[T any](all []T, pageSize int, cursor string) domain.Page[T] {
	offset := 0
	if cursor != "" {
		offset, _ = strconv.Atoi(cursor)
	}
	end := min(offset+pageSize, len(all))
	page := domain.Page[T]{Items: slices.Clone(all[offset:end]), TotalCount: len(all)}
	if end < len(all) {
		next := strconv.Itoa(end)
		page.NextCursor = &next
	}
	return page
}

type fakeRepo struct {
	mu        sync.Mutex
	states    map[string]domain.SyncState
	channels  map[string]domain.Channel
	playlists map[string]domain.Playlist
	members   map[string][]string
	videos    map[string]domain.Video

	failChannel   error
	failSyncState error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		states:    make(map[string]domain.SyncState),
		channels:  make(map[string]domain.Channel),
		playlists: make(map[string]domain.Playlist),
		members:   make(map[string][]string),
		videos:    make(map[string]domain.Video),
	}
}

func (r *fakeRepo) GetSyncState(_ context.Context, channelID string) (*domain.SyncState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.states[channelID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &st, nil
}

func (r *fakeRepo) SaveSyncState(_ context.Context, state *domain.SyncState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failSyncState != nil {
		return r.failSyncState
	}
	r.states[state.ChannelID] = *state
	return nil
}

func (r *fakeRepo) GetChannel(_ context.Context, channelID string) (*domain.Channel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ch, ok := r.channels[channelID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &ch, nil
}

func (r *fakeRepo) SaveChannel(_ context.Context, channel *domain.Channel) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failChannel != nil {
		return 0, r.failChannel
	}
	r.channels[channel.ID] = *channel
	return 1, nil
}

func (r *fakeRepo) SavePlaylist(_ context.Context, playlist *domain.Playlist) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.playlists[playlist.ID] = *playlist
	return nil
}

func (r *fakeRepo) SavePlaylists(_ context.Context, playlists []domain.Playlist) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[string]bool, len(playlists))
	for _, p := range playlists {
		if seen[p.ID] {
			return fmt.Errorf("playlist %s: cannot affect row a second time", p.ID)
		}
		seen[p.ID] = true
	}
	for _, p := range playlists {
		if existing, ok := r.playlists[p.ID]; ok {
			p.ItemCount, p.UpdatedAt = existing.ItemCount, existing.UpdatedAt
		}
		r.playlists[p.ID] = p
	}
	return nil
}

func (r *fakeRepo) SavePlaylistMembership(_ context.Context, playlistID string, videoIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members[playlistID] = slices.Clone(videoIDs)
	return nil
}

func (r *fakeRepo) SaveVideos(_ context.Context, videos []domain.Video) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range videos {
		r.videos[v.ID] = v
	}
	return nil
}

func (r *fakeRepo) GetExistingVideoIDs(_ context.Context, ids []string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, id := range ids {
		if _, ok := r.videos[id]; ok {
			out = append(out, id)
		}
	}
	return out, nil
}

type repoSnapshot struct {
	States    map[string]domain.SyncState
	Channels  map[string]domain.Channel
	Playlists map[string]domain.Playlist
	Members   map[string][]string
	Videos    map[string]domain.Video
}

func (r *fakeRepo) snapshot() repoSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return repoSnapshot{
		States:    maps.Clone(r.states),
		Channels:  maps.Clone(r.channels),
		Playlists: maps.Clone(r.playlists),
		Members:   maps.Clone(r.members),
		Videos:    maps.Clone(r.videos),
	}
}

func (r *fakeRepo) videoIDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Sorted(maps.Keys(r.videos))
}

type passthroughTx struct{}

func (passthroughTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fixedClock returns a clock that advances by one second per call from start.
func fixedClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	t := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}

func ref(id string, at time.Time) domain.VideoRef {
	return domain.VideoRef{ID: id, PublishedAt: at}
}

func refsFrom(prefix string, n int, newest time.Time) []domain.VideoRef {
	out := make([]domain.VideoRef, n)
	for i := range out {
		out[i] = ref(fmt.Sprintf("%s%d", prefix, i+1), newest.Add(-time.Duration(i)*time.Hour))
	}
	return out
}

// commitFailTx runs fn and then fails the way a lost commit does.
type commitFailTx struct{ err error }

func (c commitFailTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return fmt.Errorf("commit transaction: %w", c.err)
}

// gaugedCatalog records the peak number of concurrent playlist item listings.
type gaugedCatalog struct {
	*fakeCatalog
	delay time.Duration

	gaugeMu  sync.Mutex
	inflight int
	peak     int
}

func (g *gaugedCatalog) ListPlaylistItems(ctx context.Context, playlistID string, pageSize int, cursor string) (domain.Page[domain.VideoRef], error) {
	g.gaugeMu.Lock()
	g.inflight++
	g.peak = max(g.peak, g.inflight)
	g.gaugeMu.Unlock()

	defer func() {
		g.gaugeMu.Lock()
		g.inflight--
		g.gaugeMu.Unlock()
	}()

	time.Sleep(g.delay)
	return g.fakeCatalog.ListPlaylistItems(ctx, playlistID, pageSize, cursor)
}

func (g *gaugedCatalog) peakInFlight() int {
	g.gaugeMu.Lock()
	defer g.gaugeMu.Unlock()
	return g.peak
}
