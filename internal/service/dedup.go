package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"channel_syncer/internal/domain"
	"channel_syncer/internal/metrics"
)

// VideoUpserter fetches and stores only the videos the store does not have yet.
type VideoUpserter struct {
	catalog   CatalogClient
	repo      SyncRepository
	publisher EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

func NewVideoUpserter(catalog CatalogClient, repo SyncRepository, publisher EventPublisher, logger *slog.Logger) *VideoUpserter {
	return &VideoUpserter{
		catalog:   catalog,
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Upsert returns how many of refs were new and got persisted. Videos already in
// the store are never requested from the catalog.
func (u *VideoUpserter) Upsert(ctx context.Context, refs []domain.VideoRef) (int, error) {
	if len(refs) == 0 {
		return 0, nil
	}

	candidates := make([]string, 0, len(refs))
	for _, ref := range refs {
		candidates = append(candidates, ref.ID)
	}

	existing, err := u.repo.GetExistingVideoIDs(ctx, candidates)
	if err != nil {
		return 0, fmt.Errorf("get existing videos: %w", err)
	}

	missing := claimsFrom(ctx).claim(missingIDs(candidates, existing))
	if len(missing) == 0 {
		return 0, nil
	}

	videos, err := u.catalog.GetVideos(ctx, missing)
	if err != nil {
		return 0, fmt.Errorf("get videos: %w", err)
	}
	if len(videos) == 0 {
		return 0, nil
	}

	now := u.now()
	for i := range videos {
		videos[i].UpdatedAt = now
	}

	if err := u.repo.SaveVideos(ctx, videos); err != nil {
		return 0, fmt.Errorf("save videos: %w: %w", domain.ErrStoreWrite, err)
	}
	metrics.VideosSynced.Add(float64(len(videos)))

	u.logger.Debug("stored new videos",
		"requested", len(missing),
		"stored", len(videos),
	)

	u.publish(ctx, videos)

	return len(videos), nil
}

func (u *VideoUpserter) publish(ctx context.Context, videos []domain.Video) {
	if u.publisher == nil {
		return
	}
	for i := range videos {
		if err := u.publisher.PublishVideo(ctx, &videos[i]); err != nil {
			metrics.EventsFailed.Inc()
			u.logger.Warn("failed to publish video event",
				"video_id", videos[i].ID,
				"error", err,
			)
		}
	}
}

// missingIDs returns candidates not present in existing, in candidate order and
// without duplicates. existing is sorted on a copy before the binary search.
func missingIDs(candidates, existing []string) []string {
	sorted := slices.Clone(existing)
	slices.Sort(sorted)

	seen := make(map[string]struct{}, len(candidates))
	var missing []string
	for _, id := range candidates {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if _, found := slices.BinarySearch(sorted, id); !found {
			missing = append(missing, id)
		}
	}
	return missing
}

type claimsKey struct{}

// videoClaims records the ids already fetched during one channel pass so
// concurrent playlist walks never request the same video twice.
type videoClaims struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

func withVideoClaims(ctx context.Context) context.Context {
	return context.WithValue(ctx, claimsKey{}, &videoClaims{ids: make(map[string]struct{})})
}

func claimsFrom(ctx context.Context) *videoClaims {
	c, _ := ctx.Value(claimsKey{}).(*videoClaims)
	return c
}

// claim returns the ids not claimed before and marks them claimed. A nil set
// claims everything.
func (c *videoClaims) claim(ids []string) []string {
	if c == nil {
		return ids
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []string
	for _, id := range ids {
		if _, ok := c.ids[id]; ok {
			continue
		}
		c.ids[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
