package service

import (
	"time"

	"channel_syncer/internal/domain"
)

// DefaultOverlap is subtracted from the last sync time to absorb clock skew
// and videos published around the previous pass.
const DefaultOverlap = 1800 * time.Second

// FilterWindow trims a page ordered newest first to the prefix published at or
// after since-overlap. A zero since keeps the whole page. more reports whether
// the whole page was kept, meaning later pages may still hold new videos.
func FilterWindow(refs []domain.VideoRef, since time.Time, overlap time.Duration) (kept []domain.VideoRef, more bool) {
	if since.IsZero() {
		return refs, true
	}

	cutoff := since.Add(-overlap)
	for i, ref := range refs {
		if ref.PublishedAt.Before(cutoff) {
			return refs[:i], false
		}
	}
	return refs, true
}
