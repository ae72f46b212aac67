package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"channel_syncer/internal/domain"
)

func TestFilterWindow(t *testing.T) {
	since := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		refs     []domain.VideoRef
		since    time.Time
		wantIDs  []string
		wantMore bool
	}{
		{
			name:     "no previous sync keeps everything",
			refs:     []domain.VideoRef{ref("a", since.Add(-48*time.Hour)), ref("b", since.Add(-96*time.Hour))},
			wantIDs:  []string{"a", "b"},
			wantMore: true,
		},
		{
			name:     "newer than last sync",
			refs:     []domain.VideoRef{ref("v1", since.Add(10*time.Second)), ref("v2", since.Add(-3600*time.Second))},
			since:    since,
			wantIDs:  []string{"v1"},
			wantMore: false,
		},
		{
			name:     "inside overlap is kept",
			refs:     []domain.VideoRef{ref("v1", since.Add(-29*time.Minute)), ref("v2", since.Add(-30*time.Minute))},
			since:    since,
			wantIDs:  []string{"v1", "v2"},
			wantMore: true,
		},
		{
			name:     "cut at first old item even if newer ones follow",
			refs:     []domain.VideoRef{ref("v1", since), ref("old", since.Add(-time.Hour)), ref("v3", since.Add(time.Hour))},
			since:    since,
			wantIDs:  []string{"v1"},
			wantMore: false,
		},
		{
			name:     "whole page too old",
			refs:     []domain.VideoRef{ref("old", since.Add(-2*time.Hour))},
			since:    since,
			wantIDs:  []string{},
			wantMore: false,
		},
		{
			name:     "empty page",
			since:    since,
			wantIDs:  []string{},
			wantMore: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kept, more := FilterWindow(tt.refs, tt.since, DefaultOverlap)

			ids := make([]string, 0, len(kept))
			for _, r := range kept {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.wantMore, more)
		})
	}
}
