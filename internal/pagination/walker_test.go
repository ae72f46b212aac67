package pagination

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"channel_syncer/internal/domain"
)

type fakeSource struct {
	items   []int
	calls   int
	cursors []string
	failAt  int
}

func (f *fakeSource) fetch(_ context.Context, pageSize int, cursor string) (domain.Page[int], error) {
	f.calls++
	f.cursors = append(f.cursors, cursor)
	if f.failAt > 0 && f.calls == f.failAt {
		return domain.Page[int]{}, errors.New("boom")
	}

	offset := 0
	if cursor != "" {
		offset, _ = strconv.Atoi(cursor)
	}
	end := min(offset+pageSize, len(f.items))

	page := domain.Page[int]{Items: f.items[offset:end], TotalCount: len(f.items)}
	if end < len(f.items) {
		next := strconv.Itoa(end)
		page.NextCursor = &next
	}
	return page, nil
}

func sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestWalker_TerminatesAfterCeilPages(t *testing.T) {
	cases := []struct {
		total, pageSize, calls int
	}{
		{total: 1, pageSize: 50, calls: 1},
		{total: 50, pageSize: 50, calls: 1},
		{total: 51, pageSize: 50, calls: 2},
		{total: 120, pageSize: 7, calls: 18},
		{total: 10, pageSize: 1, calls: 10},
	}

	for _, tc := range cases {
		src := &fakeSource{items: sequence(tc.total)}
		items, total, err := Collect(context.Background(), src.fetch, tc.pageSize)

		require.NoError(t, err)
		assert.Equal(t, tc.calls, src.calls, "total=%d pageSize=%d", tc.total, tc.pageSize)
		assert.Equal(t, tc.total, total)
		assert.Equal(t, sequence(tc.total), items)
	}
}

func TestWalker_FollowsCursorOrderFromEmptyCursor(t *testing.T) {
	src := &fakeSource{items: sequence(7)}
	_, _, err := Collect(context.Background(), src.fetch, 3)

	require.NoError(t, err)
	assert.Equal(t, []string{"", "3", "6"}, src.cursors)
}

func TestWalker_EmptyStringNextCursorIsNotTheEnd(t *testing.T) {
	calls := 0
	fetch := func(_ context.Context, _ int, cursor string) (domain.Page[int], error) {
		calls++
		if calls == 1 {
			empty := ""
			return domain.Page[int]{Items: []int{1}, NextCursor: &empty}, nil
		}
		return domain.Page[int]{Items: []int{2}}, nil
	}

	items, _, err := Collect(context.Background(), fetch, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, items)
	assert.Equal(t, 2, calls)
}

func TestWalker_ErrorAbortsWithoutRetry(t *testing.T) {
	src := &fakeSource{items: sequence(10), failAt: 2}
	w := NewWalker(src.fetch, 3)

	_, err := w.Next(context.Background())
	require.NoError(t, err)

	_, err = w.Next(context.Background())
	require.EqualError(t, err, "boom")

	_, err = w.Next(context.Background())
	assert.ErrorIs(t, err, ErrWalkDone)
	assert.Equal(t, 2, src.calls)
}

func TestWalker_StopsWhenCallbackDeclines(t *testing.T) {
	src := &fakeSource{items: sequence(10)}
	w := NewWalker(src.fetch, 2)

	err := w.Walk(context.Background(), func(page domain.Page[int]) (bool, error) {
		return page.Items[0] < 4, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, src.calls)
	assert.Equal(t, 3, w.Pages())
}

func TestWalker_CanceledContext(t *testing.T) {
	src := &fakeSource{items: sequence(10)}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewWalker(src.fetch, 2).Next(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, src.calls)
}
