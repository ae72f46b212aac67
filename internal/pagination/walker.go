// Package pagination walks cursor-paginated upstream listings and encodes the
// continuation tokens handed out to read-path callers.
package pagination

import (
	"context"
	"errors"

	"channel_syncer/internal/domain"
)

// FetchFunc fetches one page starting at cursor. The empty cursor means the first page.
type FetchFunc[T any] func(ctx context.Context, pageSize int, cursor string) (domain.Page[T], error)

var ErrWalkDone = errors.New("pagination: walk finished")

// Walker lazily drives a single paginated endpoint in server cursor order until
// the server stops returning a next cursor. It does not retry.
type Walker[T any] struct {
	fetch    FetchFunc[T]
	pageSize int
	cursor   string
	done     bool
	pages    int
}

func NewWalker[T any](fetch FetchFunc[T], pageSize int) *Walker[T] {
	return &Walker[T]{fetch: fetch, pageSize: pageSize}
}

// Next fetches the next page. It returns ErrWalkDone once the previous page
// carried no next cursor.
func (w *Walker[T]) Next(ctx context.Context) (domain.Page[T], error) {
	if w.done {
		return domain.Page[T]{}, ErrWalkDone
	}
	if err := ctx.Err(); err != nil {
		return domain.Page[T]{}, err
	}

	page, err := w.fetch(ctx, w.pageSize, w.cursor)
	if err != nil {
		w.done = true
		return domain.Page[T]{}, err
	}
	w.pages++

	if page.NextCursor == nil {
		w.done = true
	} else {
		w.cursor = *page.NextCursor
	}
	return page, nil
}

// Pages returns how many pages have been fetched so far.
func (w *Walker[T]) Pages() int {
	return w.pages
}

// Walk calls fn for every page until the listing is exhausted, fn returns
// false, or an error occurs.
func (w *Walker[T]) Walk(ctx context.Context, fn func(page domain.Page[T]) (bool, error)) error {
	for {
		page, err := w.Next(ctx)
		if errors.Is(err, ErrWalkDone) {
			return nil
		}
		if err != nil {
			return err
		}

		more, err := fn(page)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// Collect walks the listing to exhaustion and returns every item in order.
func Collect[T any](ctx context.Context, fetch FetchFunc[T], pageSize int) ([]T, int, error) {
	var (
		items []T
		total int
	)
	err := NewWalker(fetch, pageSize).Walk(ctx, func(page domain.Page[T]) (bool, error) {
		items = append(items, page.Items...)
		total = page.TotalCount
		return true, nil
	})
	return items, total, err
}
