package xrplsale

import (
	"context"
)

// DefaultPageSize is the page size used by the auto-pagination helpers.
const DefaultPageSize = 50

// Pagination represents the pagination envelope returned by list endpoints.
type Pagination struct {
	Page       int `json:"page"        yaml:"page"`
	Limit      int `json:"limit"       yaml:"limit"`
	Total      int `json:"total"       yaml:"total"`
	TotalPages int `json:"total_pages" yaml:"total_pages"`
}

// ListResponse represents a paginated list response. Both fields are
// optional on the wire; a missing Data or Pagination means an empty page and
// no further pages, not an error.
type ListResponse[T any] struct {
	Data       []T         `json:"data,omitempty"       yaml:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty" yaml:"pagination,omitempty"`
}

// ListPageFunc fetches one page of results. Implementations are usually thin
// closures over a resource client's List method.
type ListPageFunc[T any] func(ctx context.Context, page, limit int) (*ListResponse[T], error)

// PaginationIterator lazily walks a paginated collection page by page,
// yielding individual items in server order.
//
// An iterator is forward-only and single-use: after the last item (or the
// terminal error) has been consumed it cannot be restarted. It is not safe
// to drive one iterator from multiple goroutines.
type PaginationIterator[T any] struct {
	ctx   context.Context
	fetch ListPageFunc[T]
	limit int
	page  int
	buf   []T
	err   error
	done  bool
}

// NewPaginationIterator creates an iterator over fetch, starting at page 1
// with DefaultPageSize items per page.
func NewPaginationIterator[T any](ctx context.Context, fetch ListPageFunc[T]) *PaginationIterator[T] {
	return &PaginationIterator[T]{
		ctx:   ctx,
		fetch: fetch,
		limit: DefaultPageSize,
		page:  1,
	}
}

// HasNext reports whether Next will return another item or the terminal
// error. It fetches the next page when the current one is drained.
func (it *PaginationIterator[T]) HasNext() bool {
	it.fill()

	return len(it.buf) > 0 || it.err != nil
}

// Next returns the next item in the sequence. After a page fetch fails, Next
// returns that error exactly once and the iterator ends. Once exhausted it
// returns ErrNoMoreItems.
func (it *PaginationIterator[T]) Next() (T, error) {
	var zero T

	it.fill()

	if len(it.buf) > 0 {
		item := it.buf[0]
		it.buf = it.buf[1:]

		return item, nil
	}

	if it.err != nil {
		err := it.err
		it.err = nil

		return zero, err
	}

	return zero, ErrNoMoreItems
}

// fill fetches pages until an item is buffered, the collection is exhausted,
// or a fetch fails. Pages whose data is empty but that report more pages are
// skipped over.
func (it *PaginationIterator[T]) fill() {
	for len(it.buf) == 0 && it.err == nil && !it.done {
		resp, err := it.fetch(it.ctx, it.page, it.limit)
		if err != nil {
			it.err = err
			it.done = true

			return
		}

		if resp == nil {
			it.done = true

			return
		}

		hasMore := resp.Pagination != nil && resp.Pagination.Page < resp.Pagination.TotalPages
		it.page++
		it.done = !hasMore
		it.buf = resp.Data
	}
}

// CollectAll drains the iterator into a slice. On failure it returns the
// items retrieved so far along with the error.
func CollectAll[T any](it *PaginationIterator[T]) ([]T, error) {
	var items []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return items, err
		}

		items = append(items, item)
	}

	return items, nil
}
