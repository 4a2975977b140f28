// Package loaders implements backend page fetchers for connection fields.
//
// Each loader adapts a backend to q.FetchFunc. Loaders translate transport
// failures into runtime/common errors and never retry.
package loaders

import (
	"context"

	q "github.com/teamkeel/graphgate/query"
)

// FromSlice pages over items that are already loaded, such as the artists of
// an alert that were fetched by id in a single call. The total is always known.
func FromSlice[T any](items []T) q.FetchFunc[T] {
	return func(ctx context.Context, req q.PageRequest) (q.FetchResult[T], error) {
		if err := ctx.Err(); err != nil {
			return q.FetchResult[T]{}, err
		}

		start := req.PageStart()
		if start > len(items) {
			start = len(items)
		}
		end := len(items)
		if req.Size < end-start {
			end = start + req.Size
		}

		page := make([]T, end-start)
		copy(page, items[start:end])

		return q.FetchResult[T]{
			Items:      page,
			TotalCount: q.KnownTotal(len(items)),
		}, nil
	}
}
