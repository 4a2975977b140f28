package q

import (
	"context"

	"github.com/samber/lo"
)

// TotalCount is the size of the full result set, when the backend reported it.
type TotalCount struct {
	value int
	known bool
}

func KnownTotal(n int) TotalCount {
	return TotalCount{value: n, known: true}
}

func UnknownTotal() TotalCount {
	return TotalCount{}
}

// Get returns the count and whether it is known.
func (t TotalCount) Get() (int, bool) {
	return t.value, t.known
}

// FetchResult is a single page as returned by a backend loader.
type FetchResult[T any] struct {
	Items      []T
	TotalCount TotalCount

	// Offset is the absolute offset of Items[0]. Loaders that page by
	// PageRequest.Offset must set it; nil means the page starts at
	// PageRequest.PageStart().
	Offset *int
}

// Start is the absolute offset of the first item of the result.
func (r FetchResult[T]) Start(req PageRequest) int {
	if r.Offset != nil {
		return *r.Offset
	}
	return req.PageStart()
}

// FetchFunc loads one page from a backend.
type FetchFunc[T any] func(ctx context.Context, req PageRequest) (FetchResult[T], error)

type Edge[T any] struct {
	Node   T
	Cursor Cursor
}

type PageInfo struct {
	HasNextPage     bool    `json:"hasNextPage"`
	HasPreviousPage bool    `json:"hasPreviousPage"`
	StartCursor     *Cursor `json:"startCursor"`
	EndCursor       *Cursor `json:"endCursor"`
}

// Connection is a Relay connection over a page of nodes. A Connection is a
// value: functions in this package return new connections rather than
// modifying the one they are given.
type Connection[T any] struct {
	Edges      []Edge[T]
	PageInfo   PageInfo
	TotalCount *int

	// PageCursors is only set when the total count is known.
	PageCursors *PageCursors
}

// Nodes returns the nodes of all edges in order.
func (c Connection[T]) Nodes() []T {
	return lo.Map(c.Edges, func(e Edge[T], _ int) T {
		return e.Node
	})
}

// BuildConnection wraps a fetched page into a connection. Each item's cursor
// is derived from its absolute offset, so cursors are comparable across pages
// of the same size.
//
// Without a known total, hasNextPage assumes a full page means more items may
// follow.
func BuildConnection[T any](items []T, req PageRequest, total TotalCount) Connection[T] {
	return buildConnection(items, req.PageStart(), req.Size, total)
}

// BuildConnectionFrom builds the connection for a fetched page, labelling
// edges from the offset the loader actually started at.
func BuildConnectionFrom[T any](result FetchResult[T], req PageRequest) Connection[T] {
	return buildConnection(result.Items, result.Start(req), req.Size, result.TotalCount)
}

func buildConnection[T any](items []T, start, size int, total TotalCount) Connection[T] {
	edges := make([]Edge[T], 0, len(items))
	for i, item := range items {
		edges = append(edges, Edge[T]{
			Node:   item,
			Cursor: EncodeCursor(start + i),
		})
	}

	info := PageInfo{
		HasPreviousPage: start > 0,
	}

	if n, ok := total.Get(); ok {
		info.HasNextPage = start+len(items) < n
	} else {
		info.HasNextPage = len(items) > 0 && len(items) == size
	}

	if len(edges) > 0 {
		first := edges[0].Cursor
		last := edges[len(edges)-1].Cursor
		info.StartCursor = &first
		info.EndCursor = &last
	}

	conn := Connection[T]{
		Edges:    edges,
		PageInfo: info,
	}

	if n, ok := total.Get(); ok {
		conn.TotalCount = &n
	}

	return conn
}

// EmptyConnection is the connection of a result set known to be empty. It is
// what BuildConnection returns for an empty first page with a total of zero.
func EmptyConnection[T any]() Connection[T] {
	total := 0
	return Connection[T]{
		Edges:      []Edge[T]{},
		PageInfo:   PageInfo{},
		TotalCount: &total,
	}
}

// WithPageCursors returns a copy of c carrying the given page cursors.
func (c Connection[T]) WithPageCursors(cursors PageCursors) Connection[T] {
	c.PageCursors = &cursors
	return c
}

// MapNodes returns a new connection whose nodes are fn applied to the nodes of
// c. Cursors, page info and counts are carried over unchanged. This is how
// resolvers decorate edges with domain specific fields.
func MapNodes[T, U any](c Connection[T], fn func(T) U) Connection[U] {
	return Connection[U]{
		Edges: lo.Map(c.Edges, func(e Edge[T], _ int) Edge[U] {
			return Edge[U]{Node: fn(e.Node), Cursor: e.Cursor}
		}),
		PageInfo:    c.PageInfo,
		TotalCount:  c.TotalCount,
		PageCursors: c.PageCursors,
	}
}
