package graphql

import (
	q "github.com/teamkeel/graphgate/query"
	"github.com/teamkeel/graphql"
)

var pageInfoType = graphql.NewObject(graphql.ObjectConfig{
	Name:        "PageInfo",
	Description: "Information about pagination in a connection.",
	Fields: graphql.Fields{
		"hasNextPage": &graphql.Field{
			Type:        graphql.NewNonNull(graphql.Boolean),
			Description: "When paginating forwards, are there more items?",
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(q.PageInfo).HasNextPage, nil
			},
		},
		"hasPreviousPage": &graphql.Field{
			Type:        graphql.NewNonNull(graphql.Boolean),
			Description: "When paginating backwards, are there more items?",
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(q.PageInfo).HasPreviousPage, nil
			},
		},
		"startCursor": &graphql.Field{
			Type:        graphql.String,
			Description: "When paginating backwards, the cursor to continue.",
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return cursorValue(p.Source.(q.PageInfo).StartCursor), nil
			},
		},
		"endCursor": &graphql.Field{
			Type:        graphql.String,
			Description: "When paginating forwards, the cursor to continue.",
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return cursorValue(p.Source.(q.PageInfo).EndCursor), nil
			},
		},
	},
})

var pageCursorType = graphql.NewObject(graphql.ObjectConfig{
	Name:        "PageCursor",
	Description: "A link to a numbered page.",
	Fields: graphql.Fields{
		"cursor": &graphql.Field{
			Type:        graphql.NewNonNull(graphql.String),
			Description: "The cursor of the first item on this page.",
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return string(p.Source.(q.PageCursor).Cursor), nil
			},
		},
		"page": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(q.PageCursor).Page, nil
			},
		},
		"isCurrent": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(q.PageCursor).IsCurrent, nil
			},
		},
	},
})

func optionalPageCursor(pick func(q.PageCursors) *q.PageCursor) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		c := pick(p.Source.(q.PageCursors))
		if c == nil {
			return nil, nil
		}
		return *c, nil
	}
}

var pageCursorsType = graphql.NewObject(graphql.ObjectConfig{
	Name:        "PageCursors",
	Description: "Cursors for numbered pagination controls.",
	Fields: graphql.Fields{
		"first": &graphql.Field{
			Type:        pageCursorType,
			Description: "Only set when the first page is not in around.",
			Resolve:     optionalPageCursor(func(c q.PageCursors) *q.PageCursor { return c.First }),
		},
		"last": &graphql.Field{
			Type:        pageCursorType,
			Description: "Only set when the last page is not in around.",
			Resolve:     optionalPageCursor(func(c q.PageCursors) *q.PageCursor { return c.Last }),
		},
		"previous": &graphql.Field{
			Type:    pageCursorType,
			Resolve: optionalPageCursor(func(c q.PageCursors) *q.PageCursor { return c.Previous }),
		},
		"next": &graphql.Field{
			Type:    pageCursorType,
			Resolve: optionalPageCursor(func(c q.PageCursors) *q.PageCursor { return c.Next }),
		},
		"around": &graphql.Field{
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(pageCursorType))),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(q.PageCursors).Around, nil
			},
		},
	},
})

func cursorValue(c *q.Cursor) interface{} {
	if c == nil {
		return nil
	}
	return string(*c)
}
