package graphql

import (
	"context"

	"github.com/samber/lo"
	q "github.com/teamkeel/graphgate/query"
	"github.com/teamkeel/graphgate/runtime/actions"
	"github.com/teamkeel/graphgate/runtime/common"
	"github.com/teamkeel/graphql"
	"github.com/teamkeel/graphql/language/ast"
)

// ConnectionArgs are the relay paging arguments accepted by every connection field.
func ConnectionArgs() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"first": &graphql.ArgumentConfig{
			Type: graphql.Int,
		},
		"after": &graphql.ArgumentConfig{
			Type: graphql.String,
		},
		"last": &graphql.ArgumentConfig{
			Type: graphql.Int,
		},
		"before": &graphql.ArgumentConfig{
			Type: graphql.String,
		},
	}
}

type ConnectionConfig struct {
	Name     string
	NodeType graphql.Output

	// EdgeFields are added to the edge type next to node and cursor. They
	// resolve against the edge's node, so the node itself carries whatever
	// the fields need.
	EdgeFields graphql.Fields
}

type ConnectionDefinitions struct {
	EdgeType       *graphql.Object
	ConnectionType *graphql.Object
}

type edgeSource struct {
	node   any
	cursor q.Cursor
}

type connectionSource struct {
	edges       []edgeSource
	pageInfo    q.PageInfo
	totalCount  *int
	pageCursors *q.PageCursors
}

// NewConnectionSource turns a connection into the value the connection
// types defined by ConnectionWithCursorInfo resolve from.
func NewConnectionSource[T any](c q.Connection[T]) any {
	return connectionSource{
		edges: lo.Map(c.Edges, func(e q.Edge[T], _ int) edgeSource {
			return edgeSource{node: e.Node, cursor: e.Cursor}
		}),
		pageInfo:    c.PageInfo,
		totalCount:  c.TotalCount,
		pageCursors: c.PageCursors,
	}
}

// ConnectionWithCursorInfo defines <Name>Edge and <Name>Connection types.
// On top of the relay fields the connection exposes totalCount and
// pageCursors, both of which are null when the backend did not report a total.
func ConnectionWithCursorInfo(cfg ConnectionConfig) *ConnectionDefinitions {
	edgeFields := graphql.Fields{
		"node": &graphql.Field{
			Type:        cfg.NodeType,
			Description: "The item at the end of the edge",
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(edgeSource).node, nil
			},
		},
		"cursor": &graphql.Field{
			Type:        graphql.NewNonNull(graphql.String),
			Description: "A cursor for use in pagination",
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return string(p.Source.(edgeSource).cursor), nil
			},
		},
	}

	for name, field := range cfg.EdgeFields {
		edgeFields[name] = onNode(field)
	}

	edgeType := graphql.NewObject(graphql.ObjectConfig{
		Name:        cfg.Name + "Edge",
		Description: "An edge in a connection.",
		Fields:      edgeFields,
	})

	connectionType := graphql.NewObject(graphql.ObjectConfig{
		Name:        cfg.Name + "Connection",
		Description: "A connection to a list of items.",
		Fields: graphql.Fields{
			"edges": &graphql.Field{
				Type:        graphql.NewList(edgeType),
				Description: "A list of edges.",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(connectionSource).edges, nil
				},
			},
			"pageInfo": &graphql.Field{
				Type:        graphql.NewNonNull(pageInfoType),
				Description: "Information to aid in pagination.",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(connectionSource).pageInfo, nil
				},
			},
			"totalCount": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					total := p.Source.(connectionSource).totalCount
					if total == nil {
						return nil, nil
					}
					return *total, nil
				},
			},
			"pageCursors": &graphql.Field{
				Type: pageCursorsType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					cursors := p.Source.(connectionSource).pageCursors
					if cursors == nil {
						return nil, nil
					}
					return *cursors, nil
				},
			},
		},
	})

	return &ConnectionDefinitions{
		EdgeType:       edgeType,
		ConnectionType: connectionType,
	}
}

// onNode returns a copy of field that resolves with the edge's node as its source.
func onNode(field *graphql.Field) *graphql.Field {
	resolve := field.Resolve
	if resolve == nil {
		resolve = graphql.DefaultResolveFn
	}

	wrapped := *field
	wrapped.Resolve = func(p graphql.ResolveParams) (interface{}, error) {
		p.Source = p.Source.(edgeSource).node
		return resolve(p)
	}
	return &wrapped
}

// FetchResolver returns the loader for the parent object of a connection
// field. Returning a nil FetchFunc means the parent has nothing to page over,
// and the empty connection is returned without calling the backend.
type FetchResolver[T any] func(p graphql.ResolveParams) (q.FetchFunc[T], error)

// ConnectionField is a connection field whose pages come from the loader
// returned by resolver.
func ConnectionField[T any](defs *ConnectionDefinitions, opts actions.Options, resolver FetchResolver[T]) *graphql.Field {
	return &graphql.Field{
		Type: graphql.NewNonNull(defs.ConnectionType),
		Args: ConnectionArgs(),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			fetch, err := resolver(p)
			if err != nil {
				return nil, common.NewRuntimeError(err)
			}

			if fetch == nil {
				return NewConnectionSource(q.EmptyConnection[T]()), nil
			}

			ctx := p.Context
			if ctx == nil {
				ctx = context.Background()
			}

			conn, err := actions.Paginate(ctx, p.Args, wantsTotalCount(p.Info), opts, fetch)
			if err != nil {
				return nil, common.NewRuntimeError(err)
			}

			return NewConnectionSource(conn), nil
		},
	}
}

// wantsTotalCount reports whether the query selects a field on the
// connection that can only be resolved with a total count.
func wantsTotalCount(info graphql.ResolveInfo) bool {
	for _, field := range info.FieldASTs {
		if selects(field.SelectionSet, info.Fragments, "totalCount", "pageCursors") {
			return true
		}
	}
	return false
}

func selects(set *ast.SelectionSet, fragments map[string]ast.Definition, names ...string) bool {
	if set == nil {
		return false
	}

	for _, selection := range set.Selections {
		switch s := selection.(type) {
		case *ast.Field:
			if s.Name != nil && lo.Contains(names, s.Name.Value) {
				return true
			}
		case *ast.InlineFragment:
			if selects(s.SelectionSet, fragments, names...) {
				return true
			}
		case *ast.FragmentSpread:
			definition, ok := fragments[s.Name.Value].(*ast.FragmentDefinition)
			if !ok {
				// Unknown fragment, err on the side of fetching the total.
				return true
			}
			if selects(definition.SelectionSet, fragments, names...) {
				return true
			}
		}
	}

	return false
}
