package runtime

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamkeel/graphgate/loaders"
	q "github.com/teamkeel/graphgate/query"
	"github.com/teamkeel/graphgate/runtime/actions"
	gql "github.com/teamkeel/graphgate/runtime/apis/graphql"
	"github.com/teamkeel/graphgate/runtime/common"
	"github.com/teamkeel/graphql"
)

func newSchema(t *testing.T) graphql.Schema {
	conversations := gql.ConnectionWithCursorInfo(gql.ConnectionConfig{
		Name:     "Conversation",
		NodeType: graphql.String,
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.Fields{
				"conversations": gql.ConnectionField(conversations, actions.DefaultOptions(), func(p graphql.ResolveParams) (q.FetchFunc[string], error) {
					return loaders.FromSlice([]string{"omg im sooo interested", "im only a little interested"}), nil
				}),
			},
		}),
	})
	require.NoError(t, err)
	return schema
}

func TestExecute(t *testing.T) {
	executor := NewExecutor(newSchema(t))

	result := executor.Execute(context.Background(), Request{
		Query:         `query Conversations($first: Int) { conversations(first: $first) { totalCount edges { node } } }`,
		OperationName: "Conversations",
		Variables:     map[string]any{"first": 10},
	})

	require.False(t, result.HasErrors())
	assert.Equal(t, map[string]any{
		"conversations": map[string]any{
			"totalCount": 2,
			"edges": []any{
				map[string]any{"node": "omg im sooo interested"},
				map[string]any{"node": "im only a little interested"},
			},
		},
	}, result.Data)
}

func TestExecuteReportsErrors(t *testing.T) {
	executor := NewExecutor(newSchema(t))

	result := executor.Execute(context.Background(), Request{
		Query: `{ conversations(first: -1) { totalCount } }`,
	})

	require.True(t, result.HasErrors())
	assert.Equal(t, common.ErrInvalidInput, result.Errors[0].Extensions["code"])
}

func TestNewTracerProviderWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	provider, err := NewTracerProvider(context.Background())
	require.NoError(t, err)
	assert.NoError(t, provider.Shutdown(context.Background()))
}
