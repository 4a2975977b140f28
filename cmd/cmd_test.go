package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	q "github.com/teamkeel/graphgate/query"
	"github.com/teamkeel/graphgate/runtime"
)

func run(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCursorCommands(t *testing.T) {
	out, err := run(t, "cursor", "encode", "42")
	require.NoError(t, err)
	assert.Equal(t, string(q.EncodeCursor(42)), strings.TrimSpace(out))

	out, err = run(t, "cursor", "decode", string(q.EncodeCursor(42)))
	require.NoError(t, err)
	assert.Equal(t, "42", strings.TrimSpace(out))

	_, err = run(t, "cursor", "decode", "not-a-real-cursor")
	assert.ErrorIs(t, err, q.ErrInvalidCursor)

	_, err = run(t, "cursor", "encode", "-3")
	assert.Error(t, err)
}

func TestTranslateCommand(t *testing.T) {
	out, err := run(t, "translate", "--first", "10", "--after", string(q.EncodeCursor(19)))
	require.NoError(t, err)

	var req map[string]int
	require.NoError(t, json.Unmarshal([]byte(out), &req))
	assert.Equal(t, map[string]int{"page": 3, "size": 10, "offset": 20}, req)
}

func TestPagesCommandJSON(t *testing.T) {
	out, err := run(t, "pages", "--page", "5", "--size", "10", "--total", "200", "--radius", "2", "--json")
	require.NoError(t, err)

	var cursors q.PageCursors
	require.NoError(t, json.Unmarshal([]byte(out), &cursors))

	assert.Len(t, cursors.Around, 5)
	assert.Equal(t, 3, cursors.Around[0].Page)
	assert.Equal(t, 1, cursors.First.Page)
	assert.Equal(t, 20, cursors.Last.Page)
	assert.Equal(t, 4, cursors.Previous.Page)
	assert.Equal(t, 6, cursors.Next.Page)
}

func TestRenderPageCursors(t *testing.T) {
	cursors, err := q.BuildPageCursors(5, 10, 200)
	require.NoError(t, err)

	rendered := renderPageCursors(cursors)
	assert.True(t, strings.HasPrefix(rendered, "« 1 … 3 4 "))
	assert.True(t, strings.HasSuffix(rendered, " 6 7 … 20 »"))
	assert.Contains(t, rendered, "[5]")

	single, err := q.BuildPageCursors(1, 10, 0)
	require.NoError(t, err)
	assert.Contains(t, renderPageCursors(single), "[1]")
	assert.NotContains(t, renderPageCursors(single), "»")
}

func TestFetchCommand(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	var query map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = map[string]string{
			"page":        r.URL.Query().Get("page"),
			"size":        r.URL.Query().Get("size"),
			"total_count": r.URL.Query().Get("total_count"),
		}
		w.Header().Set("X-Total-Count", "5")
		_, _ = w.Write([]byte(`[{"id": "alert-3"}, {"id": "alert-4"}]`))
	}))
	defer server.Close()

	out, err := run(t, "fetch", "--url", server.URL, "--first", "2", "--after", string(q.EncodeCursor(1)))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"page": "2", "size": "2", "total_count": "true"}, query)

	var conn struct {
		Edges []struct {
			Cursor string         `json:"cursor"`
			Node   map[string]any `json:"node"`
		} `json:"edges"`
		PageInfo    q.PageInfo     `json:"pageInfo"`
		TotalCount  *int           `json:"totalCount"`
		PageCursors *q.PageCursors `json:"pageCursors"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &conn))

	require.Len(t, conn.Edges, 2)
	assert.Equal(t, string(q.EncodeCursor(2)), conn.Edges[0].Cursor)
	assert.Equal(t, "alert-4", conn.Edges[1].Node["id"])
	assert.True(t, conn.PageInfo.HasNextPage)
	assert.True(t, conn.PageInfo.HasPreviousPage)
	require.NotNil(t, conn.TotalCount)
	assert.Equal(t, 5, *conn.TotalCount)
	require.NotNil(t, conn.PageCursors)
	assert.Equal(t, 3, conn.PageCursors.Next.Page)
}

func TestFetchCommandRequiresURL(t *testing.T) {
	t.Setenv("GRAPHGATE_BACKEND_URL", "")
	for _, name := range []string{"url", "first", "after"} {
		flag := fetchCmd.Flags().Lookup(name)
		require.NoError(t, flag.Value.Set(flag.DefValue))
		flag.Changed = false
	}

	_, err := run(t, "fetch")
	assert.EqualError(t, err, "no backend url configured, set backend.url or pass --url")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "dev", strings.TrimSpace(out))

	runtime.Version = "1.2.3"
	t.Cleanup(func() { runtime.Version = "" })

	out, err = run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", strings.TrimSpace(out))
}
