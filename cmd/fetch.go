package cmd

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
	"github.com/teamkeel/graphgate/loaders"
	q "github.com/teamkeel/graphgate/query"
	"github.com/teamkeel/graphgate/runtime"
	"github.com/teamkeel/graphgate/runtime/actions"
)

var (
	flagFetchURL    string
	flagFetchFirst  int
	flagFetchLast   int
	flagFetchAfter  string
	flagFetchBefore string
	flagFetchTotal  bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch one page from the backend and print it as a connection",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig()
		if err != nil {
			return err
		}

		endpoint := c.Backend.URL
		if cmd.Flags().Changed("url") {
			endpoint = flagFetchURL
		}
		if endpoint == "" {
			return errors.New("no backend url configured, set backend.url or pass --url")
		}

		ctx := cmd.Context()
		provider, err := runtime.NewTracerProvider(ctx)
		if err != nil {
			return err
		}
		defer provider.Shutdown(ctx)

		connArgs := map[string]any{}
		if cmd.Flags().Changed("first") {
			connArgs["first"] = flagFetchFirst
		}
		if cmd.Flags().Changed("last") {
			connArgs["last"] = flagFetchLast
		}
		if flagFetchAfter != "" {
			connArgs["after"] = flagFetchAfter
		}
		if flagFetchBefore != "" {
			connArgs["before"] = flagFetchBefore
		}

		timeout := c.Backend.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		loader := loaders.NewREST[map[string]any](endpoint, timeout)

		conn, err := actions.Paginate(ctx, connArgs, flagFetchTotal, c.Options(), loader.Fetch)
		if err != nil {
			return err
		}

		return printJSON(cmd.OutOrStdout(), connectionOutput(conn))
	},
}

func connectionOutput[T any](conn q.Connection[T]) map[string]any {
	edges := make([]map[string]any, 0, len(conn.Edges))
	for _, e := range conn.Edges {
		edges = append(edges, map[string]any{
			"cursor": e.Cursor,
			"node":   e.Node,
		})
	}
	return map[string]any{
		"edges":       edges,
		"pageInfo":    conn.PageInfo,
		"totalCount":  conn.TotalCount,
		"pageCursors": conn.PageCursors,
	}
}

func init() {
	fetchCmd.Flags().StringVar(&flagFetchURL, "url", "", "backend list endpoint, overrides backend.url")
	fetchCmd.Flags().IntVar(&flagFetchFirst, "first", 0, "number of items after the after cursor")
	fetchCmd.Flags().IntVar(&flagFetchLast, "last", 0, "number of items before the before cursor")
	fetchCmd.Flags().StringVar(&flagFetchAfter, "after", "", "cursor to page forwards from")
	fetchCmd.Flags().StringVar(&flagFetchBefore, "before", "", "cursor to page backwards from")
	fetchCmd.Flags().BoolVar(&flagFetchTotal, "total", true, "ask the backend for the total count")
	rootCmd.AddCommand(fetchCmd)
}
