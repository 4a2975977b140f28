package cmd

import (
	"github.com/spf13/cobra"
	q "github.com/teamkeel/graphgate/query"
)

var (
	flagFirst  int
	flagLast   int
	flagAfter  string
	flagBefore string
)

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Show the backend page request for a set of connection arguments",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig()
		if err != nil {
			return err
		}

		page := q.Page{
			After:  q.Cursor(flagAfter),
			Before: q.Cursor(flagBefore),
		}
		if cmd.Flags().Changed("first") {
			page.First = &flagFirst
		}
		if cmd.Flags().Changed("last") {
			page.Last = &flagLast
		}

		req, err := q.TranslateArgs(page, c.Pagination.DefaultSize, c.Pagination.MaxSize)
		if err != nil {
			return err
		}

		return printJSON(cmd.OutOrStdout(), map[string]any{
			"page":   req.Page,
			"size":   req.Size,
			"offset": req.Offset,
		})
	},
}

func init() {
	translateCmd.Flags().IntVar(&flagFirst, "first", 0, "number of items after the after cursor")
	translateCmd.Flags().IntVar(&flagLast, "last", 0, "number of items before the before cursor")
	translateCmd.Flags().StringVar(&flagAfter, "after", "", "cursor to page forwards from")
	translateCmd.Flags().StringVar(&flagBefore, "before", "", "cursor to page backwards from")
	rootCmd.AddCommand(translateCmd)
}
