package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	q "github.com/teamkeel/graphgate/query"
)

var (
	flagPage   int
	flagSize   int
	flagTotal  int
	flagRadius int
	flagJSON   bool
)

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "Show the numbered page cursors for a page of a result set",
	RunE: func(cmd *cobra.Command, args []string) error {
		radius := flagRadius
		if !cmd.Flags().Changed("radius") {
			c, err := loadConfig()
			if err != nil {
				return err
			}
			radius = c.Pagination.WindowRadius
		}

		cursors, err := q.PageCursorWindow{Radius: radius}.Build(flagPage, flagSize, flagTotal)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(cmd.OutOrStdout(), cursors)
		}

		fmt.Fprintln(cmd.OutOrStdout(), renderPageCursors(cursors))
		printSuccess(cmd.OutOrStdout(), fmt.Sprintf("%d items, %d per page", flagTotal, flagSize))
		return nil
	},
}

// renderPageCursors draws the cursors the way a numbered pagination control
// would: « 1 … 3 4 [5] 6 7 … 20 »
func renderPageCursors(cursors q.PageCursors) string {
	parts := []string{}

	if cursors.Previous != nil {
		parts = append(parts, "«")
	}
	if cursors.First != nil {
		parts = append(parts, strconv.Itoa(cursors.First.Page))
		if cursors.First.Page+1 < cursors.Around[0].Page {
			parts = append(parts, "…")
		}
	}
	for _, c := range cursors.Around {
		label := strconv.Itoa(c.Page)
		if c.IsCurrent {
			label = currentStyle.Render("[" + label + "]")
		}
		parts = append(parts, label)
	}
	if cursors.Last != nil {
		if cursors.Around[len(cursors.Around)-1].Page+1 < cursors.Last.Page {
			parts = append(parts, "…")
		}
		parts = append(parts, strconv.Itoa(cursors.Last.Page))
	}
	if cursors.Next != nil {
		parts = append(parts, "»")
	}

	return strings.Join(parts, " ")
}

func init() {
	pagesCmd.Flags().IntVar(&flagPage, "page", 1, "current page, starting at 1")
	pagesCmd.Flags().IntVar(&flagSize, "size", 10, "items per page")
	pagesCmd.Flags().IntVar(&flagTotal, "total", 0, "total number of items")
	pagesCmd.Flags().IntVar(&flagRadius, "radius", q.DefaultWindowRadius, "pages shown either side of the current page")
	pagesCmd.Flags().BoolVar(&flagJSON, "json", false, "print the cursors as JSON")
	rootCmd.AddCommand(pagesCmd)
}
