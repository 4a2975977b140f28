package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	q "github.com/teamkeel/graphgate/query"
)

var cursorCmd = &cobra.Command{
	Use:   "cursor",
	Short: "Encode and decode connection cursors",
}

var cursorEncodeCmd = &cobra.Command{
	Use:   "encode <offset>",
	Short: "Print the cursor for a zero-based offset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		offset, err := strconv.Atoi(args[0])
		if err != nil || offset < 0 {
			return fmt.Errorf("offset must be a non-negative integer, got %q", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), q.EncodeCursor(offset))
		return nil
	},
}

var cursorDecodeCmd = &cobra.Command{
	Use:   "decode <cursor>",
	Short: "Print the zero-based offset a cursor refers to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		offset, err := q.DecodeCursor(q.Cursor(args[0]))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), offset)
		return nil
	},
}

func init() {
	cursorCmd.AddCommand(cursorEncodeCmd)
	cursorCmd.AddCommand(cursorDecodeCmd)
	rootCmd.AddCommand(cursorCmd)
}
