package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/teamkeel/graphgate/runtime"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the graphgate version",
	Run: func(cmd *cobra.Command, args []string) {
		version := runtime.GetVersion()
		if version == "" {
			version = "dev"
		}
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
