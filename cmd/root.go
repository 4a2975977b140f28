package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/teamkeel/graphgate/config"
)

var flagConfigFile string

var rootCmd = &cobra.Command{
	Use:           "graphgate",
	Short:         "Inspect graphgate cursors and pagination",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("Error", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	c, err := config.Load(flagConfigFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return c, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigFile, "config", "", "path to a graphgate.yaml config file")
}
