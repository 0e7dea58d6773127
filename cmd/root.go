// Package cmd wires the CLI: flag and environment resolution through
// viper, and the browse/version subcommands.
package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCmd creates the root command. Running it with no subcommand
// launches the browser.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vizbrowse",
		Short: "Browse CAD model structure in the terminal",
		Long: `vizbrowse is an interactive terminal browser for CAD model structure:
a lazily loaded assembly tree, per-node properties, and search.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd)
		},
	}

	cmd.PersistentFlags().String("model", "", "sample model to load at startup")
	cmd.PersistentFlags().Duration("select-delay", 150*time.Millisecond, "settle delay before a selection reaches the engine")
	cmd.PersistentFlags().Duration("search-delay", 250*time.Millisecond, "settle delay for search-as-you-type")
	cmd.PersistentFlags().Bool("show-ids", false, "show node IDs next to node names")

	viper.SetEnvPrefix("VIZ")
	viper.AutomaticEnv()
	viper.SetDefault("model", "")
	viper.SetDefault("select_delay", 150*time.Millisecond)
	viper.SetDefault("search_delay", 250*time.Millisecond)
	viper.SetDefault("show_ids", false)

	cmd.AddCommand(NewBrowseCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
