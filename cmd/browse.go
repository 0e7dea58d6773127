package cmd

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/techsoft3d/visualize-components/internal/tui"
	"github.com/techsoft3d/visualize-components/internal/tui/events"
)

// NewBrowseCmd creates the `browse` command, the explicit form of the
// default action.
func NewBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Launch the interactive model browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd)
		},
	}
}

func runBrowse(cmd *cobra.Command) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("the browser requires an interactive terminal")
	}

	cfg := resolveConfig(cmd)
	broker := events.NewBroker()
	defer broker.Clear()

	model := tui.New(cfg, broker)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running browser: %w", err)
	}
	return nil
}

// resolveConfig merges flags over environment over defaults. Flags win
// when set explicitly.
func resolveConfig(cmd *cobra.Command) tui.Config {
	cfg := tui.Config{
		Model:       viper.GetString("model"),
		SelectDelay: viper.GetDuration("select_delay"),
		SearchDelay: viper.GetDuration("search_delay"),
		ShowIDs:     viper.GetBool("show_ids"),
	}
	if cmd.Flags().Changed("model") {
		cfg.Model, _ = cmd.Flags().GetString("model")
	}
	if cmd.Flags().Changed("select-delay") {
		cfg.SelectDelay, _ = cmd.Flags().GetDuration("select-delay")
	}
	if cmd.Flags().Changed("search-delay") {
		cfg.SearchDelay, _ = cmd.Flags().GetDuration("search-delay")
	}
	if cmd.Flags().Changed("show-ids") {
		cfg.ShowIDs, _ = cmd.Flags().GetBool("show-ids")
	}
	if cfg.SelectDelay <= 0 {
		cfg.SelectDelay = 150 * time.Millisecond
	}
	if cfg.SearchDelay <= 0 {
		cfg.SearchDelay = 250 * time.Millisecond
	}
	return cfg
}
