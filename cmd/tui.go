package cmd

import (
	"github.com/spf13/cobra"

	"github.com/alexrivera/archfolio/internal/content"
	"github.com/alexrivera/archfolio/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the portfolio in the terminal",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		exitOnError(err)
		exitOnError(tui.Run(content.Default(), tui.Options{MenuBreakpoint: cfg.TUI.MenuBreakpoint}))
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
