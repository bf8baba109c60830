package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexrivera/archfolio/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := os.Stat(cfgFile); err == nil && !initForce {
			exitOnError(fmt.Errorf("%s already exists (use --force to overwrite)", cfgFile))
		}
		exitOnError(config.DefaultConfig().Save(cfgFile))
		fmt.Fprintf(os.Stderr, "Wrote %s\n", cfgFile)
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}
