package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arendjr/phebe/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "phebe",
	Short: "Personal website server with light and dark themes",
	Long: `phebe pre-renders a small personal website in light, dark and
system-adaptive color schemes, then serves the matching variant per
request as HTML or JSON. Nothing is rendered after startup.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
