// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "readme-stats",
	Short: "A CLI tool to refresh GitHub activity stats in a profile README.",
	Long: `readme-stats fetches a GitHub user's recent public activity, aggregates
it into summary statistics (commits, PRs, issues, stars) over the last
30 days, and rewrites the marker-delimited sections of the profile
README with a text activity chart and stat badges.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add a persistent flag for verbose output, available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
}
