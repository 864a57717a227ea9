// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tyler-Odenthal/Tyler-Odenthal/internal/gateway"
	"github.com/Tyler-Odenthal/Tyler-Odenthal/internal/readme"
	"github.com/Tyler-Odenthal/Tyler-Odenthal/internal/render"
	"github.com/Tyler-Odenthal/Tyler-Odenthal/internal/usecase"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Fetches recent GitHub activity and rewrites the README sections",
	Long: `Fetches the last 30 days of public activity for the configured user,
aggregates it, and replaces the activity, stats, and date sections of
the README between their marker comments.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		// Get the verbose flag from the root command to set up the logger.
		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		logger := log.New(io.Discard, "", log.LstdFlags) // Default: discard all logs.
		if verbose {
			logger.SetOutput(os.Stderr) // If verbose, log to standard error.
		}

		readmePath, _ := cmd.Flags().GetString("readme")
		token := os.Getenv("GITHUB_TOKEN")
		user := os.Getenv("GITHUB_USERNAME")
		if token == "" || user == "" {
			fmt.Println("Error: GITHUB_TOKEN and GITHUB_USERNAME must be set")
			os.Exit(1)
		}

		// Inject dependencies and run the main business logic.
		githubGateway := gateway.NewGitHubGateway(token, logger)
		aggregator := usecase.NewAggregator(githubGateway, logger, os.Stdout)

		activityStats, profile := aggregator.Aggregate(ctx, user)

		fmt.Println("Generating content...")
		now := time.Now().UTC()
		chart := render.Chart(activityStats.EventsByDay, now)
		activityContent := render.ActivitySection(activityStats, chart)
		statsContent := render.StatsSection(profile, activityStats)

		fmt.Println("Updating README...")
		sections := []readme.Section{
			{StartMarker: readme.ActivityStart, EndMarker: readme.ActivityEnd, Content: activityContent},
			{StartMarker: readme.StatsStart, EndMarker: readme.StatsEnd, Content: statsContent},
			{StartMarker: readme.DateStart, EndMarker: readme.DateEnd, Content: now.Format("2006-01-02 15:04 UTC")},
		}
		if err := readme.UpdateFile(readmePath, sections); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to update README: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("README.md updated successfully!")
		fmt.Println("Done!")
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().String("readme", "README.md", "Path to the README file to update")
}
