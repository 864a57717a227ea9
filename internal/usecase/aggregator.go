// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/Tyler-Odenthal/Tyler-Odenthal/internal/domain"
	"github.com/Tyler-Odenthal/Tyler-Odenthal/internal/gateway"
)

// windowDays is the trailing span bounding both fetching and aggregation.
const windowDays = 30

// Aggregator is the use case for building the per-run activity stats.
// It orchestrates the fetching and summarizing of data, reporting
// progress on out as it goes.
type Aggregator struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
	out     io.Writer
}

// NewAggregator creates a new Aggregator instance.
func NewAggregator(fetcher gateway.Fetcher, logger *log.Logger, out io.Writer) *Aggregator {
	return &Aggregator{
		fetcher: fetcher,
		logger:  logger,
		out:     out,
	}
}

// Aggregate fetches the user's recent events, summarizes them over the
// trailing window, and fetches the profile, strictly in that order.
//
// The fetch cutoff and the summarize cutoff come from separate clock
// reads, so they can disagree by however long the fetch took. Both
// sides bound their own work independently; the drift is a tolerance,
// not a correctness issue.
func (a *Aggregator) Aggregate(ctx context.Context, user string) (*domain.ActivityStats, domain.Profile) {
	a.logger.Println("Usecase: Starting data aggregation...")

	fmt.Fprintln(a.out, "Fetching GitHub activity...")
	since := time.Now().UTC().AddDate(0, 0, -windowDays)
	events := a.fetcher.FetchEvents(ctx, user, since)
	fmt.Fprintf(a.out, "Found %d events\n", len(events))

	fmt.Fprintln(a.out, "Analyzing events...")
	activityStats := Summarize(events, time.Now().UTC())
	a.logger.Printf("Usecase: %.1f events/day over the window.", dailyMean(activityStats.EventsByDay))

	fmt.Fprintln(a.out, "Fetching user stats...")
	profile := a.fetcher.FetchProfile(ctx, user)

	a.logger.Println("Usecase: Aggregation complete.")
	return activityStats, profile
}

// Summarize scans the event sequence once and accumulates the
// fixed-shape activity stats. Events strictly older than the trailing
// window are ignored entirely; every in-window event counts toward the
// distinct-repo set and its calendar day (UTC), and the recognized
// types additionally bump their own counters.
func Summarize(events []domain.Event, now time.Time) *domain.ActivityStats {
	since := now.AddDate(0, 0, -windowDays)

	result := &domain.ActivityStats{
		EventsByDay: make(map[string]int),
	}
	repos := make(map[string]struct{})

	for _, ev := range events {
		if ev.CreatedAt.Before(since) {
			continue
		}

		result.EventsByDay[ev.CreatedAt.UTC().Format("2006-01-02")]++
		repos[ev.Repo] = struct{}{}

		switch ev.Type {
		case "PushEvent":
			result.Commits += ev.Commits
		case "PullRequestEvent":
			switch {
			case ev.Action == "opened":
				result.PRsOpened++
			case ev.Action == "closed" && ev.Merged:
				result.PRsMerged++
			}
		case "IssuesEvent":
			if ev.Action == "opened" {
				result.IssuesOpened++
			}
		case "IssueCommentEvent":
			result.IssueComments++
		case "PullRequestReviewCommentEvent":
			result.ReviewComments++
		case "WatchEvent":
			result.StarsGiven++
		case "CreateEvent":
			if ev.RefType == "repository" {
				result.ReposCreated++
			}
		}
	}

	result.ReposContributed = len(repos)
	return result
}

// dailyMean averages the per-day counts over the days that saw any
// activity; zero when there were none.
func dailyMean(eventsByDay map[string]int) float64 {
	if len(eventsByDay) == 0 {
		return 0
	}
	counts := make([]float64, 0, len(eventsByDay))
	for _, c := range eventsByDay {
		counts = append(counts, float64(c))
	}
	mean, err := stats.Mean(counts)
	if err != nil {
		return 0
	}
	return mean
}
