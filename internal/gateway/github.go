// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST client.
package gateway

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"github.com/Tyler-Odenthal/Tyler-Odenthal/internal/domain"
)

const (
	// eventsPerPage is the fixed page size for the events endpoint.
	eventsPerPage = 30
	// maxEventPages caps a run at 300 events regardless of the window.
	maxEventPages = 10
	// requestTimeout bounds every API call; a hung connection fails the
	// page rather than blocking the run.
	requestTimeout = 30 * time.Second
)

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
//
// Both methods degrade instead of failing: a request error is logged
// and the data collected so far (or a zero Profile) is returned, so a
// run always proceeds to render whatever it has.
type Fetcher interface {
	FetchEvents(ctx context.Context, user string, since time.Time) []domain.Event
	FetchProfile(ctx context.Context, user string) domain.Profile
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	client *github.Client
	logger *log.Logger
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
func NewGitHubGateway(token string, logger *log.Logger) Fetcher {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Timeout:   requestTimeout,
		Transport: &oauth2.Transport{Source: ts},
	}
	return &GitHubGateway{
		client: github.NewClient(httpClient),
		logger: logger,
	}
}

// FetchEvents retrieves the user's recent public events page by page,
// oldest page last, stopping on an empty page, once the oldest event
// of a page falls before since, or after maxEventPages pages.
func (g *GitHubGateway) FetchEvents(ctx context.Context, user string, since time.Time) []domain.Event {
	g.logger.Printf("Fetching events for %s since %s...", user, since.Format(time.RFC3339))

	var events []domain.Event
	for page := 1; page <= maxEventPages; page++ {
		if page > 1 {
			g.logger.Println("  Fetching next page of events...")
		}
		opts := &github.ListOptions{Page: page, PerPage: eventsPerPage}
		raw, _, err := g.client.Activity.ListEventsPerformedByUser(ctx, user, false, opts)
		if err != nil {
			// Abandon the fetch and keep what we have; the run continues
			// with partial data.
			g.logger.Printf("Error fetching events page %d: %v", page, err)
			break
		}
		if len(raw) == 0 {
			break
		}

		for _, ev := range raw {
			events = append(events, g.convertEvent(ev))
		}

		// Pages arrive newest first, so the last event of a page is the
		// oldest seen so far. Once it predates the window there is
		// nothing left worth paging for.
		oldest := raw[len(raw)-1].GetCreatedAt().Time
		if oldest.Before(since) {
			break
		}
	}
	g.logger.Printf("Completed fetching events: %d collected.", len(events))
	return events
}

// FetchProfile retrieves the user's account summary, or a zero Profile
// if the request fails.
func (g *GitHubGateway) FetchProfile(ctx context.Context, user string) domain.Profile {
	g.logger.Printf("Fetching profile for %s...", user)
	u, _, err := g.client.Users.Get(ctx, user)
	if err != nil {
		g.logger.Printf("Error fetching profile: %v", err)
		return domain.Profile{}
	}
	return domain.Profile{
		Followers:   u.GetFollowers(),
		PublicRepos: u.GetPublicRepos(),
		PublicGists: u.GetPublicGists(),
	}
}

// convertEvent reduces a raw API event to the fields the aggregator
// needs. Payloads that fail to parse leave those fields zero; the
// event still counts toward the per-day and per-repo totals.
func (g *GitHubGateway) convertEvent(ev *github.Event) domain.Event {
	e := domain.Event{
		Type:      ev.GetType(),
		Repo:      ev.GetRepo().GetName(),
		CreatedAt: ev.GetCreatedAt().Time,
	}

	payload, err := ev.ParsePayload()
	if err != nil {
		g.logger.Printf("Skipping payload of %s event: %v", e.Type, err)
		return e
	}
	switch p := payload.(type) {
	case *github.PushEvent:
		e.Commits = len(p.Commits)
	case *github.PullRequestEvent:
		e.Action = p.GetAction()
		e.Merged = p.GetPullRequest().GetMerged()
	case *github.IssuesEvent:
		e.Action = p.GetAction()
	case *github.CreateEvent:
		e.RefType = p.GetRefType()
	}
	return e
}
