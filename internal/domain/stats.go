// Package domain contains the core data structures and domain logic for the application.
package domain

import "time"

// Event is one public GitHub event, reduced to the fields the
// aggregator classifies on. Which payload fields are meaningful
// depends on Type; the rest stay at their zero values.
type Event struct {
	Type      string    `json:"type"`
	Repo      string    `json:"repo"`
	CreatedAt time.Time `json:"created_at"`

	// PushEvent: number of commits contained in the push.
	Commits int `json:"commits,omitempty"`
	// PullRequestEvent / IssuesEvent: the action that triggered the event.
	Action string `json:"action,omitempty"`
	// PullRequestEvent: whether a closed pull request was merged.
	Merged bool `json:"merged,omitempty"`
	// CreateEvent: the kind of ref that was created ("repository", "branch", "tag").
	RefType string `json:"ref_type,omitempty"`
}

// ActivityStats holds the aggregated activity counts for one user
// over the trailing window. It is the core domain entity of this
// application, fully recomputed on every run.
type ActivityStats struct {
	Commits          int            `json:"commits"`
	PRsOpened        int            `json:"prs_opened"`
	PRsMerged        int            `json:"prs_merged"`
	IssuesOpened     int            `json:"issues_opened"`
	IssueComments    int            `json:"issues_commented"`
	ReviewComments   int            `json:"review_comments"`
	ReposContributed int            `json:"repos_contributed"`
	StarsGiven       int            `json:"stars_given"`
	ReposCreated     int            `json:"repos_created"`
	EventsByDay      map[string]int `json:"events_by_day"` // keyed "YYYY-MM-DD", UTC
}

// Profile holds the public account-summary figures rendered as badges.
type Profile struct {
	Followers   int `json:"followers"`
	PublicRepos int `json:"public_repos"`
	PublicGists int `json:"public_gists"`
}
