package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Tyler-Odenthal/Tyler-Odenthal/internal/domain"
)

func TestActivitySection(t *testing.T) {
	stats := &domain.ActivityStats{
		Commits:          12,
		PRsOpened:        3,
		IssuesOpened:     2,
		IssueComments:    5,
		ReviewComments:   4,
		ReposContributed: 6,
	}

	out := ActivitySection(stats, "CHART")

	assert.Contains(t, out, "### 🎯 Activity Summary")
	assert.Contains(t, out, "- **12** commits pushed")
	assert.Contains(t, out, "- **3** pull requests opened")
	assert.Contains(t, out, "- **2** issues opened")
	assert.Contains(t, out, "- **5** issue comments")
	assert.Contains(t, out, "- **4** review comments")
	assert.Contains(t, out, "- **6** repositories contributed to")
	// The chart sits at the end of the section.
	assert.True(t, strings.HasSuffix(out, "CHART"))
}

func TestStatsSection(t *testing.T) {
	testCases := []struct {
		name     string
		profile  domain.Profile
		stats    *domain.ActivityStats
		expected []string
	}{
		{
			name:    "profile figures become badges and highlights carry the recent stats",
			profile: domain.Profile{Followers: 42, PublicRepos: 7, PublicGists: 3},
			stats:   &domain.ActivityStats{Commits: 12, PRsOpened: 3, StarsGiven: 2, ReposCreated: 1},
			expected: []string{
				"![Followers](https://img.shields.io/badge/Followers-42-blue?style=flat-square)",
				"![Public Repos](https://img.shields.io/badge/Public_Repos-7-green?style=flat-square)",
				"![Total Stars](https://img.shields.io/badge/Total_Stars-3-yellow?style=flat-square)",
				"### 📈 This Month's Highlights",
				"- 🔨 **12** commits",
				"- 🔀 **3** PRs opened",
				"- ⭐ **2** repositories starred",
				"- 📦 **1** new repositories created",
			},
		},
		{
			name:    "zero profile renders all-zero badges",
			profile: domain.Profile{},
			stats:   &domain.ActivityStats{},
			expected: []string{
				"![Followers](https://img.shields.io/badge/Followers-0-blue?style=flat-square)",
				"![Public Repos](https://img.shields.io/badge/Public_Repos-0-green?style=flat-square)",
				"![Total Stars](https://img.shields.io/badge/Total_Stars-0-yellow?style=flat-square)",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := StatsSection(tc.profile, tc.stats)
			for _, want := range tc.expected {
				assert.Contains(t, out, want)
			}
		})
	}
}
