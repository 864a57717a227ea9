package render

import (
	"fmt"
	"strings"

	"github.com/Tyler-Odenthal/Tyler-Odenthal/internal/domain"
)

// ActivitySection renders the activity summary block: highlight
// bullets followed by the embedded chart.
func ActivitySection(s *domain.ActivityStats, chart string) string {
	lines := []string{
		"### 🎯 Activity Summary",
		"",
		fmt.Sprintf("- **%d** commits pushed", s.Commits),
		fmt.Sprintf("- **%d** pull requests opened", s.PRsOpened),
		fmt.Sprintf("- **%d** issues opened", s.IssuesOpened),
		fmt.Sprintf("- **%d** issue comments", s.IssueComments),
		fmt.Sprintf("- **%d** review comments", s.ReviewComments),
		fmt.Sprintf("- **%d** repositories contributed to", s.ReposContributed),
		"",
		chart,
	}
	return strings.Join(lines, "\n")
}

// StatsSection renders the profile badges and this month's highlights.
// A zero Profile (e.g. the fetch failed) renders all-zero badges.
func StatsSection(p domain.Profile, s *domain.ActivityStats) string {
	lines := []string{
		fmt.Sprintf("![Followers](https://img.shields.io/badge/Followers-%d-blue?style=flat-square)", p.Followers),
		fmt.Sprintf("![Public Repos](https://img.shields.io/badge/Public_Repos-%d-green?style=flat-square)", p.PublicRepos),
		// The Total Stars badge has always shown the gist count.
		fmt.Sprintf("![Total Stars](https://img.shields.io/badge/Total_Stars-%d-yellow?style=flat-square)", p.PublicGists),
		"",
		"### 📈 This Month's Highlights",
		"",
		fmt.Sprintf("- 🔨 **%d** commits", s.Commits),
		fmt.Sprintf("- 🔀 **%d** PRs opened", s.PRsOpened),
		fmt.Sprintf("- ⭐ **%d** repositories starred", s.StarsGiven),
		fmt.Sprintf("- 📦 **%d** new repositories created", s.ReposCreated),
	}
	return strings.Join(lines, "\n")
}
