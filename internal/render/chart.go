// Package render turns the aggregated stats into the markdown blocks
// embedded in the README.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/montanaflynn/stats"
)

const (
	chartDays   = 30
	maxBarWidth = 20

	barFill       = "█"
	sepGlyph      = "│"
	noActivityMsg = "No activity in the last 30 days"
)

// Chart renders the per-day counts as a fenced text bar chart covering
// the trailing chartDays calendar days, oldest first. Bar lengths are
// scaled so the busiest day fills maxBarWidth cells; a day absent from
// the map counts as zero. An entirely empty map yields a fixed
// no-activity message instead of an empty chart.
func Chart(eventsByDay map[string]int, now time.Time) string {
	if len(eventsByDay) == 0 {
		return noActivityMsg
	}

	counts := make([]float64, 0, len(eventsByDay))
	for _, c := range eventsByDay {
		counts = append(counts, float64(c))
	}
	maxEvents, err := stats.Max(counts)
	if err != nil {
		maxEvents = 0
	}

	var b strings.Builder
	b.WriteString("```\n")
	b.WriteString("Activity over the last 30 days:\n\n")

	for i := chartDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		count := eventsByDay[day.Format("2006-01-02")]

		barLen := 0
		if maxEvents > 0 {
			barLen = int(float64(count) / maxEvents * maxBarWidth)
		}
		fmt.Fprintf(&b, "%s %s%s %d\n",
			day.Format("01/02"), sepGlyph, strings.Repeat(barFill, barLen), count)
	}

	b.WriteString("```")
	return b.String()
}
