package server

import (
	"math/rand/v2"

	"github.com/mfeehan/vitals/internal/metrics"
	"github.com/mfeehan/vitals/pkg/vitals"
)

func computeWeekStats(days []int) vitals.WeekStats {
	stats := vitals.WeekStats{Days: days}
	if len(days) == 0 {
		return stats
	}

	total := 0
	for _, d := range days {
		total += d
		if d > stats.Best {
			stats.Best = d
		}
	}
	stats.Average = float64(total) / float64(len(days))
	return stats
}

// walkStepsWeek nudges the most recent day of the chart series, simulating
// live data for the dashboard chart.
func walkStepsWeek(tracker *metrics.Tracker) {
	week := tracker.StepsWeek()
	last := len(week) - 1
	week[last] += rand.IntN(401) - 100
	if week[last] < 0 {
		week[last] = 0
	}
	tracker.SetStepsWeek(week)
}
