package server

import (
	"github.com/mfeehan/vitals/internal/logger"
	"github.com/mfeehan/vitals/internal/metrics"
	"github.com/mfeehan/vitals/pkg/vitals"
)

// seedDemo populates a fresh install with a plausible week of data so the
// dashboard isn't empty on first visit. The hasDemo flag keeps it from
// running twice.
func (s *Server) seedDemo() {
	tracker := metrics.NewTracker(s.store, "anonymous")
	if tracker.HasDemo() {
		return
	}

	tracker.SetStepsWeek([]int{5200, 6100, 4800, 7300, 6900, 5600, 6400})
	if err := tracker.SetSteps(2400); err != nil {
		logger.Warn("demo seed skipped steps", "error", err)
	}
	if err := tracker.SetLastSleep(6.2); err != nil {
		logger.Warn("demo seed skipped sleep", "error", err)
	}
	tracker.AddWater(3)
	if _, err := tracker.LogMood(vitals.MoodGood, "Feeling settled after a morning walk"); err != nil {
		logger.Warn("demo seed skipped mood", "error", err)
	}
	tracker.SetChecklistItem("stretch", true)
	tracker.SetChecklistItem("meditate", false)
	tracker.SetChecklistItem("walk", false)
	tracker.LogActivity("Demo data seeded")
	tracker.MarkDemo()

	logger.Info("seeded demo data")
}
