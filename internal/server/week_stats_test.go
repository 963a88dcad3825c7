package server

import (
	"testing"

	"github.com/mfeehan/vitals/internal/metrics"
	"github.com/mfeehan/vitals/internal/storage/memory"
)

func TestComputeWeekStats(t *testing.T) {
	stats := computeWeekStats([]int{1000, 2000, 3000, 4000, 5000, 6000, 7000})
	if stats.Average != 4000 {
		t.Errorf("average = %v, want 4000", stats.Average)
	}
	if stats.Best != 7000 {
		t.Errorf("best = %d, want 7000", stats.Best)
	}

	empty := computeWeekStats(nil)
	if empty.Average != 0 || empty.Best != 0 {
		t.Errorf("empty series should produce zero stats, got %+v", empty)
	}
}

func TestWalkStepsWeek(t *testing.T) {
	tracker := metrics.NewTracker(memory.New(), "testuser")
	tracker.SetStepsWeek([]int{0, 0, 0, 0, 0, 0, 50})

	for i := 0; i < 100; i++ {
		walkStepsWeek(tracker)
		week := tracker.StepsWeek()
		if len(week) != 7 {
			t.Fatalf("walk changed series shape: %v", week)
		}
		if week[6] < 0 {
			t.Fatalf("walk went negative: %v", week)
		}
		for d := 0; d < 6; d++ {
			if week[d] != 0 {
				t.Fatalf("walk should only touch the last day, got %v", week)
			}
		}
	}
}
