// Package insight maps a metrics snapshot to a short ordered list of
// advisories through a fixed threshold table. Evaluation is pure: same
// snapshot in, same advisories out.
package insight

import (
	"github.com/mfeehan/vitals/pkg/vitals"
)

const (
	sleepShortHours = 6
	sleepGoodHours  = 7

	waterLowGlasses  = 4
	waterGoalGlasses = 8

	stepsWalkThreshold = 3000
)

// Evaluate runs every category in fixed order (sleep, hydration, mood,
// steps) and returns one advisory per category that fires. Sleep and
// hydration always fire, so the result holds 3 or 4 entries.
func Evaluate(s vitals.Snapshot) []vitals.Advisory {
	out := make([]vitals.Advisory, 0, 4)

	out = append(out, sleepAdvisory(s.SleepHours))
	out = append(out, hydrationAdvisory(s.WaterGlasses))
	if s.MoodEntryCount == 0 {
		out = append(out, vitals.Advisory{
			Category: vitals.CategoryMood,
			Text:     "No mood logged yet today. A quick check-in helps you spot patterns.",
		})
	}
	if s.StepsToday < stepsWalkThreshold {
		out = append(out, vitals.Advisory{
			Category: vitals.CategorySteps,
			Text:     "Step count is low so far. A short walk would get things moving.",
		})
	}

	return out
}

func sleepAdvisory(hours float64) vitals.Advisory {
	switch {
	case hours < sleepShortHours:
		return vitals.Advisory{
			Category: vitals.CategorySleep,
			Text:     "Last night's sleep was short. Try winding down earlier tonight.",
		}
	case hours < sleepGoodHours:
		return vitals.Advisory{
			Category: vitals.CategorySleep,
			Text:     "Sleep was slightly short of the 7 hour mark. An extra half hour would help.",
		}
	default:
		return vitals.Advisory{
			Category: vitals.CategorySleep,
			Text:     "Good sleep last night. Keep the routine going.",
		}
	}
}

func hydrationAdvisory(glasses int) vitals.Advisory {
	switch {
	case glasses < waterLowGlasses:
		return vitals.Advisory{
			Category: vitals.CategoryHydration,
			Text:     "Hydration is behind. Drink a glass of water now.",
		}
	case glasses < waterGoalGlasses:
		return vitals.Advisory{
			Category: vitals.CategoryHydration,
			Text:     "Halfway to the hydration goal. Keep sipping through the day.",
		}
	default:
		return vitals.Advisory{
			Category: vitals.CategoryHydration,
			Text:     "Hydration goal reached. Nicely done.",
		}
	}
}
