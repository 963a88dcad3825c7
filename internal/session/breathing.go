package session

import "time"

// Breathing pacer phases. The cycle is 4s inhale, 2s hold, 6s exhale and
// repeats; the phase is a pure function of elapsed session time.
const (
	PhaseInhale = "inhale"
	PhaseHold   = "hold"
	PhaseExhale = "exhale"

	inhaleLen = 4 * time.Second
	holdLen   = 2 * time.Second
	exhaleLen = 6 * time.Second
	cycleLen  = inhaleLen + holdLen + exhaleLen
)

// BreathingPhase returns the pacer phase at the given elapsed time and how
// long that phase has left.
func BreathingPhase(elapsed time.Duration) (phase string, remaining time.Duration) {
	if elapsed < 0 {
		elapsed = 0
	}
	pos := elapsed % cycleLen
	switch {
	case pos < inhaleLen:
		return PhaseInhale, inhaleLen - pos
	case pos < inhaleLen+holdLen:
		return PhaseHold, inhaleLen + holdLen - pos
	default:
		return PhaseExhale, cycleLen - pos
	}
}
