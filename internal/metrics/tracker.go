package metrics

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mfeehan/vitals/internal/storage"
	"github.com/mfeehan/vitals/pkg/vitals"
)

// Metric key catalog. These are the literal names under which values live in
// the store; everything else in the system goes through the typed accessors
// below.
const (
	KeySteps      = "stepsToday"
	KeySleep      = "lastSleep"
	KeyWater      = "waterCount"
	KeyMoodLogs   = "moodLogs"
	KeyChallenge  = "challengeHydration"
	KeyRecentLogs = "recentLogs"
	KeySubscribe  = "subscribers"
	KeyHasDemo    = "hasDemo"
	KeyStepsWeek  = "stepsWeek"

	checklistPrefix = "check_"
)

const (
	// Sentinel sleep value reported before the user has logged any sleep.
	defaultSleepHours = 6.2

	waterGoalGlasses = 8

	// One week of full hydration days.
	challengeGoalGlasses = 56

	activityLogCap = 50
	moodLogCap     = 100
)

var (
	ErrInvalidEmail        = errors.New("email address must contain a user and a domain")
	ErrDuplicateSubscriber = errors.New("email is already subscribed")
	ErrInvalidMood         = errors.New("unknown mood")
	ErrNegativeValue       = errors.New("value must not be negative")
)

// Tracker is the typed facade over the raw metrics store for one user. All
// clamping, eviction and dedup rules live here; the store itself is a dumb
// key-value layer.
type Tracker struct {
	store  storage.Store
	userID string
}

func NewTracker(store storage.Store, userID string) *Tracker {
	return &Tracker{store: store, userID: userID}
}

func (t *Tracker) StepsToday() int {
	steps := 0
	t.store.Get(t.userID, KeySteps, &steps)
	return steps
}

func (t *Tracker) SetSteps(n int) error {
	if n < 0 {
		return fmt.Errorf("steps: %w", ErrNegativeValue)
	}
	t.store.Set(t.userID, KeySteps, n)
	return nil
}

func (t *Tracker) AddSteps(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("steps: %w", ErrNegativeValue)
	}
	total := t.StepsToday() + n
	t.store.Set(t.userID, KeySteps, total)
	return total, nil
}

func (t *Tracker) LastSleep() float64 {
	hours := defaultSleepHours
	t.store.Get(t.userID, KeySleep, &hours)
	return hours
}

func (t *Tracker) SetLastSleep(hours float64) error {
	if hours < 0 {
		return fmt.Errorf("sleep hours: %w", ErrNegativeValue)
	}
	t.store.Set(t.userID, KeySleep, hours)
	return nil
}

func (t *Tracker) WaterCount() int {
	water := 0
	t.store.Get(t.userID, KeyWater, &water)
	return clampWater(water)
}

// AddWater adjusts today's glass count by delta and returns the new count,
// clamped to [0, waterGoalGlasses].
func (t *Tracker) AddWater(delta int) int {
	water := clampWater(t.WaterCount() + delta)
	t.store.Set(t.userID, KeyWater, water)
	return water
}

func clampWater(n int) int {
	if n < 0 {
		return 0
	}
	if n > waterGoalGlasses {
		return waterGoalGlasses
	}
	return n
}

func (t *Tracker) MoodEntries() []vitals.MoodEntry {
	var entries []vitals.MoodEntry
	t.store.Get(t.userID, KeyMoodLogs, &entries)
	return entries
}

// LogMood appends a mood entry stamped now. The log is bounded: once it
// holds moodLogCap entries the oldest are evicted.
func (t *Tracker) LogMood(mood vitals.Mood, note string) (vitals.MoodEntry, error) {
	if !vitals.ValidMood(mood) {
		return vitals.MoodEntry{}, fmt.Errorf("%w: %q", ErrInvalidMood, mood)
	}
	entry := vitals.MoodEntry{
		Mood: mood,
		Note: note,
		When: time.Now().Unix(),
	}
	entries := append(t.MoodEntries(), entry)
	if len(entries) > moodLogCap {
		entries = entries[len(entries)-moodLogCap:]
	}
	t.store.Set(t.userID, KeyMoodLogs, entries)
	return entry, nil
}

func (t *Tracker) ChecklistItem(id string) bool {
	done := false
	t.store.Get(t.userID, checklistPrefix+id, &done)
	return done
}

func (t *Tracker) SetChecklistItem(id string, done bool) {
	t.store.Set(t.userID, checklistPrefix+id, done)
}

// Checklist returns every checklist item the user has ever touched.
func (t *Tracker) Checklist() map[string]bool {
	out := map[string]bool{}
	for _, key := range t.store.Keys(t.userID) {
		if id, ok := strings.CutPrefix(key, checklistPrefix); ok {
			done := false
			t.store.Get(t.userID, key, &done)
			out[id] = done
		}
	}
	return out
}

// ClearChecklist resets every known item to false. Items stay known so the
// list renders the same after a clear.
func (t *Tracker) ClearChecklist() {
	for id := range t.Checklist() {
		t.SetChecklistItem(id, false)
	}
}

func (t *Tracker) Challenge() vitals.ChallengeState {
	glasses := -1
	joined := t.store.Get(t.userID, KeyChallenge, &glasses)
	if !joined || glasses < 0 {
		return vitals.ChallengeState{Goal: challengeGoalGlasses}
	}
	pct := float64(glasses) / float64(challengeGoalGlasses)
	if pct > 1 {
		pct = 1
	}
	return vitals.ChallengeState{
		Joined:  true,
		Glasses: glasses,
		Goal:    challengeGoalGlasses,
		Percent: pct,
	}
}

// JoinChallenge enrolls the user at zero glasses. Joining again never resets
// progress.
func (t *Tracker) JoinChallenge() vitals.ChallengeState {
	if st := t.Challenge(); st.Joined {
		return st
	}
	t.store.Set(t.userID, KeyChallenge, 0)
	return t.Challenge()
}

// LogGlass increments challenge progress. The counter only ever grows.
func (t *Tracker) LogGlass() vitals.ChallengeState {
	st := t.JoinChallenge()
	t.store.Set(t.userID, KeyChallenge, st.Glasses+1)
	return t.Challenge()
}

// LogActivity appends a timestamped line to the recent-activity feed,
// evicting the oldest entries past the cap.
func (t *Tracker) LogActivity(text string) {
	var entries []vitals.ActivityEntry
	t.store.Get(t.userID, KeyRecentLogs, &entries)
	entries = append(entries, vitals.ActivityEntry{
		TimeStamp: time.Now().Unix(),
		Text:      text,
	})
	if len(entries) > activityLogCap {
		entries = entries[len(entries)-activityLogCap:]
	}
	t.store.Set(t.userID, KeyRecentLogs, entries)
}

// RecentActivity returns the retained entries newest-first.
func (t *Tracker) RecentActivity() []vitals.ActivityEntry {
	var entries []vitals.ActivityEntry
	t.store.Get(t.userID, KeyRecentLogs, &entries)
	out := make([]vitals.ActivityEntry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		out = append(out, entries[i])
	}
	return out
}

func (t *Tracker) Subscribers() []string {
	var subs []string
	t.store.Get(t.userID, KeySubscribe, &subs)
	return subs
}

// Subscribe adds an email to the reminder list. Duplicates are rejected
// case-insensitively without touching the stored list.
func (t *Tracker) Subscribe(email string) error {
	if !validEmail(email) {
		return ErrInvalidEmail
	}
	subs := t.Subscribers()
	for _, s := range subs {
		if strings.EqualFold(s, email) {
			return ErrDuplicateSubscriber
		}
	}
	t.store.Set(t.userID, KeySubscribe, append(subs, email))
	return nil
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

func (t *Tracker) HasDemo() bool {
	has := false
	t.store.Get(t.userID, KeyHasDemo, &has)
	return has
}

func (t *Tracker) MarkDemo() {
	t.store.Set(t.userID, KeyHasDemo, true)
}

func (t *Tracker) StepsWeek() []int {
	var week []int
	if !t.store.Get(t.userID, KeyStepsWeek, &week) || len(week) != 7 {
		return make([]int, 7)
	}
	return week
}

func (t *Tracker) SetStepsWeek(week []int) {
	t.store.Set(t.userID, KeyStepsWeek, week)
}

// Snapshot reads the four insight inputs in one place.
func (t *Tracker) Snapshot() vitals.Snapshot {
	return vitals.Snapshot{
		SleepHours:     t.LastSleep(),
		WaterGlasses:   t.WaterCount(),
		MoodEntryCount: len(t.MoodEntries()),
		StepsToday:     t.StepsToday(),
	}
}
