package vitals

// Mood is the fixed set of moods a user can log.
type Mood string

const (
	MoodGreat   Mood = "great"
	MoodGood    Mood = "good"
	MoodOkay    Mood = "okay"
	MoodLow     Mood = "low"
	MoodStressd Mood = "stressed"
)

// ValidMood reports whether m is one of the known moods.
func ValidMood(m Mood) bool {
	switch m {
	case MoodGreat, MoodGood, MoodOkay, MoodLow, MoodStressd:
		return true
	}
	return false
}

type MoodEntry struct {
	Mood Mood   `json:"mood"`
	Note string `json:"note"`
	When int64  `json:"when"`
}

type ActivityEntry struct {
	TimeStamp int64  `json:"timestamp"`
	Text      string `json:"text"`
}

// Snapshot is the insight engine's input, read from the metrics store at
// evaluation time.
type Snapshot struct {
	SleepHours     float64 `json:"sleep_hours"`
	WaterGlasses   int     `json:"water_glasses"`
	MoodEntryCount int     `json:"mood_entry_count"`
	StepsToday     int     `json:"steps_today"`
}

// AdvisoryCategory identifies which rule produced an advisory.
type AdvisoryCategory string

const (
	CategorySleep     AdvisoryCategory = "sleep"
	CategoryHydration AdvisoryCategory = "hydration"
	CategoryMood      AdvisoryCategory = "mood"
	CategorySteps     AdvisoryCategory = "steps"
)

type Advisory struct {
	Category AdvisoryCategory `json:"category"`
	Text     string           `json:"text"`
}

type ChallengeState struct {
	Joined  bool    `json:"joined"`
	Glasses int     `json:"glasses"`
	Goal    int     `json:"goal"`
	Percent float64 `json:"percent"`
}

type BodyReport struct {
	BMI           float64 `json:"bmi"`
	Category      string  `json:"category"`
	BMR           float64 `json:"bmr"`
	DailyCalories int     `json:"daily_calories"`
}

type WeekStats struct {
	Days    []int   `json:"days"`
	Average float64 `json:"average"`
	Best    int     `json:"best"`
}
