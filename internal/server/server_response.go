package server

import (
	"github.com/mfeehan/vitals/pkg/vitals"
)

type DashboardResponse struct {
	Snapshot     vitals.Snapshot       `json:"snapshot"`
	Advisories   []vitals.Advisory     `json:"advisories"`
	Challenge    vitals.ChallengeState `json:"challenge"`
	WeekStats    vitals.WeekStats      `json:"week_stats"`
	HeartbeatBPM int                   `json:"heartbeat_bpm"`
	Breathing    BreathingState        `json:"breathing"`
}

type BreathingState struct {
	Phase       string `json:"phase"`
	RemainingMS int64  `json:"remaining_ms"`
}

type InsightsResponse struct {
	Advisories []vitals.Advisory `json:"advisories"`
}

type StepsResponse struct {
	Steps int `json:"steps"`
}

type SleepResponse struct {
	Hours float64 `json:"hours"`
}

type WaterResponse struct {
	Glasses int `json:"glasses"`
	Goal    int `json:"goal"`
}

type MoodListResponse struct {
	Entries []vitals.MoodEntry `json:"entries"`
}

type ChecklistResponse struct {
	Items map[string]bool `json:"items"`
}

type ActivityResponse struct {
	Entries []vitals.ActivityEntry `json:"entries"`
}

type SubscribersResponse struct {
	Subscribers []string `json:"subscribers"`
}
