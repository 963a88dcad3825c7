package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mfeehan/vitals/internal/body"
	"github.com/mfeehan/vitals/internal/insight"
	"github.com/mfeehan/vitals/internal/logger"
	"github.com/mfeehan/vitals/internal/metrics"
	"github.com/mfeehan/vitals/internal/session"
	"github.com/mfeehan/vitals/pkg/versioninfo"
	"github.com/mfeehan/vitals/pkg/vitals"

	"github.com/go-chi/chi/v5"
)

func (s *Server) getVersionInfo(w http.ResponseWriter, _ *http.Request) {
	info := versioninfo.VersionInfo{
		Version:   versioninfo.Version,
		BuildDate: versioninfo.BuildDate,
	}
	if err := writeJSON(w, http.StatusOK, info); err != nil {
		logger.Error("Failed to serialize version info response", "error", err)
		http.Error(w, `{"error":"failed to serialize version info"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) getDashboard(w http.ResponseWriter, r *http.Request) {
	tracker := s.tracker(r)
	snap := tracker.Snapshot()
	phase, remaining := session.BreathingPhase(time.Since(s.startedAt))

	resp := DashboardResponse{
		Snapshot:     snap,
		Advisories:   insight.Evaluate(snap),
		Challenge:    tracker.Challenge(),
		WeekStats:    computeWeekStats(tracker.StepsWeek()),
		HeartbeatBPM: s.heartbeat.BPM(),
		Breathing: BreathingState{
			Phase:       phase,
			RemainingMS: remaining.Milliseconds(),
		},
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		logger.Error("Failed to serialize dashboard response", "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
	}
}

func (s *Server) getInsights(w http.ResponseWriter, r *http.Request) {
	tracker := s.tracker(r)
	advisories := s.refreshInsights(tracker, userIDFromContext(s.cfg.AuthEnabled, r))
	if err := writeJSON(w, http.StatusOK, InsightsResponse{Advisories: advisories}); err != nil {
		logger.Error("Failed to serialize insights response", "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
	}
}

// refreshInsights evaluates the rule table and keeps the gauge current.
func (s *Server) refreshInsights(tracker *metrics.Tracker, userID string) []vitals.Advisory {
	advisories := insight.Evaluate(tracker.Snapshot())
	advisoriesGauge.WithLabelValues(userID).Set(float64(len(advisories)))
	return advisories
}

func (s *Server) getSteps(w http.ResponseWriter, r *http.Request) {
	writeOrLog(w, StepsResponse{Steps: s.tracker(r).StepsToday()})
}

func (s *Server) addSteps(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}
	tracker := s.tracker(r)
	total, err := tracker.AddSteps(req.Count)
	if err != nil {
		http.Error(w, fmt.Sprintf(`{"error":"%s"}`, err.Error()), http.StatusBadRequest)
		return
	}
	tracker.LogActivity(fmt.Sprintf("Logged %d steps", req.Count))
	writeOrLog(w, StepsResponse{Steps: total})
}

func (s *Server) setSteps(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}
	tracker := s.tracker(r)
	if err := tracker.SetSteps(req.Count); err != nil {
		http.Error(w, fmt.Sprintf(`{"error":"%s"}`, err.Error()), http.StatusBadRequest)
		return
	}
	tracker.LogActivity(fmt.Sprintf("Set steps to %d", req.Count))
	writeOrLog(w, StepsResponse{Steps: req.Count})
}

func (s *Server) getSleep(w http.ResponseWriter, r *http.Request) {
	writeOrLog(w, SleepResponse{Hours: s.tracker(r).LastSleep()})
}

func (s *Server) setSleep(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Hours float64 `json:"hours"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}
	tracker := s.tracker(r)
	if err := tracker.SetLastSleep(req.Hours); err != nil {
		http.Error(w, fmt.Sprintf(`{"error":"%s"}`, err.Error()), http.StatusBadRequest)
		return
	}
	tracker.LogActivity(fmt.Sprintf("Logged %.1f hours of sleep", req.Hours))
	writeOrLog(w, SleepResponse{Hours: req.Hours})
}

func (s *Server) getWater(w http.ResponseWriter, r *http.Request) {
	writeOrLog(w, WaterResponse{Glasses: s.tracker(r).WaterCount(), Goal: 8})
}

func (s *Server) addWater(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}
	userID := userIDFromContext(s.cfg.AuthEnabled, r)
	tracker := s.tracker(r)
	glasses := tracker.AddWater(req.Delta)
	waterGlassesGauge.WithLabelValues(userID).Set(float64(glasses))
	if req.Delta > 0 {
		tracker.LogActivity("Drank a glass of water")
	}
	writeOrLog(w, WaterResponse{Glasses: glasses, Goal: 8})
}

func (s *Server) listMood(w http.ResponseWriter, r *http.Request) {
	writeOrLog(w, MoodListResponse{Entries: s.tracker(r).MoodEntries()})
}

func (s *Server) logMood(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mood vitals.Mood `json:"mood"`
		Note string      `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}
	tracker := s.tracker(r)
	entry, err := tracker.LogMood(req.Mood, req.Note)
	if err != nil {
		http.Error(w, fmt.Sprintf(`{"error":"%s"}`, err.Error()), http.StatusBadRequest)
		return
	}
	tracker.LogActivity(fmt.Sprintf("Logged mood: %s", req.Mood))
	if err := writeJSON(w, http.StatusCreated, entry); err != nil {
		logger.Error("Failed to serialize mood response", "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
	}
}

func (s *Server) getChecklist(w http.ResponseWriter, r *http.Request) {
	writeOrLog(w, ChecklistResponse{Items: s.tracker(r).Checklist()})
}

func (s *Server) setChecklistItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "item_id")
	if id == "" {
		http.Error(w, `{"error":"item id is required"}`, http.StatusBadRequest)
		return
	}
	var req struct {
		Done bool `json:"done"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}
	tracker := s.tracker(r)
	tracker.SetChecklistItem(id, req.Done)
	if req.Done {
		tracker.LogActivity(fmt.Sprintf("Checked off %s", id))
	}
	writeOrLog(w, ChecklistResponse{Items: tracker.Checklist()})
}

func (s *Server) clearChecklist(w http.ResponseWriter, r *http.Request) {
	tracker := s.tracker(r)
	tracker.ClearChecklist()
	tracker.LogActivity("Cleared the checklist")
	writeOrLog(w, ChecklistResponse{Items: tracker.Checklist()})
}

func (s *Server) getChallenge(w http.ResponseWriter, r *http.Request) {
	writeOrLog(w, s.tracker(r).Challenge())
}

func (s *Server) joinChallenge(w http.ResponseWriter, r *http.Request) {
	tracker := s.tracker(r)
	st := tracker.JoinChallenge()
	tracker.LogActivity("Joined the hydration challenge")
	writeOrLog(w, st)
}

func (s *Server) logChallengeGlass(w http.ResponseWriter, r *http.Request) {
	tracker := s.tracker(r)
	st := tracker.LogGlass()
	tracker.LogActivity("Logged a hydration challenge glass")
	writeOrLog(w, st)
}

func (s *Server) getActivity(w http.ResponseWriter, r *http.Request) {
	writeOrLog(w, ActivityResponse{Entries: s.tracker(r).RecentActivity()})
}

func (s *Server) listSubscribers(w http.ResponseWriter, r *http.Request) {
	writeOrLog(w, SubscribersResponse{Subscribers: s.tracker(r).Subscribers()})
}

func (s *Server) addSubscriber(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}
	tracker := s.tracker(r)
	err := tracker.Subscribe(req.Email)
	switch {
	case errors.Is(err, metrics.ErrDuplicateSubscriber):
		http.Error(w, `{"error":"email is already subscribed"}`, http.StatusConflict)
		return
	case errors.Is(err, metrics.ErrInvalidEmail):
		http.Error(w, `{"error":"invalid email address"}`, http.StatusBadRequest)
		return
	case err != nil:
		logger.Error("Failed to store subscriber", "error", err)
		http.Error(w, `{"error":"storage error"}`, http.StatusInternalServerError)
		return
	}
	tracker.LogActivity("Subscribed to reminders")
	if err := writeJSON(w, http.StatusCreated, SubscribersResponse{Subscribers: tracker.Subscribers()}); err != nil {
		logger.Error("Failed to serialize subscribers response", "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
	}
}

func (s *Server) bodyReport(w http.ResponseWriter, r *http.Request) {
	var req struct {
		HeightCm float64 `json:"height_cm"`
		WeightKg float64 `json:"weight_kg"`
		Activity float64 `json:"activity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}
	report, err := body.Report(req.HeightCm, req.WeightKg, req.Activity)
	if err != nil {
		http.Error(w, fmt.Sprintf(`{"error":"%s"}`, err.Error()), http.StatusBadRequest)
		return
	}
	writeOrLog(w, report)
}

func writeOrLog(w http.ResponseWriter, v any) {
	if err := writeJSON(w, http.StatusOK, v); err != nil {
		logger.Error("Failed to serialize response", "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
	}
}
