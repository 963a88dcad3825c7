package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/mfeehan/vitals/internal/config"
	"github.com/mfeehan/vitals/internal/logger"
	"github.com/mfeehan/vitals/internal/metrics"
	"github.com/mfeehan/vitals/internal/notify"
	"github.com/mfeehan/vitals/internal/session"
	"github.com/mfeehan/vitals/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/securecookie"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Timer names owned by the server's session controller.
const (
	timerHeartbeat     = "heartbeat"
	timerChartWalk     = "chart-walk"
	timerInsights      = "insight-refresh"
	timerWaterReminder = "water-reminder"
)

type Server struct {
	store    storage.Store
	cfg      *config.Config
	notifier notify.Notifier

	timers    *session.Controller
	heartbeat *session.Heartbeat
	startedAt time.Time

	authProviders map[string]*AuthProvider
	sessionCookie *securecookie.SecureCookie
}

func New(store storage.Store, cfg *config.Config, notifier notify.Notifier) *Server {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &Server{
		store:     store,
		cfg:       cfg,
		notifier:  notifier,
		timers:    session.NewController(),
		heartbeat: session.NewHeartbeat(),
		startedAt: time.Now(),
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(v)
}

// tracker returns the typed metrics facade for the request's user.
func (s *Server) tracker(r *http.Request) *metrics.Tracker {
	return metrics.NewTracker(s.store, userIDFromContext(s.cfg.AuthEnabled, r))
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(metricsMiddleware)

	r.Get("/version", s.getVersionInfo)
	r.Handle("/metrics", promhttp.Handler())

	if s.cfg.AuthEnabled {
		r.Route("/auth", func(r chi.Router) {
			r.Get("/login", s.simpleLogin)
			r.Get("/login/{id}", s.login)
			r.Get("/callback/{id}", s.callback)
			r.Post("/logout", s.logout)
			r.Get("/token", s.getAPIToken)
		})
	}

	r.Group(func(r chi.Router) {
		if s.cfg.AuthEnabled {
			r.Use(s.authMiddleware)
			r.Post("/auth/apikeys", s.createAPIKey)
		}

		r.Get("/dashboard", s.getDashboard)
		r.Get("/insights", s.getInsights)

		r.Route("/steps", func(r chi.Router) {
			r.Get("/", s.getSteps)
			r.Post("/", s.addSteps)
			r.Put("/", s.setSteps)
		})
		r.Route("/sleep", func(r chi.Router) {
			r.Get("/", s.getSleep)
			r.Post("/", s.setSleep)
		})
		r.Route("/water", func(r chi.Router) {
			r.Get("/", s.getWater)
			r.Post("/", s.addWater)
		})
		r.Route("/mood", func(r chi.Router) {
			r.Get("/", s.listMood)
			r.Post("/", s.logMood)
		})
		r.Route("/checklist", func(r chi.Router) {
			r.Get("/", s.getChecklist)
			r.Put("/{item_id}", s.setChecklistItem)
			r.Delete("/", s.clearChecklist)
		})
		r.Route("/challenge/hydration", func(r chi.Router) {
			r.Get("/", s.getChallenge)
			r.Post("/join", s.joinChallenge)
			r.Post("/glass", s.logChallengeGlass)
		})
		r.Get("/activity", s.getActivity)
		r.Route("/subscribers", func(r chi.Router) {
			r.Get("/", s.listSubscribers)
			r.Post("/", s.addSubscriber)
		})
		r.Post("/body/report", s.bodyReport)
	})

	return r
}

// StartTimers seeds demo data once and starts the periodic session tasks.
// It is safe to call more than once.
func (s *Server) StartTimers() {
	s.seedDemo()

	anon := metrics.NewTracker(s.store, "anonymous")

	s.timers.Register(timerHeartbeat, 2*time.Second, s.heartbeat.Tick)
	s.timers.Register(timerChartWalk, s.cfg.RefreshInterval.Std(), func() {
		walkStepsWeek(anon)
	})
	s.timers.Register(timerInsights, s.cfg.RefreshInterval.Std(), func() {
		s.refreshInsights(anon, "anonymous")
	})
	s.timers.Register(timerWaterReminder, s.cfg.WaterReminderInterval.Std(), func() {
		s.sendWaterReminder(anon)
	})

	for _, name := range []string{timerHeartbeat, timerChartWalk, timerInsights, timerWaterReminder} {
		s.timers.Start(name)
	}
}

// StopTimers halts all periodic work, used at shutdown.
func (s *Server) StopTimers() {
	s.timers.StopAll()
}

func (s *Server) sendWaterReminder(tracker *metrics.Tracker) {
	subs := tracker.Subscribers()
	if len(subs) == 0 {
		return
	}
	glasses := tracker.WaterCount()
	if glasses >= 8 {
		return
	}
	if err := s.notifier.RemindWater(subs, glasses, 8); err != nil {
		logger.Warn("water reminder failed", "error", err)
	}
}
