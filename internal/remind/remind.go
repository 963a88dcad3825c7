// Package remind drives the out-of-band reminder job: it reads the current
// snapshot and advisories through the API and emails subscribers.
package remind

import (
	"context"
	"fmt"

	"github.com/mfeehan/vitals/internal/logger"
	"github.com/mfeehan/vitals/internal/notify"
	"github.com/mfeehan/vitals/pkg/vitals"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var remindersSent = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "vitals_reminders_sent_total",
		Help: "Reminder emails sent, by kind",
	},
	[]string{"kind"},
)

const waterGoalGlasses = 8

type Querier interface {
	GetSnapshot(ctx context.Context) (vitals.Snapshot, error)
	GetInsights(ctx context.Context) ([]vitals.Advisory, error)
	ListSubscribers(ctx context.Context) ([]string, error)
}

// Run sends a hydration reminder when the water goal is not met yet, plus
// the advisory digest. No subscribers means nothing to do.
func Run(ctx context.Context, q Querier, n notify.Notifier) error {
	subs, err := q.ListSubscribers(ctx)
	if err != nil {
		return fmt.Errorf("listing subscribers: %w", err)
	}
	if len(subs) == 0 {
		logger.Info("no subscribers, skipping reminders")
		return nil
	}

	snap, err := q.GetSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}

	if snap.WaterGlasses < waterGoalGlasses {
		if err := n.RemindWater(subs, snap.WaterGlasses, waterGoalGlasses); err != nil {
			return fmt.Errorf("sending water reminder: %w", err)
		}
		remindersSent.WithLabelValues("water").Inc()
		logger.Info("water reminder sent", "subscribers", len(subs), "glasses", snap.WaterGlasses)
	}

	advisories, err := q.GetInsights(ctx)
	if err != nil {
		return fmt.Errorf("reading insights: %w", err)
	}
	if err := n.SendDigest(subs, advisories); err != nil {
		return fmt.Errorf("sending digest: %w", err)
	}
	remindersSent.WithLabelValues("digest").Inc()
	logger.Info("digest sent", "subscribers", len(subs), "advisories", len(advisories))

	return nil
}
