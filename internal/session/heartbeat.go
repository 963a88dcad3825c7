package session

import (
	"math/rand/v2"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var heartbeatGauge = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "vitals_heartbeat_bpm",
	Help: "Current simulated heartbeat readout in beats per minute",
})

const (
	restingBPM = 72
	minBPM     = 55
	maxBPM     = 110
)

// Heartbeat is the simulated pulse readout: a bounded random walk around a
// resting rate. There is no sensor behind it.
type Heartbeat struct {
	mu  sync.Mutex
	bpm int
}

func NewHeartbeat() *Heartbeat {
	return &Heartbeat{bpm: restingBPM}
}

// Tick advances the walk one step.
func (h *Heartbeat) Tick() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.bpm += rand.IntN(7) - 3
	if h.bpm < minBPM {
		h.bpm = minBPM
	}
	if h.bpm > maxBPM {
		h.bpm = maxBPM
	}
	heartbeatGauge.Set(float64(h.bpm))
}

func (h *Heartbeat) BPM() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.bpm
}
