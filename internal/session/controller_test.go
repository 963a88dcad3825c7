package session

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestStartStop_Idempotent(t *testing.T) {
	c := NewController()
	c.Register("ticker", time.Hour, func() {})

	if !c.Start("ticker") {
		t.Fatal("first Start should succeed")
	}
	if c.Start("ticker") {
		t.Fatal("second Start should be a no-op")
	}
	if !c.IsRunning("ticker") {
		t.Fatal("task should report running")
	}

	if !c.Stop("ticker") {
		t.Fatal("first Stop should succeed")
	}
	if c.Stop("ticker") {
		t.Fatal("second Stop should be a no-op")
	}
	if c.IsRunning("ticker") {
		t.Fatal("task should report stopped")
	}
}

func TestStart_UnknownTimer(t *testing.T) {
	c := NewController()
	if c.Start("nope") {
		t.Fatal("starting an unregistered timer should be a no-op")
	}
	if c.Stop("nope") {
		t.Fatal("stopping an unregistered timer should be a no-op")
	}
}

func TestTaskFires(t *testing.T) {
	c := NewController()
	var fired atomic.Int32
	c.Register("fast", 5*time.Millisecond, func() { fired.Add(1) })

	c.Start("fast")
	defer c.Stop("fast")

	deadline := time.After(2 * time.Second)
	for fired.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("task never fired")
		case <-time.After(time.Millisecond):
		}
	}
}

func TestStop_WaitsForLoopExit(t *testing.T) {
	c := NewController()
	c.Register("fast", time.Millisecond, func() {})
	c.Start("fast")
	c.Stop("fast")

	// Restart after a full stop must work.
	if !c.Start("fast") {
		t.Fatal("restart after stop should succeed")
	}
	c.StopAll()
	if c.IsRunning("fast") {
		t.Fatal("StopAll left a task running")
	}
}

func TestHeartbeat_StaysBounded(t *testing.T) {
	h := NewHeartbeat()
	if h.BPM() != restingBPM {
		t.Fatalf("initial bpm = %d, want %d", h.BPM(), restingBPM)
	}
	for i := 0; i < 1000; i++ {
		h.Tick()
		if bpm := h.BPM(); bpm < minBPM || bpm > maxBPM {
			t.Fatalf("bpm %d walked out of [%d, %d]", bpm, minBPM, maxBPM)
		}
	}
}

func TestBreathingPhase(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    string
	}{
		{0, PhaseInhale},
		{3 * time.Second, PhaseInhale},
		{4 * time.Second, PhaseHold},
		{5 * time.Second, PhaseHold},
		{6 * time.Second, PhaseExhale},
		{11 * time.Second, PhaseExhale},
		{12 * time.Second, PhaseInhale}, // cycle wraps
		{-time.Second, PhaseInhale},
	}
	for _, tt := range tests {
		phase, remaining := BreathingPhase(tt.elapsed)
		if phase != tt.want {
			t.Errorf("elapsed=%v: got %s, want %s", tt.elapsed, phase, tt.want)
		}
		if remaining <= 0 || remaining > exhaleLen {
			t.Errorf("elapsed=%v: remaining %v out of range", tt.elapsed, remaining)
		}
	}
}
