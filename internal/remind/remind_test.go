package remind

import (
	"context"
	"errors"
	"testing"

	"github.com/mfeehan/vitals/pkg/vitals"
)

func TestRun_WaterBehind(t *testing.T) {
	q := &mockQuerier{
		snapshot:   vitals.Snapshot{WaterGlasses: 2},
		advisories: []vitals.Advisory{{Category: vitals.CategoryHydration, Text: "drink"}},
		subs:       []string{"pat@example.com"},
	}
	n := &mockNotifier{}

	if err := Run(context.Background(), q, n); err != nil {
		t.Fatal(err)
	}
	if n.waterCalls != 1 || n.waterAt != 2 {
		t.Fatalf("water reminder: calls=%d at=%d, want 1 call at 2 glasses", n.waterCalls, n.waterAt)
	}
	if n.digestCalls != 1 {
		t.Fatalf("digest calls = %d, want 1", n.digestCalls)
	}
}

func TestRun_GoalMet_NoWaterReminder(t *testing.T) {
	q := &mockQuerier{
		snapshot: vitals.Snapshot{WaterGlasses: 8},
		subs:     []string{"pat@example.com"},
	}
	n := &mockNotifier{}

	if err := Run(context.Background(), q, n); err != nil {
		t.Fatal(err)
	}
	if n.waterCalls != 0 {
		t.Fatalf("water reminder sent at goal: calls=%d", n.waterCalls)
	}
	if n.digestCalls != 1 {
		t.Fatalf("digest calls = %d, want 1", n.digestCalls)
	}
}

func TestRun_NoSubscribers(t *testing.T) {
	q := &mockQuerier{snapshot: vitals.Snapshot{WaterGlasses: 0}}
	n := &mockNotifier{}

	if err := Run(context.Background(), q, n); err != nil {
		t.Fatal(err)
	}
	if n.waterCalls != 0 || n.digestCalls != 0 {
		t.Fatal("nothing should be sent without subscribers")
	}
}

func TestRun_QuerierError(t *testing.T) {
	q := &mockQuerier{err: errors.New("api down"), subs: []string{"x@y"}}
	n := &mockNotifier{}

	if err := Run(context.Background(), q, n); err == nil {
		t.Fatal("expected error when querier fails")
	}
}
