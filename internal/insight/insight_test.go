package insight

import (
	"strings"
	"testing"

	"github.com/mfeehan/vitals/pkg/vitals"
)

func advisoryFor(t *testing.T, advisories []vitals.Advisory, cat vitals.AdvisoryCategory) (vitals.Advisory, bool) {
	t.Helper()
	var found vitals.Advisory
	count := 0
	for _, a := range advisories {
		if a.Category == cat {
			found = a
			count++
		}
	}
	if count > 1 {
		t.Fatalf("category %s emitted %d advisories, want at most 1", cat, count)
	}
	return found, count == 1
}

func TestSleepBuckets(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{0, "short"},
		{5.9, "short"},
		{6, "slightly short"},
		{6.9, "slightly short"},
		{7, "Good sleep"},
		{9.5, "Good sleep"},
	}

	for _, tt := range tests {
		got := Evaluate(vitals.Snapshot{SleepHours: tt.hours})
		a, ok := advisoryFor(t, got, vitals.CategorySleep)
		if !ok {
			t.Fatalf("hours=%v: no sleep advisory emitted", tt.hours)
		}
		if !strings.Contains(a.Text, tt.want) {
			t.Errorf("hours=%v: got %q, want it to mention %q", tt.hours, a.Text, tt.want)
		}
	}
}

func TestHydrationBuckets(t *testing.T) {
	tests := []struct {
		glasses int
		want    string
	}{
		{0, "Drink a glass"},
		{3, "Drink a glass"},
		{4, "Halfway"},
		{7, "Halfway"},
		{8, "goal reached"},
		{12, "goal reached"},
	}

	for _, tt := range tests {
		got := Evaluate(vitals.Snapshot{WaterGlasses: tt.glasses})
		a, ok := advisoryFor(t, got, vitals.CategoryHydration)
		if !ok {
			t.Fatalf("glasses=%d: no hydration advisory emitted", tt.glasses)
		}
		if !strings.Contains(a.Text, tt.want) {
			t.Errorf("glasses=%d: got %q, want it to mention %q", tt.glasses, a.Text, tt.want)
		}
	}
}

func TestMoodAdvisory_OnlyWhenNoEntries(t *testing.T) {
	got := Evaluate(vitals.Snapshot{MoodEntryCount: 0})
	if _, ok := advisoryFor(t, got, vitals.CategoryMood); !ok {
		t.Fatal("expected mood advisory with zero entries")
	}

	got = Evaluate(vitals.Snapshot{MoodEntryCount: 1})
	if _, ok := advisoryFor(t, got, vitals.CategoryMood); ok {
		t.Fatal("expected no mood advisory once an entry exists")
	}
}

func TestStepsAdvisory_Threshold(t *testing.T) {
	got := Evaluate(vitals.Snapshot{StepsToday: 2999})
	if _, ok := advisoryFor(t, got, vitals.CategorySteps); !ok {
		t.Fatal("expected steps advisory below 3000")
	}

	got = Evaluate(vitals.Snapshot{StepsToday: 3000})
	if _, ok := advisoryFor(t, got, vitals.CategorySteps); ok {
		t.Fatal("expected no steps advisory at 3000")
	}
}

func TestEvaluate_CountAndOrder(t *testing.T) {
	// Everything fires: 4 advisories in fixed category order.
	got := Evaluate(vitals.Snapshot{SleepHours: 5, WaterGlasses: 1, MoodEntryCount: 0, StepsToday: 100})
	wantOrder := []vitals.AdvisoryCategory{
		vitals.CategorySleep,
		vitals.CategoryHydration,
		vitals.CategoryMood,
		vitals.CategorySteps,
	}
	if len(got) != 4 {
		t.Fatalf("got %d advisories, want 4", len(got))
	}
	for i, cat := range wantOrder {
		if got[i].Category != cat {
			t.Fatalf("position %d: got %s, want %s", i, got[i].Category, cat)
		}
	}

	// Best case: only the always-on categories remain.
	got = Evaluate(vitals.Snapshot{SleepHours: 8, WaterGlasses: 8, MoodEntryCount: 3, StepsToday: 9000})
	if len(got) != 2 {
		t.Fatalf("got %d advisories, want 2", len(got))
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	s := vitals.Snapshot{SleepHours: 6.5, WaterGlasses: 4, MoodEntryCount: 2, StepsToday: 5000}
	a := Evaluate(s)
	b := Evaluate(s)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("position %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
