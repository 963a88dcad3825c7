package body

import (
	"errors"
	"testing"
)

func TestBMI_KnownValues(t *testing.T) {
	tests := []struct {
		heightCm float64
		weightKg float64
		wantBMI  float64
		wantCat  string
	}{
		{175, 70, 22.9, "Normal"},
		{175, 50, 16.3, "Underweight"},
		{170, 80, 27.7, "Overweight"},
		{160, 90, 35.2, "Obese"},
	}

	for _, tt := range tests {
		got := BMI(tt.heightCm, tt.weightKg)
		if got != tt.wantBMI {
			t.Errorf("BMI(%v, %v) = %v, want %v", tt.heightCm, tt.weightKg, got, tt.wantBMI)
		}
		if cat := Category(got); cat != tt.wantCat {
			t.Errorf("Category(%v) = %q, want %q", got, cat, tt.wantCat)
		}
	}
}

func TestCategory_Boundaries(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{18.4, "Underweight"},
		{18.5, "Normal"},
		{24.9, "Normal"},
		{25.0, "Overweight"},
		{29.9, "Overweight"},
		{30.0, "Obese"},
	}
	for _, tt := range tests {
		if got := Category(tt.bmi); got != tt.want {
			t.Errorf("Category(%v) = %q, want %q", tt.bmi, got, tt.want)
		}
	}
}

func TestReport_Calories(t *testing.T) {
	rep, err := Report(175, 70, 1.2)
	if err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	// BMR = 10*70 + 6.25*175 - 5*25 + 5 = 1673.75; 1673.75*1.2 rounds
	// half-up to 2009.
	if rep.BMR != 1673.75 {
		t.Errorf("BMR = %v, want 1673.75", rep.BMR)
	}
	if rep.DailyCalories != 2009 {
		t.Errorf("DailyCalories = %d, want 2009", rep.DailyCalories)
	}
}

func TestReport_DefaultActivity(t *testing.T) {
	withDefault, err := Report(175, 70, 0)
	if err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	explicit, err := Report(175, 70, 1.2)
	if err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	if withDefault.DailyCalories != explicit.DailyCalories {
		t.Errorf("omitted activity should default to 1.2: got %d, want %d",
			withDefault.DailyCalories, explicit.DailyCalories)
	}
}

func TestReport_Validation(t *testing.T) {
	bad := []struct {
		name     string
		heightCm float64
		weightKg float64
	}{
		{"zero height", 0, 70},
		{"zero weight", 175, 0},
		{"negative height", -175, 70},
		{"implausible height", 300, 70},
		{"implausible weight", 175, 500},
	}
	for _, tt := range bad {
		_, err := Report(tt.heightCm, tt.weightKg, 1.2)
		if !errors.Is(err, ErrInvalidMeasurement) {
			t.Errorf("%s: got %v, want ErrInvalidMeasurement", tt.name, err)
		}
	}
}
