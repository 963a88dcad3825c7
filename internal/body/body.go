// Package body computes BMI and estimated daily calories from user-entered
// height and weight.
package body

import (
	"errors"
	"fmt"
	"math"

	"github.com/mfeehan/vitals/pkg/vitals"
)

var ErrInvalidMeasurement = errors.New("invalid measurement")

const (
	minHeightCm = 50
	maxHeightCm = 250
	minWeightKg = 10
	maxWeightKg = 400

	// The estimate assumes a fixed age and the male constant of the
	// Mifflin-St Jeor formula. Known simplification carried over from the
	// product's first version; real user attributes may replace it later.
	assumedAge = 25

	defaultActivity = 1.2
)

// Report validates the inputs and produces the full BMI/BMR report. An
// activity multiplier below 1 (including zero when the field was omitted)
// falls back to the sedentary default.
func Report(heightCm, weightKg, activity float64) (vitals.BodyReport, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return vitals.BodyReport{}, fmt.Errorf("%w: height and weight must be positive", ErrInvalidMeasurement)
	}
	if heightCm < minHeightCm || heightCm > maxHeightCm || weightKg < minWeightKg || weightKg > maxWeightKg {
		return vitals.BodyReport{}, fmt.Errorf("%w: height/weight out of plausible range", ErrInvalidMeasurement)
	}
	if activity < 1 {
		activity = defaultActivity
	}

	bmi := BMI(heightCm, weightKg)
	bmr := BMR(heightCm, weightKg)

	return vitals.BodyReport{
		BMI:           bmi,
		Category:      Category(bmi),
		BMR:           bmr,
		DailyCalories: int(roundHalfUp(bmr * activity)),
	}, nil
}

// BMI is weight over squared height in meters, rounded half-up to one
// decimal place.
func BMI(heightCm, weightKg float64) float64 {
	m := heightCm / 100.0
	return roundHalfUp(weightKg/(m*m)*10) / 10
}

func Category(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obese"
	}
}

// BMR is the Mifflin-St Jeor estimate at the assumed age.
func BMR(heightCm, weightKg float64) float64 {
	return 10*weightKg + 6.25*heightCm - 5*assumedAge + 5
}

func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
