package service

import (
	"errors"
	"math"

	"github.com/Lalitdesh1/BurnFit/internal/model"
)

const (
	activityMultiplier = 1.2
	loseDeficitKcal    = 400
)

// ComputeTarget derives the daily calorie budget with Mifflin-St Jeor (male
// constant, no sex input) and a fixed sedentary multiplier. The deficit for
// GoalLose is applied before rounding. Inputs are not validated here.
func ComputeTarget(age int, heightCm, weightKg float64, goal model.Goal) int {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age) + 5
	target := base * activityMultiplier
	if goal == model.GoalLose {
		target -= loseDeficitKcal
	}
	return int(math.Round(target))
}

// BMI expects height in centimeters and weight in kilograms.
func BMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	h := heightCm / 100.0
	return weightKg / (h * h), nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}

func AdherenceWithin(actual float64, target float64, tolerance float64) bool {
	if target == 0 {
		return actual == 0
	}
	lower := target * (1 - tolerance)
	upper := target * (1 + tolerance)
	return actual >= lower && actual <= upper
}
