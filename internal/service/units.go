package service

import (
	"fmt"
	"strings"
)

const (
	kgPerLb = 0.45359237
	cmPerIn = 2.54
)

// ToKg converts a weight in kg or lb to kilograms.
func ToKg(value float64, unit string) (float64, error) {
	if value <= 0 {
		return 0, fmt.Errorf("weight must be > 0")
	}
	switch normalizeUnit(unit, "kg") {
	case "kg":
		return value, nil
	case "lb", "lbs":
		return value * kgPerLb, nil
	default:
		return 0, fmt.Errorf("invalid weight unit %q (use kg or lb)", unit)
	}
}

// ToCm converts a height in cm or in to centimeters.
func ToCm(value float64, unit string) (float64, error) {
	if value <= 0 {
		return 0, fmt.Errorf("height must be > 0")
	}
	switch normalizeUnit(unit, "cm") {
	case "cm":
		return value, nil
	case "in", "inch", "inches":
		return value * cmPerIn, nil
	default:
		return 0, fmt.Errorf("invalid height unit %q (use cm or in)", unit)
	}
}

func normalizeUnit(unit, fallback string) string {
	u := strings.ToLower(strings.TrimSpace(unit))
	if u == "" {
		return fallback
	}
	return u
}
