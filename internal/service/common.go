package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSetupRequired = errors.New("profile setup required, run 'burnfit profile setup' first")
	ErrNotLoggedIn   = errors.New("not logged in, run 'burnfit login --guest' or 'burnfit login --google' first")
	ErrInvalidTarget = errors.New("daily target must be > 0")
)

const (
	DefaultMealDescription     = "Meal"
	DefaultActivityDescription = "Activity"
)

func validatePositiveInt(name string, value int) error {
	if value <= 0 {
		return fmt.Errorf("%s must be > 0", name)
	}
	return nil
}

func validatePositiveFloat(name string, value float64) error {
	if value <= 0 {
		return fmt.Errorf("%s must be > 0", name)
	}
	return nil
}

func descriptionOr(desc, fallback string) string {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return fallback
	}
	return desc
}
