package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Lalitdesh1/BurnFit/internal/logger"
	"github.com/Lalitdesh1/BurnFit/internal/model"
)

type SetupInput struct {
	Age               int
	HeightCm          float64
	WeightKg          float64
	Goal              string
	DietaryPreference string
	Email             string
	PhoneNumber       string
}

// SetupProfile validates biometrics, derives the daily target, and marks
// setup complete. Search history from an existing profile is kept.
func SetupProfile(ctx context.Context, t *Tracker, in SetupInput) (*model.Profile, error) {
	if err := validatePositiveInt("age", in.Age); err != nil {
		return nil, err
	}
	if err := validatePositiveFloat("height", in.HeightCm); err != nil {
		return nil, err
	}
	if err := validatePositiveFloat("weight", in.WeightKg); err != nil {
		return nil, err
	}
	goal, err := model.ParseGoal(in.Goal)
	if err != nil {
		return nil, err
	}
	diet, err := model.ParseDietaryPreference(in.DietaryPreference)
	if err != nil {
		return nil, err
	}

	p := &model.Profile{
		Age:               in.Age,
		HeightCm:          in.HeightCm,
		WeightKg:          in.WeightKg,
		Goal:              goal,
		DietaryPreference: diet,
		DailyTargetKcal:   ComputeTarget(in.Age, in.HeightCm, in.WeightKg, goal),
		SetupComplete:     true,
		Email:             strings.TrimSpace(in.Email),
		PhoneNumber:       strings.TrimSpace(in.PhoneNumber),
	}
	if t.Profile != nil {
		p.SearchHistory = t.Profile.SearchHistory
	}
	t.Profile = p
	if err := t.SaveProfile(ctx); err != nil {
		return nil, err
	}
	logger.Info("profile setup complete", "target", p.DailyTargetKcal, "goal", p.Goal)
	return p, nil
}

// ProfileEdit carries optional changes; nil fields are left alone.
type ProfileEdit struct {
	Age               *int
	HeightCm          *float64
	WeightKg          *float64
	Goal              *string
	DietaryPreference *string
	Email             *string
	PhoneNumber       *string
	// RecomputeTarget re-derives DailyTargetKcal from the edited biometrics.
	// Without it the target set at setup stays in place.
	RecomputeTarget bool
}

func EditProfile(ctx context.Context, t *Tracker, in ProfileEdit) (*model.Profile, error) {
	current, err := t.RequireProfile()
	if err != nil {
		return nil, err
	}
	p := *current
	if in.Age != nil {
		if err := validatePositiveInt("age", *in.Age); err != nil {
			return nil, err
		}
		p.Age = *in.Age
	}
	if in.HeightCm != nil {
		if err := validatePositiveFloat("height", *in.HeightCm); err != nil {
			return nil, err
		}
		p.HeightCm = *in.HeightCm
	}
	if in.WeightKg != nil {
		if err := validatePositiveFloat("weight", *in.WeightKg); err != nil {
			return nil, err
		}
		p.WeightKg = *in.WeightKg
	}
	if in.Goal != nil {
		goal, err := model.ParseGoal(*in.Goal)
		if err != nil {
			return nil, err
		}
		p.Goal = goal
	}
	if in.DietaryPreference != nil {
		diet, err := model.ParseDietaryPreference(*in.DietaryPreference)
		if err != nil {
			return nil, err
		}
		p.DietaryPreference = diet
	}
	if in.Email != nil {
		p.Email = strings.TrimSpace(*in.Email)
	}
	if in.PhoneNumber != nil {
		p.PhoneNumber = strings.TrimSpace(*in.PhoneNumber)
	}
	if in.RecomputeTarget {
		p.DailyTargetKcal = ComputeTarget(p.Age, p.HeightCm, p.WeightKg, p.Goal)
	}

	t.Profile = &p
	if err := t.SaveProfile(ctx); err != nil {
		return nil, err
	}
	return &p, nil
}

// Login records the sign-in method for this device.
func Login(ctx context.Context, t *Tracker, method string) error {
	m, err := model.ParseAuthMethod(method)
	if err != nil {
		return err
	}
	t.Session.Auth = m
	if err := t.Store.SaveSession(ctx, t.Session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	logger.Info("logged in", "method", m)
	return nil
}

// Logout wipes the profile, the ledger, and the session flags.
func Logout(ctx context.Context, t *Tracker) error {
	if err := t.Store.ClearAll(ctx); err != nil {
		logger.Error("logout clear failed", "err", err)
		return err
	}
	t.Profile = nil
	t.Ledger = NewLedger(nil).WithClock(t.Now)
	t.Session = model.Session{}
	logger.Info("logged out")
	return nil
}
