package model

import (
	"fmt"
	"strings"
	"time"
)

type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
)

func ParseGoal(value string) (Goal, error) {
	switch Goal(strings.ToLower(strings.TrimSpace(value))) {
	case GoalLose:
		return GoalLose, nil
	case GoalMaintain:
		return GoalMaintain, nil
	}
	return "", fmt.Errorf("invalid goal %q (use lose or maintain)", value)
}

type DietaryPreference string

const (
	DietVegetarian    DietaryPreference = "vegetarian"
	DietNonVegetarian DietaryPreference = "non-vegetarian"
	DietNone          DietaryPreference = "none"
)

func ParseDietaryPreference(value string) (DietaryPreference, error) {
	switch DietaryPreference(strings.ToLower(strings.TrimSpace(value))) {
	case DietVegetarian:
		return DietVegetarian, nil
	case DietNonVegetarian, "non-veg", "nonveg":
		return DietNonVegetarian, nil
	case DietNone, "":
		return DietNone, nil
	}
	return "", fmt.Errorf("invalid dietary preference %q (use vegetarian, non-vegetarian, or none)", value)
}

// MaxSearchHistory bounds Profile.SearchHistory.
const MaxSearchHistory = 50

type Profile struct {
	Age               int               `json:"age"`
	HeightCm          float64           `json:"height"`
	WeightKg          float64           `json:"weight"`
	Goal              Goal              `json:"goal"`
	DietaryPreference DietaryPreference `json:"dietaryPreference"`
	DailyTargetKcal   int               `json:"dailyTarget"`
	SetupComplete     bool              `json:"setupComplete"`
	Email             string            `json:"email,omitempty"`
	PhoneNumber       string            `json:"phoneNumber,omitempty"`
	SearchHistory     []string          `json:"searchHistory,omitempty"`
}

// RecordSearch prepends query to the search history and drops anything past
// MaxSearchHistory.
func (p *Profile) RecordSearch(query string) {
	history := make([]string, 0, len(p.SearchHistory)+1)
	history = append(history, query)
	history = append(history, p.SearchHistory...)
	if len(history) > MaxSearchHistory {
		history = history[:MaxSearchHistory]
	}
	p.SearchHistory = history
}

type EntryKind string

const (
	KindIntake   EntryKind = "intake"
	KindExercise EntryKind = "exercise"
)

type Entry struct {
	ID          string    `json:"id"`
	Kind        EntryKind `json:"type"`
	Calories    int       `json:"calories"`
	TimestampMs int64     `json:"timestamp"`
	Description string    `json:"description"`
}

func (e Entry) Time() time.Time {
	return time.UnixMilli(e.TimestampMs)
}

type DailyStats struct {
	Date   string `json:"date"`
	Intake int    `json:"intake"`
	Burned int    `json:"burned"`
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatMessage struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

type AuthMethod string

const (
	AuthGoogle AuthMethod = "google"
	AuthGuest  AuthMethod = "guest"
)

func ParseAuthMethod(value string) (AuthMethod, error) {
	switch AuthMethod(strings.ToLower(strings.TrimSpace(value))) {
	case AuthGoogle:
		return AuthGoogle, nil
	case AuthGuest:
		return AuthGuest, nil
	}
	return "", fmt.Errorf("invalid auth method %q (use google or guest)", value)
}

// Session holds the login flags persisted next to the profile.
type Session struct {
	Auth    AuthMethod `json:"auth,omitempty"`
	IsAdmin bool       `json:"isAdmin"`
}

func (s Session) LoggedIn() bool {
	return s.Auth != ""
}

type FoodEstimate struct {
	FoodName          string `json:"foodName"`
	EstimatedCalories int    `json:"estimatedCalories"`
}

type TextEstimate struct {
	EstimatedCalories int    `json:"estimatedCalories"`
	ConfirmedFoodName string `json:"confirmedFoodName"`
}
