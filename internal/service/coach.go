package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Lalitdesh1/BurnFit/internal/logger"
	"github.com/Lalitdesh1/BurnFit/internal/model"
)

const (
	CoachGreeting     = "Hey there! I'm your BurnFit Coach. I've connected to your Google Health Memories. Ready to smash some goals today?"
	CoachFallback     = "I'm having a bit of trouble connecting to your memories right now. Let's try again in a second!"
	CoachEmptyReply   = "I've analyzed your memories and I'm ready to help! Let's stay active."
	FixMyDayFallback  = "Take a 5-minute breather and a walk around the block!"
	setupSyncedFormat = "Profile Synced! I've noted your preference for a %s diet. Let's start your Google Health Journey today!"
)

// SetupGreeting opens coach sessions once a profile is set up.
func SetupGreeting(diet model.DietaryPreference) string {
	return fmt.Sprintf(setupSyncedFormat, diet)
}

type CoachRequest struct {
	Profile model.Profile
	Stats   model.DailyStats
	History []model.ChatMessage
	Message string
}

type CoachingService interface {
	Coach(ctx context.Context, req CoachRequest) (string, error)
}

type DayFixer interface {
	FixMyDay(ctx context.Context, profile model.Profile, stats model.DailyStats) (string, error)
}

// CoachSession holds one conversation. History is never persisted.
type CoachSession struct {
	tracker *Tracker
	coach   CoachingService
	fixer   DayFixer
	history []model.ChatMessage
}

// NewCoachSession opens with the diet greeting once the profile is set up,
// and with CoachGreeting before that.
func NewCoachSession(t *Tracker, coach CoachingService, fixer DayFixer) *CoachSession {
	return &CoachSession{
		tracker: t,
		coach:   coach,
		fixer:   fixer,
		history: []model.ChatMessage{{Role: model.RoleAssistant, Text: openingLine(t)}},
	}
}

func openingLine(t *Tracker) string {
	if p, err := t.RequireProfile(); err == nil {
		return SetupGreeting(p.DietaryPreference)
	}
	return CoachGreeting
}

// History returns a copy of the conversation so far.
func (s *CoachSession) History() []model.ChatMessage {
	out := make([]model.ChatMessage, len(s.history))
	copy(out, s.history)
	return out
}

// Send records message, asks the coach, and returns the assistant turn that
// was appended. Coach failures never surface; the fallback text is used.
func (s *CoachSession) Send(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", fmt.Errorf("message is required")
	}
	profile, err := s.tracker.RequireProfile()
	if err != nil {
		return "", err
	}

	prior := s.History()
	s.history = append(s.history, model.ChatMessage{Role: model.RoleUser, Text: message})

	profile.RecordSearch(message)
	if err := s.tracker.SaveProfile(ctx); err != nil {
		logger.Warn("search history not saved", "err", err)
	}

	reply := s.ask(ctx, CoachRequest{
		Profile: *profile,
		Stats:   s.tracker.Today(),
		History: prior,
		Message: message,
	})
	s.history = append(s.history, model.ChatMessage{Role: model.RoleAssistant, Text: reply})
	return reply, nil
}

func (s *CoachSession) ask(ctx context.Context, req CoachRequest) string {
	if s.coach == nil {
		logger.Warn("coach call skipped", "reason", "no coaching service")
		return CoachFallback
	}
	reply, err := s.coach.Coach(ctx, req)
	if err != nil {
		logger.Warn("coach call failed", "err", err)
		return CoachFallback
	}
	if strings.TrimSpace(reply) == "" {
		return CoachEmptyReply
	}
	return strings.TrimSpace(reply)
}

// FixMyDay appends one quick suggestion based on today's numbers.
func (s *CoachSession) FixMyDay(ctx context.Context) (string, error) {
	profile, err := s.tracker.RequireProfile()
	if err != nil {
		return "", err
	}
	suggestion := FixMyDayFallback
	if s.fixer == nil {
		logger.Warn("fix my day skipped", "reason", "no day fixer")
	} else if got, err := s.fixer.FixMyDay(ctx, *profile, s.tracker.Today()); err != nil {
		logger.Warn("fix my day failed", "err", err)
	} else if strings.TrimSpace(got) != "" {
		suggestion = strings.TrimSpace(got)
	}
	s.history = append(s.history, model.ChatMessage{Role: model.RoleAssistant, Text: suggestion})
	return suggestion, nil
}
