package gemini

import (
	"fmt"
	"strings"

	"github.com/Lalitdesh1/BurnFit/internal/model"
)

func dietHint(diet model.DietaryPreference) string {
	switch diet {
	case model.DietVegetarian:
		return "vegetarian"
	case model.DietNonVegetarian:
		return "non-vegetarian"
	}
	return ""
}

func mealRestriction(diet model.DietaryPreference) string {
	switch diet {
	case model.DietVegetarian:
		return "vegetarian (no meat/fish)"
	case model.DietNonVegetarian:
		return "protein-rich (can include meat/fish)"
	}
	return "balanced"
}

func coachInstruction(p model.Profile, stats model.DailyStats) string {
	var b strings.Builder
	b.WriteString("You are BurnFit AI Coach, powered by Google Health Memories.\n")
	b.WriteString("You have access to the user's historical fitness data.\n")
	fmt.Fprintf(&b, "The user is %d years old, %gcm, %gkg, with a goal to %s weight.\n", p.Age, p.HeightCm, p.WeightKg, p.Goal)
	fmt.Fprintf(&b, "DIETARY PREFERENCE: The user follows a %s diet.\n", p.DietaryPreference)
	fmt.Fprintf(&b, "IMPORTANT: Only suggest %s meal options if food is mentioned.\n", mealRestriction(p.DietaryPreference))
	if len(p.SearchHistory) > 0 {
		recent := p.SearchHistory
		if len(recent) > 5 {
			recent = recent[:5]
		}
		fmt.Fprintf(&b, "Recent questions from the user: %s.\n", strings.Join(recent, "; "))
	}
	fmt.Fprintf(&b, "\nToday: Eaten %d kcal, Burned %d kcal. Target: %d kcal.\n\n", stats.Intake, stats.Burned, p.DailyTargetKcal)
	b.WriteString("Personality:\n")
	b.WriteString("- Supportive, expert, and deeply integrated with their health history.\n")
	b.WriteString("- Mention that you are analyzing their \"Google Health Memories\" to provide better advice.\n")
	b.WriteString("- Friendly and motivational.\n")
	b.WriteString("- Keep responses short and actionable (max 3 sentences).")
	return b.String()
}

func fixMyDayInstruction(p model.Profile) string {
	return fmt.Sprintf("You are BurnFit Coach. Access Google Health Memories.\n"+
		"The user is %s. If suggesting food, it MUST be %s.\n"+
		"Provide exactly one supportive, brief activity or meal suggestion.",
		p.DietaryPreference, mealRestriction(p.DietaryPreference))
}
