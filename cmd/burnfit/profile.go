package burnfit

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/Lalitdesh1/BurnFit/internal/model"
	"github.com/Lalitdesh1/BurnFit/internal/service"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your biometrics and daily target",
}

var (
	profileAge         int
	profileHeight      float64
	profileWeight      float64
	profileGoal        string
	profileDiet        string
	profileEmail       string
	profilePhone       string
	profileInteractive bool
	profileRecompute   bool
	profileWeightUnit  string
	profileHeightUnit  string
)

var profileSetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create your profile and derive the daily calorie target",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.SetupInput{
			Age:               profileAge,
			HeightCm:          profileHeight,
			WeightKg:          profileWeight,
			Goal:              profileGoal,
			DietaryPreference: profileDiet,
			Email:             profileEmail,
			PhoneNumber:       profilePhone,
		}
		if profileInteractive {
			if err := runSetupForm(&in); err != nil {
				return err
			}
		} else if err := convertSetupUnits(&in); err != nil {
			return err
		}
		return withTracker(cmd, true, func(ctx context.Context, _ *sql.DB, t *service.Tracker) error {
			p, err := service.SetupProfile(ctx, t, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Daily target: %d kcal\n", p.DailyTargetKcal)
			fmt.Fprintln(cmd.OutOrStdout(), service.SetupGreeting(p.DietaryPreference))
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, true, func(ctx context.Context, _ *sql.DB, t *service.Tracker) error {
			p, err := t.RequireProfile()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Age: %d\n", p.Age)
			fmt.Fprintf(out, "Height: %g cm\n", p.HeightCm)
			fmt.Fprintf(out, "Weight: %g kg\n", p.WeightKg)
			fmt.Fprintf(out, "Goal: %s\n", p.Goal)
			fmt.Fprintf(out, "Diet: %s\n", p.DietaryPreference)
			fmt.Fprintf(out, "Daily target: %d kcal\n", p.DailyTargetKcal)
			if bmi, err := service.BMI(p.HeightCm, p.WeightKg); err == nil {
				fmt.Fprintf(out, "BMI: %.1f (%s)\n", bmi, service.BMICategory(bmi))
			}
			if p.Email != "" {
				fmt.Fprintf(out, "Email: %s\n", p.Email)
			}
			if p.PhoneNumber != "" {
				fmt.Fprintf(out, "Phone: %s\n", p.PhoneNumber)
			}
			fmt.Fprintf(out, "Coach questions remembered: %d\n", len(p.SearchHistory))
			return nil
		})
	},
}

var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Change profile fields; the daily target only changes with --recompute-target",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.ProfileEdit{
			Age:               intPtrIfChanged(cmd, "age", profileAge),
			HeightCm:          floatPtrIfChanged(cmd, "height", profileHeight),
			WeightKg:          floatPtrIfChanged(cmd, "weight", profileWeight),
			Goal:              stringPtrIfChanged(cmd, "goal", profileGoal),
			DietaryPreference: stringPtrIfChanged(cmd, "diet", profileDiet),
			Email:             stringPtrIfChanged(cmd, "email", profileEmail),
			PhoneNumber:       stringPtrIfChanged(cmd, "phone", profilePhone),
			RecomputeTarget:   profileRecompute,
		}
		if in.HeightCm != nil {
			cm, err := service.ToCm(*in.HeightCm, profileHeightUnit)
			if err != nil {
				return err
			}
			in.HeightCm = &cm
		}
		if in.WeightKg != nil {
			kg, err := service.ToKg(*in.WeightKg, profileWeightUnit)
			if err != nil {
				return err
			}
			in.WeightKg = &kg
		}
		return withTracker(cmd, true, func(ctx context.Context, _ *sql.DB, t *service.Tracker) error {
			p, err := service.EditProfile(ctx, t, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated profile; daily target: %d kcal\n", p.DailyTargetKcal)
			return nil
		})
	},
}

func runSetupForm(in *service.SetupInput) error {
	age := formatIfSet(float64(in.Age))
	height := formatIfSet(in.HeightCm)
	weight := formatIfSet(in.WeightKg)
	goal := model.GoalLose
	if g, err := model.ParseGoal(in.Goal); err == nil {
		goal = g
	}
	diet := model.DietNone
	if d, err := model.ParseDietaryPreference(in.DietaryPreference); err == nil {
		diet = d
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Age").Value(&age).Validate(positiveNumber),
			huh.NewInput().Title("Height (cm)").Value(&height).Validate(positiveNumber),
			huh.NewInput().Title("Weight (kg)").Value(&weight).Validate(positiveNumber),
			huh.NewSelect[model.Goal]().
				Title("Goal").
				Options(
					huh.NewOption("Lose weight", model.GoalLose),
					huh.NewOption("Maintain", model.GoalMaintain),
				).
				Value(&goal),
			huh.NewSelect[model.DietaryPreference]().
				Title("Dietary preference").
				Options(
					huh.NewOption("Vegetarian", model.DietVegetarian),
					huh.NewOption("Non-vegetarian", model.DietNonVegetarian),
					huh.NewOption("No preference", model.DietNone),
				).
				Value(&diet),
		),
	).WithTheme(huh.ThemeDracula())
	if err := form.Run(); err != nil {
		return fmt.Errorf("profile form: %w", err)
	}

	ageVal, _ := strconv.Atoi(strings.TrimSpace(age))
	heightVal, _ := strconv.ParseFloat(strings.TrimSpace(height), 64)
	weightVal, _ := strconv.ParseFloat(strings.TrimSpace(weight), 64)
	in.Age = ageVal
	in.HeightCm = heightVal
	in.WeightKg = weightVal
	in.Goal = string(goal)
	in.DietaryPreference = string(diet)
	return nil
}

// convertSetupUnits leaves unset (zero) values for SetupProfile to reject.
func convertSetupUnits(in *service.SetupInput) error {
	if in.HeightCm > 0 {
		cm, err := service.ToCm(in.HeightCm, profileHeightUnit)
		if err != nil {
			return err
		}
		in.HeightCm = cm
	}
	if in.WeightKg > 0 {
		kg, err := service.ToKg(in.WeightKg, profileWeightUnit)
		if err != nil {
			return err
		}
		in.WeightKg = kg
	}
	return nil
}

func positiveNumber(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v <= 0 {
		return fmt.Errorf("must be > 0")
	}
	return nil
}

func formatIfSet(v float64) string {
	if v <= 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetupCmd, profileShowCmd, profileEditCmd)

	for _, c := range []*cobra.Command{profileSetupCmd, profileEditCmd} {
		c.Flags().IntVar(&profileAge, "age", 0, "Age in years")
		c.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm")
		c.Flags().Float64Var(&profileWeight, "weight", 0, "Weight in kg")
		c.Flags().StringVar(&profileGoal, "goal", "", "Goal: lose|maintain")
		c.Flags().StringVar(&profileDiet, "diet", "", "Dietary preference: vegetarian|non-vegetarian|none")
		c.Flags().StringVar(&profileEmail, "email", "", "Contact email (optional)")
		c.Flags().StringVar(&profilePhone, "phone", "", "Phone number (optional)")
		c.Flags().StringVar(&profileHeightUnit, "height-unit", "cm", "Height unit: cm|in")
		c.Flags().StringVar(&profileWeightUnit, "weight-unit", "kg", "Weight unit: kg|lb")
	}
	profileSetupCmd.Flags().BoolVar(&profileInteractive, "interactive", false, "Fill in the profile with a form")
	profileEditCmd.Flags().BoolVar(&profileRecompute, "recompute-target", false, "Re-derive the daily target from the edited biometrics")
}
