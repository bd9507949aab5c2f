package burnfit

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Lalitdesh1/BurnFit/internal/service"
)

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Log calories burned",
}

var (
	exerciseDescription string
	exerciseCalories    int
	exerciseMinutes     int
)

var exerciseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log an activity by calories or by minutes",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.ExerciseInput{
			Description: exerciseDescription,
			Calories:    exerciseCalories,
			DurationMin: exerciseMinutes,
		}
		return withTracker(cmd, true, func(ctx context.Context, _ *sql.DB, t *service.Tracker) error {
			e, err := service.LogExercise(ctx, t, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged exercise %s: %s (%d kcal)\n", e.ID, e.Description, e.Calories)
			return nil
		})
	},
}

var exerciseQuickCmd = &cobra.Command{
	Use:   "quick <id>",
	Short: "Log one of the built-in micro workouts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parsePositiveIntArg("workout id", args[0])
		if err != nil {
			return err
		}
		return withTracker(cmd, true, func(ctx context.Context, _ *sql.DB, t *service.Tracker) error {
			e, err := service.LogMicroWorkout(ctx, t, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged exercise %s: %s (%d kcal)\n", e.ID, e.Description, e.Calories)
			return nil
		})
	},
}

var exerciseListQuickCmd = &cobra.Command{
	Use:   "list-quick",
	Short: "List the built-in micro workouts",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "ID\tKCAL\tWORKOUT")
		for _, w := range service.MicroWorkouts {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%d\t%s\n", w.ID, w.Calories(), w.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(exerciseCmd)
	exerciseCmd.AddCommand(exerciseAddCmd, exerciseQuickCmd, exerciseListQuickCmd)

	exerciseAddCmd.Flags().StringVar(&exerciseDescription, "description", "", "Activity name (default: Activity)")
	exerciseAddCmd.Flags().IntVar(&exerciseCalories, "calories", 0, "Calories burned (kcal)")
	exerciseAddCmd.Flags().IntVar(&exerciseMinutes, "minutes", 0, "Duration in minutes, counted at 7 kcal/min")
}
