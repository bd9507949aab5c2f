package service

import (
	"context"
	"fmt"

	"github.com/Lalitdesh1/BurnFit/internal/model"
)

// KcalPerMinute is the flat burn rate used for duration-only activities.
const KcalPerMinute = 7

type MicroWorkout struct {
	ID    int
	Title string
}

// Calories is the fixed burn credited for the workout.
func (w MicroWorkout) Calories() int {
	return w.ID*20 + 30
}

var MicroWorkouts = []MicroWorkout{
	{ID: 1, Title: "5-minute brisk walk"},
	{ID: 2, Title: "7-minute home stretching"},
	{ID: 3, Title: "10-minute core workout"},
	{ID: 4, Title: "5-minute desk yoga"},
}

func MicroWorkoutByID(id int) (MicroWorkout, error) {
	for _, w := range MicroWorkouts {
		if w.ID == id {
			return w, nil
		}
	}
	return MicroWorkout{}, fmt.Errorf("micro workout %d not found", id)
}

type ExerciseInput struct {
	Description string
	Calories    int
	DurationMin int
}

// ExerciseCalories resolves the burn for in: explicit calories win, otherwise
// minutes at KcalPerMinute.
func ExerciseCalories(in ExerciseInput) (int, error) {
	if in.Calories != 0 && in.DurationMin != 0 {
		return 0, fmt.Errorf("set either calories or duration, not both")
	}
	if in.DurationMin != 0 {
		if err := validatePositiveInt("duration", in.DurationMin); err != nil {
			return 0, err
		}
		return in.DurationMin * KcalPerMinute, nil
	}
	if err := validatePositiveInt("calories", in.Calories); err != nil {
		return 0, err
	}
	return in.Calories, nil
}

func LogExercise(ctx context.Context, t *Tracker, in ExerciseInput) (model.Entry, error) {
	calories, err := ExerciseCalories(in)
	if err != nil {
		return model.Entry{}, err
	}
	return t.AddEntry(ctx, model.KindExercise, calories, descriptionOr(in.Description, DefaultActivityDescription))
}

func LogMicroWorkout(ctx context.Context, t *Tracker, id int) (model.Entry, error) {
	w, err := MicroWorkoutByID(id)
	if err != nil {
		return model.Entry{}, err
	}
	return t.AddEntry(ctx, model.KindExercise, w.Calories(), w.Title)
}
