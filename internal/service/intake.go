package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Lalitdesh1/BurnFit/internal/logger"
	"github.com/Lalitdesh1/BurnFit/internal/model"
)

// UnknownDish is the vision result used when nothing usable came back.
var UnknownDish = model.FoodEstimate{FoodName: "Unknown Dish", EstimatedCalories: 0}

type VisionService interface {
	AnalyzeFoodImage(ctx context.Context, image []byte, mimeType string, diet model.DietaryPreference) (model.FoodEstimate, error)
}

type TextEstimator interface {
	EstimateCalories(ctx context.Context, description string, diet model.DietaryPreference) (model.TextEstimate, error)
}

type BarcodeLookup interface {
	LookupBarcode(ctx context.Context, barcode string) (model.FoodEstimate, error)
}

type IntakeSource string

const (
	SourceManual  IntakeSource = "manual"
	SourceVision  IntakeSource = "vision"
	SourceText    IntakeSource = "text"
	SourceBarcode IntakeSource = "barcode"
)

// IntakeDraft is a suggested intake entry the user can still change.
type IntakeDraft struct {
	Description string
	Calories    int
	Source      IntakeSource
}

// Override replaces draft fields with values the user set explicitly.
func (d IntakeDraft) Override(description *string, calories *int) IntakeDraft {
	if description != nil {
		d.Description = strings.TrimSpace(*description)
	}
	if calories != nil {
		d.Calories = *calories
	}
	return d
}

type IntakeCapture struct {
	Vision  VisionService
	Text    TextEstimator
	Barcode BarcodeLookup
}

// FromPhoto asks the vision service for a suggestion. Any failure turns into
// UnknownDish.
func (c IntakeCapture) FromPhoto(ctx context.Context, image []byte, mimeType string, diet model.DietaryPreference) IntakeDraft {
	est := UnknownDish
	if c.Vision == nil {
		logger.Warn("vision estimate skipped", "reason", "no vision service")
	} else if got, err := c.Vision.AnalyzeFoodImage(ctx, image, mimeType, diet); err != nil {
		logger.Warn("vision estimate failed", "err", err)
	} else {
		est = got
	}
	if est.EstimatedCalories < 0 {
		est.EstimatedCalories = 0
	}
	return IntakeDraft{Description: strings.TrimSpace(est.FoodName), Calories: est.EstimatedCalories, Source: SourceVision}
}

// FromText estimates calories for description. The description is kept
// unless the estimator confirmed a name; calories stay 0 when the estimate
// was unusable.
func (c IntakeCapture) FromText(ctx context.Context, description string, diet model.DietaryPreference) IntakeDraft {
	draft := IntakeDraft{Description: strings.TrimSpace(description), Source: SourceText}
	if draft.Description == "" {
		return draft
	}
	if c.Text == nil {
		logger.Warn("text estimate skipped", "reason", "no estimator")
		return draft
	}
	est, err := c.Text.EstimateCalories(ctx, draft.Description, diet)
	if err != nil {
		logger.Warn("text estimate failed", "err", err)
		return draft
	}
	if est.EstimatedCalories > 0 {
		draft.Calories = est.EstimatedCalories
	}
	if name := strings.TrimSpace(est.ConfirmedFoodName); name != "" {
		draft.Description = name
	}
	return draft
}

// FromBarcode looks up a packaged product. Unlike the AI estimates a failed
// lookup is returned, since the user asked for one specific product.
func (c IntakeCapture) FromBarcode(ctx context.Context, barcode string) (IntakeDraft, error) {
	barcode = strings.TrimSpace(barcode)
	if len(barcode) < 8 || len(barcode) > 14 || strings.Trim(barcode, "0123456789") != "" {
		return IntakeDraft{}, fmt.Errorf("invalid barcode %q (expected 8-14 digits)", barcode)
	}
	if c.Barcode == nil {
		return IntakeDraft{}, fmt.Errorf("no barcode lookup configured")
	}
	est, err := c.Barcode.LookupBarcode(ctx, barcode)
	if err != nil {
		return IntakeDraft{}, fmt.Errorf("lookup barcode %s: %w", barcode, err)
	}
	if est.EstimatedCalories < 0 {
		est.EstimatedCalories = 0
	}
	return IntakeDraft{Description: strings.TrimSpace(est.FoodName), Calories: est.EstimatedCalories, Source: SourceBarcode}, nil
}

// SubmitIntake validates the draft and logs it.
func SubmitIntake(ctx context.Context, t *Tracker, d IntakeDraft) (model.Entry, error) {
	if err := validatePositiveInt("calories", d.Calories); err != nil {
		return model.Entry{}, err
	}
	return t.AddEntry(ctx, model.KindIntake, d.Calories, descriptionOr(d.Description, DefaultMealDescription))
}
