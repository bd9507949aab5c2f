package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Lalitdesh1/BurnFit/internal/model"
	"github.com/Lalitdesh1/BurnFit/internal/service"
	"github.com/Lalitdesh1/BurnFit/internal/store"
)

func TestFromPhotoUsesVisionEstimate(t *testing.T) {
	t.Parallel()

	c := service.IntakeCapture{Vision: fakeVision{est: model.FoodEstimate{FoodName: " Veg biryani ", EstimatedCalories: 520}}}
	d := c.FromPhoto(context.Background(), []byte("img"), "image/jpeg", model.DietVegetarian)
	if d.Description != "Veg biryani" || d.Calories != 520 || d.Source != service.SourceVision {
		t.Fatalf("unexpected draft: %+v", d)
	}
}

func TestFromPhotoFallsBackToUnknownDish(t *testing.T) {
	t.Parallel()

	for name, c := range map[string]service.IntakeCapture{
		"error":      {Vision: fakeVision{err: errors.New("timeout")}},
		"no service": {},
	} {
		d := c.FromPhoto(context.Background(), []byte("img"), "image/jpeg", model.DietNone)
		if d.Description != "Unknown Dish" || d.Calories != 0 {
			t.Fatalf("%s: expected unknown dish fallback, got %+v", name, d)
		}
	}

	neg := service.IntakeCapture{Vision: fakeVision{est: model.FoodEstimate{FoodName: "Air", EstimatedCalories: -20}}}
	if d := neg.FromPhoto(context.Background(), []byte("img"), "image/png", model.DietNone); d.Calories != 0 {
		t.Fatalf("expected negative estimate clamped to 0, got %d", d.Calories)
	}
}

func TestFromTextEstimate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := service.IntakeCapture{Text: fakeText{est: model.TextEstimate{EstimatedCalories: 300, ConfirmedFoodName: "Two idlis with sambar"}}}
	d := c.FromText(ctx, "2 idli", model.DietVegetarian)
	if d.Description != "Two idlis with sambar" || d.Calories != 300 {
		t.Fatalf("unexpected draft: %+v", d)
	}

	unusable := service.IntakeCapture{Text: fakeText{est: model.TextEstimate{}}}
	d = unusable.FromText(ctx, "mystery stew", model.DietNone)
	if d.Description != "mystery stew" || d.Calories != 0 {
		t.Fatalf("expected description kept and zero calories, got %+v", d)
	}

	failing := service.IntakeCapture{Text: fakeText{err: errors.New("offline")}}
	d = failing.FromText(ctx, "apple", model.DietNone)
	if d.Description != "apple" || d.Calories != 0 {
		t.Fatalf("expected estimator failure to leave draft untouched, got %+v", d)
	}
}

func TestDraftOverride(t *testing.T) {
	t.Parallel()

	d := service.IntakeDraft{Description: "Unknown Dish", Calories: 0, Source: service.SourceVision}
	desc := "Leftover pasta"
	cal := 640
	got := d.Override(&desc, &cal)
	if got.Description != desc || got.Calories != cal || got.Source != service.SourceVision {
		t.Fatalf("unexpected override: %+v", got)
	}
	if same := d.Override(nil, nil); same != d {
		t.Fatalf("expected nil overrides to keep draft, got %+v", same)
	}
}

func TestSubmitIntake(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tr := newSetupTracker(t, store.NewMemory())

	for _, cal := range []int{0, -100} {
		if _, err := service.SubmitIntake(ctx, tr, service.IntakeDraft{Description: "Soup", Calories: cal}); err == nil {
			t.Fatalf("expected error for %d calories", cal)
		}
	}
	if tr.Ledger.Len() != 0 {
		t.Fatalf("expected ledger unchanged after rejected submits")
	}

	e, err := service.SubmitIntake(ctx, tr, service.IntakeDraft{Calories: 410})
	if err != nil {
		t.Fatalf("submit intake: %v", err)
	}
	if e.Kind != model.KindIntake || e.Description != service.DefaultMealDescription {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if tr.Today().Intake != 410 {
		t.Fatalf("expected intake 410, got %d", tr.Today().Intake)
	}
}

func TestFromBarcode(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	lookup := &fakeBarcode{est: model.FoodEstimate{FoodName: "Brand Co Yogurt Cup", EstimatedCalories: 120}}
	c := service.IntakeCapture{Barcode: lookup}
	d, err := c.FromBarcode(ctx, " 12345678 ")
	if err != nil {
		t.Fatalf("from barcode: %v", err)
	}
	if d.Description != "Brand Co Yogurt Cup" || d.Calories != 120 || d.Source != service.SourceBarcode {
		t.Fatalf("unexpected draft: %+v", d)
	}

	for _, bad := range []string{"123", "12345678901234567", "12ab5678"} {
		if _, err := c.FromBarcode(ctx, bad); err == nil {
			t.Fatalf("expected invalid barcode error for %q", bad)
		}
	}
	if lookup.calls != 1 {
		t.Fatalf("invalid barcodes must not be looked up, got %d calls", lookup.calls)
	}

	failing := service.IntakeCapture{Barcode: &fakeBarcode{err: errors.New("not found")}}
	if _, err := failing.FromBarcode(ctx, "12345678"); err == nil {
		t.Fatalf("expected lookup error to be returned")
	}
}
