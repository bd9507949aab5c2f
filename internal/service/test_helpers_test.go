package service_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/Lalitdesh1/BurnFit/internal/db"
	"github.com/Lalitdesh1/BurnFit/internal/model"
	"github.com/Lalitdesh1/BurnFit/internal/service"
	"github.com/Lalitdesh1/BurnFit/internal/store"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "burnfit.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })
	return sqldb
}

// fixedNow is a local-time instant in the middle of a day.
var fixedNow = time.Date(2026, 2, 20, 12, 0, 0, 0, time.Local)

func clockAt(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func newTracker(t *testing.T, st store.Store) *service.Tracker {
	t.Helper()
	tr, err := service.LoadTracker(context.Background(), st)
	if err != nil {
		t.Fatalf("load tracker: %v", err)
	}
	tr.SetClock(clockAt(fixedNow))
	return tr
}

func newSetupTracker(t *testing.T, st store.Store) *service.Tracker {
	t.Helper()
	tr := newTracker(t, st)
	if _, err := service.SetupProfile(context.Background(), tr, service.SetupInput{
		Age:               25,
		HeightCm:          175,
		WeightKg:          70,
		Goal:              "lose",
		DietaryPreference: "vegetarian",
	}); err != nil {
		t.Fatalf("setup profile: %v", err)
	}
	return tr
}

func entryAt(id string, kind model.EntryKind, calories int, at time.Time) model.Entry {
	return model.Entry{ID: id, Kind: kind, Calories: calories, TimestampMs: at.UnixMilli(), Description: id}
}

// failingStore fails every save and delegates loads.
type failingStore struct {
	store.Store
}

var errSaveFailed = errors.New("disk full")

func (failingStore) SaveLedger(context.Context, []model.Entry) error  { return errSaveFailed }
func (failingStore) SaveProfile(context.Context, model.Profile) error { return errSaveFailed }

type fakeCoach struct {
	reply    string
	err      error
	requests []service.CoachRequest
}

func (f *fakeCoach) Coach(_ context.Context, req service.CoachRequest) (string, error) {
	f.requests = append(f.requests, req)
	return f.reply, f.err
}

type fakeFixer struct {
	reply string
	err   error
}

func (f fakeFixer) FixMyDay(context.Context, model.Profile, model.DailyStats) (string, error) {
	return f.reply, f.err
}

type fakeVision struct {
	est model.FoodEstimate
	err error
}

func (f fakeVision) AnalyzeFoodImage(context.Context, []byte, string, model.DietaryPreference) (model.FoodEstimate, error) {
	return f.est, f.err
}

type fakeText struct {
	est model.TextEstimate
	err error
}

func (f fakeText) EstimateCalories(context.Context, string, model.DietaryPreference) (model.TextEstimate, error) {
	return f.est, f.err
}

type fakeBarcode struct {
	est   model.FoodEstimate
	err   error
	calls int
}

func (f *fakeBarcode) LookupBarcode(context.Context, string) (model.FoodEstimate, error) {
	f.calls++
	return f.est, f.err
}
