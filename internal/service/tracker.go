package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Lalitdesh1/BurnFit/internal/logger"
	"github.com/Lalitdesh1/BurnFit/internal/model"
	"github.com/Lalitdesh1/BurnFit/internal/store"
)

// Tracker is the loaded state of one user bound to the store it came from.
// It is driven by a single flow and is not safe for concurrent use.
type Tracker struct {
	Store   store.Store
	Ledger  *Ledger
	Profile *model.Profile
	Session model.Session
	Now     func() time.Time
}

func LoadTracker(ctx context.Context, st store.Store) (*Tracker, error) {
	profile, err := st.LoadProfile(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := st.LoadLedger(ctx)
	if err != nil {
		return nil, err
	}
	sess, err := st.LoadSession(ctx)
	if err != nil {
		return nil, err
	}
	return &Tracker{
		Store:   st,
		Ledger:  NewLedger(entries),
		Profile: profile,
		Session: sess,
		Now:     time.Now,
	}, nil
}

// SetClock points both the tracker and its ledger at now.
func (t *Tracker) SetClock(now func() time.Time) {
	t.Now = now
	t.Ledger.WithClock(now)
}

// RequireProfile returns the profile when setup has been completed.
func (t *Tracker) RequireProfile() (*model.Profile, error) {
	if t.Profile == nil || !t.Profile.SetupComplete {
		return nil, ErrSetupRequired
	}
	return t.Profile, nil
}

func (t *Tracker) RequireLogin() error {
	if !t.Session.LoggedIn() {
		return ErrNotLoggedIn
	}
	return nil
}

// AddEntry appends to the ledger and persists the whole collection. The
// in-memory append survives a failed save; the error is logged and returned.
func (t *Tracker) AddEntry(ctx context.Context, kind model.EntryKind, calories int, description string) (model.Entry, error) {
	e := t.Ledger.Add(kind, calories, description)
	if err := t.Store.SaveLedger(ctx, t.Ledger.Entries()); err != nil {
		logger.Error("persist ledger failed", "entry", e.ID, "err", err)
		return e, fmt.Errorf("save ledger: %w", err)
	}
	logger.Info("entry logged", "id", e.ID, "kind", e.Kind, "calories", e.Calories)
	return e, nil
}

func (t *Tracker) SaveProfile(ctx context.Context) error {
	if t.Profile == nil {
		return ErrSetupRequired
	}
	if err := t.Store.SaveProfile(ctx, *t.Profile); err != nil {
		logger.Error("persist profile failed", "err", err)
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (t *Tracker) Today() model.DailyStats {
	return TodayStats(t.Ledger.Entries(), t.Now())
}

// TodaySummary needs a completed profile for the target.
func (t *Tracker) TodaySummary() (DailySummary, error) {
	p, err := t.RequireProfile()
	if err != nil {
		return DailySummary{}, err
	}
	return Summarize(t.Today(), p.DailyTargetKcal)
}
