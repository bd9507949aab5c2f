package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/Lalitdesh1/BurnFit/internal/model"
)

// Ledger is the in-memory, newest-first list of logged events.
type Ledger struct {
	entries []model.Entry
	now     func() time.Time
	newID   func() string
}

func NewLedger(entries []model.Entry) *Ledger {
	cp := make([]model.Entry, len(entries))
	copy(cp, entries)
	return &Ledger{
		entries: cp,
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}
}

// WithClock replaces the wall clock used for new entries.
func (l *Ledger) WithClock(now func() time.Time) *Ledger {
	l.now = now
	return l
}

// Add records a new event at the front of the ledger. It never fails;
// callers validate calories and description first.
func (l *Ledger) Add(kind model.EntryKind, calories int, description string) model.Entry {
	e := model.Entry{
		ID:          l.newID(),
		Kind:        kind,
		Calories:    calories,
		TimestampMs: l.now().UnixMilli(),
		Description: description,
	}
	l.entries = append([]model.Entry{e}, l.entries...)
	return e
}

// Entries returns a copy of the ledger, newest first.
func (l *Ledger) Entries() []model.Entry {
	out := make([]model.Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Ledger) Len() int {
	return len(l.entries)
}

// Filter returns entries of kind (all kinds when empty), newest first, capped
// at limit when limit > 0.
func (l *Ledger) Filter(kind model.EntryKind, limit int) []model.Entry {
	out := make([]model.Entry, 0)
	for _, e := range l.entries {
		if kind != "" && e.Kind != kind {
			continue
		}
		out = append(out, e)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
