package service_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/Lalitdesh1/BurnFit/internal/model"
	"github.com/Lalitdesh1/BurnFit/internal/service"
	"github.com/Lalitdesh1/BurnFit/internal/store"
)

func TestExportImportRoundTripIntoEmptyStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	src := newSetupTracker(t, store.NewMemory())
	if _, err := src.AddEntry(ctx, model.KindIntake, 420, "Poha"); err != nil {
		t.Fatalf("add entry: %v", err)
	}
	if _, err := src.AddEntry(ctx, model.KindExercise, 150, "Swim"); err != nil {
		t.Fatalf("add entry: %v", err)
	}
	data := service.ExportSnapshot(src)

	dstStore := store.NewMemory()
	dst := newTracker(t, dstStore)
	report, err := service.ImportSnapshot(ctx, dst, data, service.ImportOptions{})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if report.Inserted != 2 || report.Conflicts != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}

	reloaded := newTracker(t, dstStore)
	if reloaded.Profile == nil || reloaded.Profile.DailyTargetKcal != 1609 {
		t.Fatalf("expected profile imported, got %+v", reloaded.Profile)
	}
	if got := reloaded.Today(); got.Intake != 420 || got.Burned != 150 {
		t.Fatalf("unexpected imported stats: %+v", got)
	}
}

func TestImportModes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	seed := []model.Entry{entryAt("a", model.KindIntake, 100, fixedNow.Add(-time.Hour))}
	incoming := &service.ExportData{Entries: []model.Entry{
		entryAt("a", model.KindIntake, 300, fixedNow.Add(-time.Hour)),
		entryAt("b", model.KindExercise, 50, fixedNow),
		entryAt("bad", model.KindIntake, 0, fixedNow),
	}}

	newSeeded := func() *service.Tracker {
		st := store.NewMemory()
		if err := st.SaveLedger(ctx, seed); err != nil {
			t.Fatalf("seed ledger: %v", err)
		}
		return newTracker(t, st)
	}

	if _, err := service.ImportSnapshot(ctx, newSeeded(), incoming, service.ImportOptions{Mode: service.ImportModeFail}); err == nil {
		t.Fatalf("expected conflict error in fail mode")
	}

	skip := newSeeded()
	report, err := service.ImportSnapshot(ctx, skip, incoming, service.ImportOptions{Mode: service.ImportModeSkip})
	if err != nil {
		t.Fatalf("skip import: %v", err)
	}
	if report.Inserted != 1 || report.Skipped != 2 || skip.Today().Intake != 100 {
		t.Fatalf("unexpected skip result: %+v intake=%d", report, skip.Today().Intake)
	}

	merge := newSeeded()
	report, err = service.ImportSnapshot(ctx, merge, incoming, service.ImportOptions{Mode: service.ImportModeMerge})
	if err != nil {
		t.Fatalf("merge import: %v", err)
	}
	if report.Updated != 1 || merge.Today().Intake != 300 || len(report.Warnings) != 1 {
		t.Fatalf("unexpected merge result: %+v intake=%d", report, merge.Today().Intake)
	}
	if merge.Ledger.Entries()[0].ID != "b" {
		t.Fatalf("expected ledger re-sorted newest first")
	}

	dry := newSeeded()
	if _, err := service.ImportSnapshot(ctx, dry, incoming, service.ImportOptions{Mode: service.ImportModeReplace, DryRun: true}); err != nil {
		t.Fatalf("dry run import: %v", err)
	}
	if dry.Ledger.Len() != 1 || dry.Today().Intake != 100 {
		t.Fatalf("dry run must not change the ledger")
	}

	replace := newSeeded()
	if _, err := service.ImportSnapshot(ctx, replace, &service.ExportData{Entries: incoming.Entries[1:2]}, service.ImportOptions{Mode: service.ImportModeReplace}); err != nil {
		t.Fatalf("replace import: %v", err)
	}
	if replace.Ledger.Len() != 1 || replace.Today().Intake != 0 || replace.Today().Burned != 50 {
		t.Fatalf("unexpected replace result: %+v", replace.Ledger.Entries())
	}
}

func TestEntriesCSVRoundTrip(t *testing.T) {
	t.Parallel()

	entries := []model.Entry{
		entryAt("x", model.KindIntake, 250, fixedNow.Add(1234*time.Millisecond)),
		{ID: "y", Kind: model.KindExercise, Calories: 90, TimestampMs: fixedNow.Add(-time.Hour).UnixMilli(), Description: "Stairs, then stretch"},
	}
	var buf bytes.Buffer
	if err := service.WriteEntriesCSV(&buf, entries, time.UTC); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	got, err := service.ReadEntriesCSV(&buf)
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(got) != 2 || got[1].Description != "Stairs, then stretch" || got[1].Kind != model.KindExercise {
		t.Fatalf("unexpected entries: %+v", got)
	}
	for i := range entries {
		if got[i].TimestampMs != entries[i].TimestampMs {
			t.Fatalf("entry %d: timestamp %d did not survive, got %d", i, entries[i].TimestampMs, got[i].TimestampMs)
		}
	}
}

func TestReadEntriesCSVRejectsBadRows(t *testing.T) {
	t.Parallel()

	if _, err := service.ReadEntriesCSV(bytes.NewBufferString("id,type,calories,timestamp,description\n")); err == nil {
		t.Fatalf("expected error for header-only csv")
	}
	if _, err := service.ReadEntriesCSV(bytes.NewBufferString("id,type,calories,timestamp,description\na,intake,lots,2026-02-20T12:00:00Z,x\n")); err == nil {
		t.Fatalf("expected error for bad calories")
	}
}
