package service_test

import (
	"testing"
	"time"

	"github.com/Lalitdesh1/BurnFit/internal/model"
	"github.com/Lalitdesh1/BurnFit/internal/service"
)

func TestRangeStatsFillsEmptyDays(t *testing.T) {
	t.Parallel()

	entries := []model.Entry{
		entryAt("today", model.KindIntake, 500, fixedNow),
		entryAt("two-days-ago", model.KindExercise, 200, fixedNow.AddDate(0, 0, -2)),
		entryAt("old", model.KindIntake, 999, fixedNow.AddDate(0, 0, -10)),
	}
	days, err := service.RangeStats(entries, fixedNow.AddDate(0, 0, -2), fixedNow)
	if err != nil {
		t.Fatalf("range stats: %v", err)
	}
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	if days[0].Date != "2026-02-18" || days[0].Burned != 200 {
		t.Fatalf("unexpected first day: %+v", days[0])
	}
	if days[1].Intake != 0 || days[1].Burned != 0 {
		t.Fatalf("expected empty middle day, got %+v", days[1])
	}
	if days[2].Date != "2026-02-20" || days[2].Intake != 500 {
		t.Fatalf("unexpected last day: %+v", days[2])
	}
}

func TestRangeStatsRejectsInvertedRange(t *testing.T) {
	t.Parallel()

	if _, err := service.RangeStats(nil, fixedNow, fixedNow.AddDate(0, 0, -1)); err == nil {
		t.Fatalf("expected error for inverted range")
	}
}

func TestHistoryReport(t *testing.T) {
	t.Parallel()

	entries := []model.Entry{
		entryAt("d0-meal", model.KindIntake, 2100, fixedNow),
		entryAt("d0-run", model.KindExercise, 100, fixedNow.Add(-time.Hour)),
		entryAt("d1-meal", model.KindIntake, 1000, fixedNow.AddDate(0, 0, -1)),
	}
	report, err := service.History(entries, fixedNow, 7, 2000, 0.10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(report.Days) != 7 || report.FromDate != "2026-02-14" || report.ToDate != "2026-02-20" {
		t.Fatalf("unexpected range: %s..%s (%d days)", report.FromDate, report.ToDate, len(report.Days))
	}
	if report.TotalIntake != 3100 || report.TotalBurned != 100 {
		t.Fatalf("unexpected totals: %+v", report)
	}
	if report.DaysWithEntries != 2 || report.WithinTargetDays != 1 {
		t.Fatalf("expected 2 active days and 1 within target, got %d/%d", report.DaysWithEntries, report.WithinTargetDays)
	}
	if report.AverageNetPerDay != 1500 {
		t.Fatalf("expected average net 1500, got %v", report.AverageNetPerDay)
	}
	if report.Streaks.Logging != (service.Streak{Current: 2, Longest: 2}) {
		t.Fatalf("unexpected logging streak: %+v", report.Streaks.Logging)
	}
	if report.Streaks.Exercise != (service.Streak{Current: 1, Longest: 1}) {
		t.Fatalf("unexpected exercise streak: %+v", report.Streaks.Exercise)
	}
	if report.Streaks.WithinTarget != (service.Streak{Current: 1, Longest: 1}) {
		t.Fatalf("unexpected within-target streak: %+v", report.Streaks.WithinTarget)
	}
}

func TestHistoryValidatesInput(t *testing.T) {
	t.Parallel()

	if _, err := service.History(nil, fixedNow, 0, 2000, 0.1); err == nil {
		t.Fatalf("expected error for zero days")
	}
	if _, err := service.History(nil, fixedNow, 7, 0, 0.1); err == nil {
		t.Fatalf("expected error for zero target")
	}
}
