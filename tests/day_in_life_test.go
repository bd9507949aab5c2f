package tests

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDayInLifeFlow(t *testing.T) {
	binPath := buildBurnfitBinary(t)
	dbPath := filepath.Join(t.TempDir(), "burnfit.db")
	initDB(t, binPath, dbPath)

	mustRun(t, binPath, dbPath, "login", "--google")
	setup := mustRun(t, binPath, dbPath, "profile", "setup", "--age", "25", "--height", "175", "--weight", "70", "--goal", "lose", "--diet", "vegetarian")
	if !strings.Contains(setup, "Daily target: 1609 kcal") {
		t.Fatalf("unexpected setup output:\n%s", setup)
	}
	if !strings.Contains(setup, "preference for a vegetarian diet") {
		t.Fatalf("expected setup greeting, got:\n%s", setup)
	}

	mustRun(t, binPath, dbPath, "intake", "add", "--description", "Masala oats", "--calories", "350")
	mustRun(t, binPath, dbPath, "intake", "add", "--calories", "600")
	mustRun(t, binPath, dbPath, "exercise", "add", "--description", "Jog", "--minutes", "30")
	quick := mustRun(t, binPath, dbPath, "exercise", "quick", "2")
	if !strings.Contains(quick, "70 kcal") {
		t.Fatalf("unexpected quick workout output:\n%s", quick)
	}

	today := mustRun(t, binPath, dbPath, "today")
	for _, want := range []string{"Intake: 950 kcal", "Burned: 280 kcal", "Net: 670 kcal", "Target: 1609 kcal", "939 kcal", "59%", "Burn Score: 93"} {
		if !strings.Contains(today, want) {
			t.Fatalf("expected %q in today output:\n%s", want, today)
		}
	}

	entries := mustRun(t, binPath, dbPath, "entries", "list")
	lines := strings.Split(strings.TrimSpace(entries), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header + 4 entries, got %d lines:\n%s", len(lines), entries)
	}
	if !strings.Contains(lines[1], "7-minute home stretching") {
		t.Fatalf("expected newest entry first, got %q", lines[1])
	}
	if !strings.Contains(entries, "\tMeal") {
		t.Fatalf("expected default meal description:\n%s", entries)
	}

	history := mustRun(t, binPath, dbPath, "history", "--days", "3")
	if !strings.Contains(history, "Total: intake 950 kcal | burned 280 kcal") {
		t.Fatalf("unexpected history output:\n%s", history)
	}

	show := mustRun(t, binPath, dbPath, "profile", "show")
	if !strings.Contains(show, "BMI: 22.9 (Normal weight)") {
		t.Fatalf("unexpected profile output:\n%s", show)
	}

	mustRun(t, binPath, dbPath, "doctor")
}

func TestProfileEditKeepsTarget(t *testing.T) {
	binPath := buildBurnfitBinary(t)
	dbPath := filepath.Join(t.TempDir(), "burnfit.db")
	initDB(t, binPath, dbPath)
	loginAndSetup(t, binPath, dbPath)

	out := mustRun(t, binPath, dbPath, "profile", "edit", "--weight", "176", "--weight-unit", "lb")
	if !strings.Contains(out, "daily target: 1609 kcal") {
		t.Fatalf("expected target unchanged, got:\n%s", out)
	}
	out = mustRun(t, binPath, dbPath, "profile", "edit", "--recompute-target")
	if strings.Contains(out, "daily target: 1609 kcal") {
		t.Fatalf("expected target recomputed, got:\n%s", out)
	}
}

func TestLogoutClearsState(t *testing.T) {
	binPath := buildBurnfitBinary(t)
	dbPath := filepath.Join(t.TempDir(), "burnfit.db")
	initDB(t, binPath, dbPath)
	loginAndSetup(t, binPath, dbPath)
	mustRun(t, binPath, dbPath, "intake", "add", "--description", "Dosa", "--calories", "300")

	mustRun(t, binPath, dbPath, "logout", "--yes")

	_, stderr, exit := runBurnfit(t, binPath, dbPath, "today")
	if exit == 0 || !strings.Contains(stderr, "not logged in") {
		t.Fatalf("expected logged out state, exit=%d stderr=%s", exit, stderr)
	}

	mustRun(t, binPath, dbPath, "login", "--guest")
	_, stderr, exit = runBurnfit(t, binPath, dbPath, "today")
	if exit == 0 || !strings.Contains(stderr, "profile setup required") {
		t.Fatalf("expected profile cleared, exit=%d stderr=%s", exit, stderr)
	}
	entries := mustRun(t, binPath, dbPath, "entries", "list")
	if strings.Contains(entries, "Dosa") {
		t.Fatalf("expected entries cleared:\n%s", entries)
	}
}

func TestBackupAndExportRoundTrip(t *testing.T) {
	binPath := buildBurnfitBinary(t)
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "burnfit.db")
	initDB(t, binPath, dbPath)
	loginAndSetup(t, binPath, dbPath)
	mustRun(t, binPath, dbPath, "intake", "add", "--description", "Upma", "--calories", "280")

	backupPath := filepath.Join(dir, "snap.db")
	mustRun(t, binPath, dbPath, "backup", "create", "--out", backupPath)
	if _, err := os.Stat(backupPath + ".sha256"); err != nil {
		t.Fatalf("expected checksum sidecar: %v", err)
	}

	restored := filepath.Join(dir, "restored.db")
	mustRun(t, binPath, restored, "backup", "restore", "--file", backupPath)
	today := mustRun(t, binPath, restored, "today")
	if !strings.Contains(today, "Intake: 280 kcal") {
		t.Fatalf("expected restored intake, got:\n%s", today)
	}

	exportPath := filepath.Join(dir, "export.json")
	mustRun(t, binPath, dbPath, "export", "--out", exportPath)
	other := filepath.Join(dir, "other.db")
	initDB(t, binPath, other)
	mustRun(t, binPath, other, "login", "--guest")
	report := mustRun(t, binPath, other, "import", "--in", exportPath)
	if !strings.Contains(report, "inserted=1") {
		t.Fatalf("unexpected import report:\n%s", report)
	}
	today = mustRun(t, binPath, other, "today")
	if !strings.Contains(today, "Intake: 280 kcal") || !strings.Contains(today, "Target: 1609 kcal") {
		t.Fatalf("expected imported profile and entry, got:\n%s", today)
	}
}
