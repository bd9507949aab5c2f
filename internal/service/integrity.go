package service

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Lalitdesh1/BurnFit/internal/model"
)

type BackupInfo struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	CreatedAt time.Time `json:"created_at"`
	SizeBytes int64     `json:"size_bytes"`
}

type DoctorReport struct {
	InvalidKindEntries    int  `json:"invalid_kind_entries"`
	NonPositiveEntries    int  `json:"non_positive_entries"`
	DuplicateEntryIDs     int  `json:"duplicate_entry_ids"`
	FutureEntries         int  `json:"future_entries"`
	SearchHistoryOverflow int  `json:"search_history_overflow"`
	InvalidTarget         bool `json:"invalid_target"`
	RemovedEntries        int  `json:"removed_entries,omitempty"`
	TrimmedSearchHistory  int  `json:"trimmed_search_history,omitempty"`
}

func (r DoctorReport) Healthy() bool {
	return r.InvalidKindEntries == 0 &&
		r.NonPositiveEntries == 0 &&
		r.DuplicateEntryIDs == 0 &&
		r.SearchHistoryOverflow == 0 &&
		!r.InvalidTarget
}

// CreateBackup snapshots the open database into outPath with VACUUM INTO and
// writes a sha256 sidecar next to it.
func CreateBackup(db *sql.DB, outPath string) (BackupInfo, error) {
	if strings.TrimSpace(outPath) == "" {
		return BackupInfo{}, fmt.Errorf("backup output path is required")
	}
	if _, err := os.Stat(outPath); err == nil {
		return BackupInfo{}, fmt.Errorf("backup %s already exists", outPath)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return BackupInfo{}, fmt.Errorf("create backup directory: %w", err)
	}
	if _, err := db.Exec(`VACUUM INTO ?`, outPath); err != nil {
		return BackupInfo{}, fmt.Errorf("snapshot database: %w", err)
	}
	checksum, err := fileSHA256(outPath)
	if err != nil {
		return BackupInfo{}, err
	}
	if err := os.WriteFile(outPath+".sha256", []byte(checksum+"\n"), 0o644); err != nil {
		return BackupInfo{}, fmt.Errorf("write checksum file: %w", err)
	}
	st, err := os.Stat(outPath)
	if err != nil {
		return BackupInfo{}, fmt.Errorf("stat backup: %w", err)
	}
	return BackupInfo{Path: outPath, Checksum: checksum, CreatedAt: st.ModTime(), SizeBytes: st.Size()}, nil
}

// RestoreBackup copies a verified backup over dbPath.
func RestoreBackup(backupPath, dbPath string, force bool) error {
	if strings.TrimSpace(backupPath) == "" || strings.TrimSpace(dbPath) == "" {
		return fmt.Errorf("backup path and db path are required")
	}
	if !force {
		if _, err := os.Stat(dbPath); err == nil {
			return fmt.Errorf("target db already exists; use --force to overwrite")
		}
	}
	if expected, err := os.ReadFile(backupPath + ".sha256"); err == nil {
		actual, err := fileSHA256(backupPath)
		if err != nil {
			return err
		}
		if strings.TrimSpace(string(expected)) != actual {
			return fmt.Errorf("backup checksum mismatch")
		}
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("create db directory: %w", err)
	}
	return copyFile(backupPath, dbPath)
}

// RunDoctor checks the ledger and profile for rows the rest of the app would
// never write. With fix, bad entries and duplicate ids are dropped (first
// kept occurrence wins) and the search history is trimmed, then both are saved.
// Future-dated entries are only reported.
func RunDoctor(ctx context.Context, t *Tracker, fix bool) (DoctorReport, error) {
	report := DoctorReport{}
	now := t.Now()
	seen := map[string]bool{}
	kept := make([]model.Entry, 0, t.Ledger.Len())

	for _, e := range t.Ledger.Entries() {
		drop := false
		switch {
		case e.Kind != model.KindIntake && e.Kind != model.KindExercise:
			report.InvalidKindEntries++
			drop = true
		case e.Calories <= 0:
			report.NonPositiveEntries++
			drop = true
		case seen[e.ID]:
			report.DuplicateEntryIDs++
			drop = true
		}
		if e.Time().After(now) {
			report.FutureEntries++
		}
		if !drop {
			seen[e.ID] = true
			kept = append(kept, e)
		}
	}

	if t.Profile != nil {
		if n := len(t.Profile.SearchHistory) - model.MaxSearchHistory; n > 0 {
			report.SearchHistoryOverflow = n
		}
		if t.Profile.SetupComplete && t.Profile.DailyTargetKcal <= 0 {
			report.InvalidTarget = true
		}
	}

	if !fix {
		return report, nil
	}
	if removed := t.Ledger.Len() - len(kept); removed > 0 {
		t.Ledger = NewLedger(kept).WithClock(t.Now)
		if err := t.Store.SaveLedger(ctx, t.Ledger.Entries()); err != nil {
			return report, fmt.Errorf("doctor save ledger: %w", err)
		}
		report.RemovedEntries = removed
	}
	if report.SearchHistoryOverflow > 0 {
		t.Profile.SearchHistory = t.Profile.SearchHistory[:model.MaxSearchHistory]
		if err := t.SaveProfile(ctx); err != nil {
			return report, fmt.Errorf("doctor save profile: %w", err)
		}
		report.TrimmedSearchHistory = report.SearchHistoryOverflow
	}
	return report, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source file: %w", err)
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create destination file: %w", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy file: %w", err)
	}
	if err := out.Sync(); err != nil {
		return fmt.Errorf("sync destination file: %w", err)
	}
	return nil
}

func fileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file for checksum: %w", err)
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash file: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
