package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Lalitdesh1/BurnFit/internal/model"
)

const exportVersion = 1

type ExportData struct {
	Version    int            `json:"version"`
	ExportedAt time.Time      `json:"exported_at"`
	Profile    *model.Profile `json:"profile,omitempty"`
	Entries    []model.Entry  `json:"entries"`
}

type ImportMode string

const (
	ImportModeFail    ImportMode = "fail"
	ImportModeSkip    ImportMode = "skip"
	ImportModeMerge   ImportMode = "merge"
	ImportModeReplace ImportMode = "replace"
)

type ImportOptions struct {
	Mode   ImportMode
	DryRun bool
}

type ImportReport struct {
	Inserted  int      `json:"inserted"`
	Updated   int      `json:"updated"`
	Skipped   int      `json:"skipped"`
	Conflicts int      `json:"conflicts"`
	Warnings  []string `json:"warnings,omitempty"`
}

func ExportSnapshot(t *Tracker) *ExportData {
	data := &ExportData{
		Version:    exportVersion,
		ExportedAt: t.Now().UTC(),
		Entries:    t.Ledger.Entries(),
	}
	if t.Profile != nil {
		p := *t.Profile
		data.Profile = &p
	}
	return data
}

func normalizeImportMode(mode ImportMode) ImportMode {
	switch mode {
	case ImportModeFail, ImportModeSkip, ImportModeReplace:
		return mode
	default:
		return ImportModeMerge
	}
}

// ImportSnapshot folds data into the tracker. Entries are matched by id;
// invalid entries are skipped with a warning and entries without an id get a
// new one. The profile is taken from data in replace mode, or when none is
// set up yet.
func ImportSnapshot(ctx context.Context, t *Tracker, data *ExportData, opts ImportOptions) (ImportReport, error) {
	report := ImportReport{}
	if data == nil {
		return report, fmt.Errorf("import data is empty")
	}
	mode := normalizeImportMode(opts.Mode)

	existing := t.Ledger.Entries()
	if mode == ImportModeReplace {
		existing = nil
	}
	index := make(map[string]int, len(existing))
	for i, e := range existing {
		index[e.ID] = i
	}

	merged := existing
	for i, e := range data.Entries {
		if e.Kind != model.KindIntake && e.Kind != model.KindExercise {
			report.Skipped++
			report.Warnings = append(report.Warnings, fmt.Sprintf("entry %d: invalid type %q", i+1, e.Kind))
			continue
		}
		if e.Calories <= 0 {
			report.Skipped++
			report.Warnings = append(report.Warnings, fmt.Sprintf("entry %d: calories must be > 0", i+1))
			continue
		}
		if strings.TrimSpace(e.ID) == "" {
			e.ID = uuid.New().String()
		}
		if pos, ok := index[e.ID]; ok {
			report.Conflicts++
			switch mode {
			case ImportModeFail:
				return report, fmt.Errorf("entry %s already exists", e.ID)
			case ImportModeSkip:
				report.Skipped++
			default:
				merged[pos] = e
				report.Updated++
			}
			continue
		}
		index[e.ID] = len(merged)
		merged = append(merged, e)
		report.Inserted++
	}

	var profile *model.Profile
	if data.Profile != nil && (mode == ImportModeReplace || t.Profile == nil) {
		p := *data.Profile
		if p.SetupComplete && p.DailyTargetKcal <= 0 {
			report.Warnings = append(report.Warnings, "profile: daily target must be > 0, profile not imported")
		} else {
			profile = &p
		}
	}

	if opts.DryRun {
		return report, nil
	}

	sort.SliceStable(merged, func(i, j int) bool { return merged[i].TimestampMs > merged[j].TimestampMs })
	t.Ledger = NewLedger(merged).WithClock(t.Now)
	if err := t.Store.SaveLedger(ctx, t.Ledger.Entries()); err != nil {
		return report, fmt.Errorf("save ledger: %w", err)
	}
	if profile != nil {
		t.Profile = profile
		if err := t.SaveProfile(ctx); err != nil {
			return report, err
		}
	}
	return report, nil
}

var csvHeader = []string{"id", "type", "calories", "timestamp", "description"}

// WriteEntriesCSV writes entries with RFC3339 timestamps in loc, keeping
// millisecond precision.
func WriteEntriesCSV(w io.Writer, entries []model.Entry, loc *time.Location) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write export csv header: %w", err)
	}
	for _, e := range entries {
		record := []string{
			e.ID,
			string(e.Kind),
			strconv.Itoa(e.Calories),
			e.Time().In(loc).Format(time.RFC3339Nano),
			e.Description,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write export csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush export csv: %w", err)
	}
	return nil
}

func ReadEntriesCSV(r io.Reader) ([]model.Entry, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read import csv: %w", err)
	}
	if len(records) <= 1 {
		return nil, fmt.Errorf("import csv contains no data rows")
	}
	out := make([]model.Entry, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		row := records[i]
		if len(row) != len(csvHeader) {
			return nil, fmt.Errorf("csv row %d has %d columns, expected %d", i+1, len(row), len(csvHeader))
		}
		calories, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil {
			return nil, fmt.Errorf("csv row %d calories: %w", i+1, err)
		}
		ts, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(row[3]))
		if err != nil {
			return nil, fmt.Errorf("csv row %d timestamp: %w", i+1, err)
		}
		out = append(out, model.Entry{
			ID:          strings.TrimSpace(row[0]),
			Kind:        model.EntryKind(strings.ToLower(strings.TrimSpace(row[1]))),
			Calories:    calories,
			TimestampMs: ts.UnixMilli(),
			Description: row[4],
		})
	}
	return out, nil
}
