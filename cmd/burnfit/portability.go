package burnfit

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Lalitdesh1/BurnFit/internal/service"
)

var (
	exportFormat string
	exportOut    string
	importFormat string
	importIn     string
	importMode   string
	importDryRun bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export profile and entries (json) or entries only (csv)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(exportOut) == "" {
			return fmt.Errorf("--out is required")
		}
		return withTracker(cmd, true, func(ctx context.Context, _ *sql.DB, t *service.Tracker) error {
			switch strings.ToLower(strings.TrimSpace(exportFormat)) {
			case "json":
				b, err := json.MarshalIndent(service.ExportSnapshot(t), "", "  ")
				if err != nil {
					return fmt.Errorf("marshal export json: %w", err)
				}
				if err := os.WriteFile(exportOut, b, 0o644); err != nil {
					return fmt.Errorf("write export file: %w", err)
				}
			case "csv":
				f, err := os.Create(exportOut)
				if err != nil {
					return fmt.Errorf("create export csv: %w", err)
				}
				defer f.Close()
				if err := service.WriteEntriesCSV(f, t.Ledger.Entries(), time.Local); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unsupported --format %q (use json or csv)", exportFormat)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported data to %s\n", exportOut)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import profile and entries (json) or entries (csv)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(importIn) == "" {
			return fmt.Errorf("--in is required")
		}
		payload := &service.ExportData{}
		switch strings.ToLower(strings.TrimSpace(importFormat)) {
		case "json":
			raw, err := os.ReadFile(importIn)
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}
			if err := json.Unmarshal(raw, payload); err != nil {
				return fmt.Errorf("parse import json: %w", err)
			}
		case "csv":
			f, err := os.Open(importIn)
			if err != nil {
				return fmt.Errorf("open import csv: %w", err)
			}
			defer f.Close()
			entries, err := service.ReadEntriesCSV(f)
			if err != nil {
				return err
			}
			payload.Entries = entries
		default:
			return fmt.Errorf("unsupported --format %q (use json or csv)", importFormat)
		}

		return withTracker(cmd, true, func(ctx context.Context, _ *sql.DB, t *service.Tracker) error {
			report, err := service.ImportSnapshot(ctx, t, payload, service.ImportOptions{
				Mode:   service.ImportMode(strings.ToLower(strings.TrimSpace(importMode))),
				DryRun: importDryRun,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Import report: inserted=%d updated=%d skipped=%d conflicts=%d\n", report.Inserted, report.Updated, report.Skipped, report.Conflicts)
			for _, w := range report.Warnings {
				fmt.Fprintf(cmd.OutOrStdout(), "warning: %s\n", w)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)

	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Export format: json|csv")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file path")
	importCmd.Flags().StringVar(&importFormat, "format", "json", "Import format: json|csv")
	importCmd.Flags().StringVar(&importIn, "in", "", "Input file path")
	importCmd.Flags().StringVar(&importMode, "mode", "merge", "Conflict mode: fail|skip|merge|replace")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Validate without writing")
}
