package burnfit

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Lalitdesh1/BurnFit/internal/service"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, false, func(ctx context.Context, _ *sql.DB, t *service.Tracker) error {
			report, err := service.RunDoctor(ctx, t, doctorFix)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Invalid type entries: %d\n", report.InvalidKindEntries)
			fmt.Fprintf(out, "Non-positive entries: %d\n", report.NonPositiveEntries)
			fmt.Fprintf(out, "Duplicate entry ids: %d\n", report.DuplicateEntryIDs)
			fmt.Fprintf(out, "Future-dated entries: %d\n", report.FutureEntries)
			fmt.Fprintf(out, "Search history overflow: %d\n", report.SearchHistoryOverflow)
			fmt.Fprintf(out, "Invalid daily target: %t\n", report.InvalidTarget)
			if doctorFix {
				fmt.Fprintf(out, "Removed entries: %d\n", report.RemovedEntries)
				fmt.Fprintf(out, "Trimmed searches: %d\n", report.TrimmedSearchHistory)
				// Re-check after fixes so exit status reflects final state.
				report, err = service.RunDoctor(ctx, t, false)
				if err != nil {
					return err
				}
			}
			if !report.Healthy() {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Drop invalid entries and trim the search history")
}
