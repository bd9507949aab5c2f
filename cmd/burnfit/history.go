package burnfit

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Lalitdesh1/BurnFit/internal/service"
)

var (
	historyDays         int
	historyTolerancePct float64
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Summarize intake and burn over recent days",
	RunE: func(cmd *cobra.Command, args []string) error {
		if historyTolerancePct < 0 || historyTolerancePct > 100 {
			return fmt.Errorf("--tolerance must be between 0 and 100")
		}
		return withTracker(cmd, true, func(ctx context.Context, _ *sql.DB, t *service.Tracker) error {
			p, err := t.RequireProfile()
			if err != nil {
				return err
			}
			report, err := service.History(t.Ledger.Entries(), t.Now(), historyDays, p.DailyTargetKcal, historyTolerancePct/100)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "DATE\tINTAKE\tBURNED\tNET")
			for _, d := range report.Days {
				fmt.Fprintf(out, "%s\t%d\t%d\t%d\n", d.Date, d.Intake, d.Burned, d.Intake-d.Burned)
			}
			fmt.Fprintf(out, "Total: intake %d kcal | burned %d kcal\n", report.TotalIntake, report.TotalBurned)
			fmt.Fprintf(out, "Average net per active day: %.0f kcal (target %d)\n", report.AverageNetPerDay, report.Target)
			fmt.Fprintf(out, "Days within %.0f%% of target: %d/%d\n", report.TargetTolerancePct, report.WithinTargetDays, report.DaysWithEntries)
			fmt.Fprintf(out, "Streaks (current/longest): logging %d/%d | exercise %d/%d | on target %d/%d\n",
				report.Streaks.Logging.Current, report.Streaks.Logging.Longest,
				report.Streaks.Exercise.Current, report.Streaks.Exercise.Longest,
				report.Streaks.WithinTarget.Current, report.Streaks.WithinTarget.Longest)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyDays, "days", 7, "Number of days ending today")
	historyCmd.Flags().Float64Var(&historyTolerancePct, "tolerance", 10, "Percent band around the target that counts as on track")
}
