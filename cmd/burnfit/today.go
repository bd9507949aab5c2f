package burnfit

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Lalitdesh1/BurnFit/internal/service"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's intake, calories burned, and progress against your target",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, true, func(ctx context.Context, _ *sql.DB, t *service.Tracker) error {
			s, err := t.TodaySummary()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render("BurnFit · "+s.Date))
			fmt.Fprintf(out, "%s %d kcal\n", labelStyle.Render("Intake:"), s.Intake)
			fmt.Fprintf(out, "%s %d kcal\n", labelStyle.Render("Burned:"), s.Burned)
			fmt.Fprintf(out, "%s %d kcal\n", labelStyle.Render("Net:"), s.Net)
			fmt.Fprintf(out, "%s %d kcal\n", labelStyle.Render("Target:"), s.Target)
			remaining := goodStyle.Render(fmt.Sprintf("%d kcal", s.Remaining))
			if s.Remaining < 0 {
				remaining = overStyle.Render(fmt.Sprintf("%d kcal", s.Remaining))
			}
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Remaining:"), remaining)
			fmt.Fprintf(out, "%s %s %d%%\n", labelStyle.Render("Progress:"), progressBar(s.ProgressPct), s.ProgressPct)
			fmt.Fprintf(out, "%s %d\n", labelStyle.Render("Burn Score:"), s.BurnScore)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
