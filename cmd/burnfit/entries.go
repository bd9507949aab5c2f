package burnfit

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Lalitdesh1/BurnFit/internal/model"
	"github.com/Lalitdesh1/BurnFit/internal/service"
)

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "Inspect the activity ledger",
}

var (
	entriesKind  string
	entriesLimit int
)

var entriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged entries, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := model.EntryKind(strings.ToLower(strings.TrimSpace(entriesKind)))
		if kind != "" && kind != model.KindIntake && kind != model.KindExercise {
			return fmt.Errorf("invalid --type %q (use intake or exercise)", entriesKind)
		}
		return withTracker(cmd, true, func(ctx context.Context, _ *sql.DB, t *service.Tracker) error {
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tTIME\tTYPE\tKCAL\tDESCRIPTION")
			for _, e := range t.Ledger.Filter(kind, entriesLimit) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\t%s\n", e.ID, e.Time().Local().Format("2006-01-02 15:04"), e.Kind, e.Calories, e.Description)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(entriesCmd)
	entriesCmd.AddCommand(entriesListCmd)

	entriesListCmd.Flags().StringVar(&entriesKind, "type", "", "Filter by type: intake|exercise")
	entriesListCmd.Flags().IntVar(&entriesLimit, "limit", 20, "Max rows (0 for all)")
}
