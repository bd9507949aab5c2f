package burnfit

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/Lalitdesh1/BurnFit/internal/model"
	"github.com/Lalitdesh1/BurnFit/internal/service"
)

var (
	loginGoogle bool
	loginGuest  bool
	logoutYes   bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in on this device",
	RunE: func(cmd *cobra.Command, args []string) error {
		if loginGoogle == loginGuest {
			return fmt.Errorf("choose exactly one of --google or --guest")
		}
		method := model.AuthGuest
		if loginGoogle {
			method = model.AuthGoogle
		}
		return withTracker(cmd, false, func(ctx context.Context, _ *sql.DB, t *service.Tracker) error {
			if err := service.Login(ctx, t, string(method)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in (%s)\n", method)
			if _, err := t.RequireProfile(); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Next: run 'burnfit profile setup' to get your daily target.")
			}
			return nil
		})
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and erase the profile, entries, and session from this device",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !logoutYes {
			confirmed := false
			err := huh.NewConfirm().
				Title("Log out and delete all local BurnFit data?").
				Affirmative("Delete").
				Negative("Cancel").
				Value(&confirmed).
				Run()
			if err != nil {
				return fmt.Errorf("confirm logout (use --yes when not interactive): %w", err)
			}
			if !confirmed {
				fmt.Fprintln(cmd.OutOrStdout(), "Logout cancelled")
				return nil
			}
		}
		return withTracker(cmd, false, func(ctx context.Context, _ *sql.DB, t *service.Tracker) error {
			if err := service.Logout(ctx, t); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out; local data cleared")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(loginCmd, logoutCmd)

	loginCmd.Flags().BoolVar(&loginGoogle, "google", false, "Sign in with Google")
	loginCmd.Flags().BoolVar(&loginGuest, "guest", false, "Continue as guest")
	logoutCmd.Flags().BoolVar(&logoutYes, "yes", false, "Skip the confirmation prompt")
}
