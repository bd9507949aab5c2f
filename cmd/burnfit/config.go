package burnfit

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/Lalitdesh1/BurnFit/internal/secret"
	"github.com/Lalitdesh1/BurnFit/internal/service"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage burnfit local configuration",
}

var (
	cfgCoachModel string
	cfgFlashModel string
	cfgStoreURL   string
	cfgAPIKey     string
	cfgDeleteKey  bool
)

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set configuration values",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			updates := 0
			if cmd.Flags().Changed("coach-model") {
				if err := service.SetConfig(sqldb, service.ConfigCoachModel, cfgCoachModel); err != nil {
					return err
				}
				updates++
			}
			if cmd.Flags().Changed("flash-model") {
				if err := service.SetConfig(sqldb, service.ConfigFlashModel, cfgFlashModel); err != nil {
					return err
				}
				updates++
			}
			if cmd.Flags().Changed("store-url") {
				if err := service.SetConfig(sqldb, service.ConfigStoreURL, cfgStoreURL); err != nil {
					return err
				}
				updates++
			}
			if updates == 0 {
				return fmt.Errorf("set at least one flag")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %d config value(s)\n", updates)
			return nil
		})
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			cfg, err := service.ListConfig(sqldb)
			if err != nil {
				return err
			}
			keys := make([]string, 0, len(cfg))
			for k := range cfg {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintln(cmd.OutOrStdout(), "KEY\tVALUE")
			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", k, cfg[k])
			}
			return nil
		})
	},
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key",
	Short: "Store the Gemini API key in the OS keyring",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfgDeleteKey {
			if err := secret.DeleteAPIKey(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Removed Gemini API key from keyring")
			return nil
		}
		key := cfgAPIKey
		if strings.TrimSpace(key) == "" {
			err := huh.NewInput().
				Title("Gemini API key").
				EchoMode(huh.EchoModePassword).
				Value(&key).
				Run()
			if err != nil {
				return fmt.Errorf("read api key (use --key when not interactive): %w", err)
			}
		}
		if err := secret.SetAPIKey(key); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Stored Gemini API key in keyring")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd, configGetCmd, configSetKeyCmd)

	configSetCmd.Flags().StringVar(&cfgCoachModel, "coach-model", "", "Model used by the coach chat")
	configSetCmd.Flags().StringVar(&cfgFlashModel, "flash-model", "", "Model used for estimates and quick suggestions")
	configSetCmd.Flags().StringVar(&cfgStoreURL, "store-url", "", "Default profile store (sqlite or redis:// URL)")
	configSetKeyCmd.Flags().StringVar(&cfgAPIKey, "key", "", "API key (prompted when empty)")
	configSetKeyCmd.Flags().BoolVar(&cfgDeleteKey, "delete", false, "Remove the stored key")
}
