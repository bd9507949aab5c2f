package burnfit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Lalitdesh1/BurnFit/internal/app"
	"github.com/Lalitdesh1/BurnFit/internal/logger"
)

var (
	dbPath   string
	storeURL string
	debugLog bool
)

var rootCmd = &cobra.Command{
	Use:   "burnfit",
	Short: "burnfit balances calories eaten against calories burned",
	Long:  "burnfit is a calorie-balance tracker with a daily target from your biometrics, intake and exercise logging, photo and text calorie estimates, and an AI coach.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := app.LoadDotEnv(""); err != nil {
			return err
		}
		return initLogging(cmd)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
	rootCmd.PersistentFlags().StringVar(&storeURL, "store", "", "Profile store: sqlite (default) or a redis:// URL")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "Verbose logging mirrored to stderr")
}

// initLogging keeps the log file next to the database so a custom --db gets
// its own logs.
func initLogging(cmd *cobra.Command) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	return logger.Init(logger.Config{
		Debug:  debugLog,
		LogDir: filepath.Join(filepath.Dir(path), "logs"),
		Stderr: cmd.ErrOrStderr(),
	})
}
