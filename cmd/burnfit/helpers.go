package burnfit

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Lalitdesh1/BurnFit/internal/app"
	"github.com/Lalitdesh1/BurnFit/internal/db"
	"github.com/Lalitdesh1/BurnFit/internal/logger"
	"github.com/Lalitdesh1/BurnFit/internal/provider/gemini"
	"github.com/Lalitdesh1/BurnFit/internal/service"
	"github.com/Lalitdesh1/BurnFit/internal/store"
)

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

// withTracker loads the user state from the configured store. With
// requireLogin the command refuses to run until login has been done.
func withTracker(cmd *cobra.Command, requireLogin bool, run func(context.Context, *sql.DB, *service.Tracker) error) error {
	return withDB(func(sqldb *sql.DB) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		st, err := openStore(ctx, sqldb)
		if err != nil {
			return err
		}
		defer st.Close()

		tracker, err := service.LoadTracker(ctx, st)
		if err != nil {
			return err
		}
		if requireLogin {
			if err := tracker.RequireLogin(); err != nil {
				return err
			}
		}
		return run(ctx, sqldb, tracker)
	})
}

// openStore picks the backend from --store, then BURNFIT_REDIS_URL, then the
// store_url config value. Anything empty means the local database.
func openStore(ctx context.Context, sqldb *sql.DB) (store.Store, error) {
	url := strings.TrimSpace(storeURL)
	if url == "" {
		url = strings.TrimSpace(os.Getenv(app.EnvRedisURL))
	}
	if url == "" {
		v, err := service.ConfigOr(sqldb, service.ConfigStoreURL, "")
		if err != nil {
			return nil, err
		}
		url = v
	}

	switch {
	case url == "" || url == "sqlite":
		return store.NewSQLite(sqldb), nil
	case strings.HasPrefix(url, "redis://") || strings.HasPrefix(url, "rediss://"):
		logger.Debug("using redis store")
		return store.NewRedis(ctx, url)
	}
	return nil, fmt.Errorf("unsupported store %q (use sqlite or a redis:// URL)", url)
}

// aiServices holds the optional AI capabilities. Fields stay nil when no API
// key is configured so callers fall back to fixed replies.
type aiServices struct {
	coach  service.CoachingService
	fixer  service.DayFixer
	vision service.VisionService
	text   service.TextEstimator
}

func loadAI(ctx context.Context, cmd *cobra.Command, sqldb *sql.DB) (aiServices, error) {
	key, err := app.ResolveAPIKey()
	if err != nil {
		logger.Warn("api key lookup failed", "err", err)
	}
	if key == "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "No Gemini API key configured (set %s or run 'burnfit config set-key'); AI replies are unavailable.\n", app.EnvAPIKey)
		return aiServices{}, nil
	}

	coachModel, err := modelSetting(sqldb, app.EnvCoachModel, service.ConfigCoachModel, gemini.DefaultCoachModel)
	if err != nil {
		return aiServices{}, err
	}
	flashModel, err := modelSetting(sqldb, app.EnvFlashModel, service.ConfigFlashModel, gemini.DefaultFlashModel)
	if err != nil {
		return aiServices{}, err
	}
	client, err := gemini.New(ctx, gemini.Config{
		APIKey:     key,
		CoachModel: coachModel,
		FlashModel: flashModel,
	})
	if err != nil {
		return aiServices{}, err
	}
	return aiServices{coach: client, fixer: client, vision: client, text: client}, nil
}

// modelSetting prefers the environment over the stored config value.
func modelSetting(sqldb *sql.DB, envKey, configKey, fallback string) (string, error) {
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		return v, nil
	}
	return service.ConfigOr(sqldb, configKey, fallback)
}

func stringPtrIfChanged(cmd *cobra.Command, flag, value string) *string {
	if !cmd.Flags().Changed(flag) {
		return nil
	}
	return &value
}

func intPtrIfChanged(cmd *cobra.Command, flag string, value int) *int {
	if !cmd.Flags().Changed(flag) {
		return nil
	}
	return &value
}

func floatPtrIfChanged(cmd *cobra.Command, flag string, value float64) *float64 {
	if !cmd.Flags().Changed(flag) {
		return nil
	}
	return &value
}

func parsePositiveIntArg(name, value string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be > 0", name)
	}
	return v, nil
}
