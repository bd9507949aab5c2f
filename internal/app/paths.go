package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Lalitdesh1/BurnFit/internal/secret"
)

const (
	appDirName = "burnfit"
	dbFileName = "burnfit.db"
	logDirName = "logs"

	EnvAPIKey     = "GEMINI_API_KEY"
	EnvCoachModel = "BURNFIT_COACH_MODEL"
	EnvFlashModel = "BURNFIT_FLASH_MODEL"
	EnvRedisURL   = "BURNFIT_REDIS_URL"
)

func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

func DefaultDBPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dbFileName), nil
}

func DefaultLogDir() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, logDirName), nil
}

func EnsureDBDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db directory: %w", err)
	}
	return nil
}

// LoadDotEnv loads .env from the working directory when it exists. Variables
// already set in the environment win.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ResolveAPIKey returns the Gemini key from the environment, then the OS
// keyring. An empty key with a nil error means none is configured.
func ResolveAPIKey() (string, error) {
	if key := strings.TrimSpace(os.Getenv(EnvAPIKey)); key != "" {
		return key, nil
	}
	key, err := secret.GetAPIKey()
	if err != nil {
		if errors.Is(err, secret.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return key, nil
}
