package secret

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	serviceName = "burnfit"
	apiKeyUser  = "gemini-api-key"
)

var (
	// ErrNotFound is returned when no API key is stored in the keyring.
	ErrNotFound = errors.New("api key not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring cannot be reached.
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetAPIKey reads the Gemini API key from the OS keyring.
func GetAPIKey() (string, error) {
	key, err := keyring.Get(serviceName, apiKeyUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return key, nil
}

func SetAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("api key cannot be empty")
	}
	if err := keyring.Set(serviceName, apiKeyUser, key); err != nil {
		return fmt.Errorf("store api key in keyring: %w", err)
	}
	return nil
}

func DeleteAPIKey() error {
	if err := keyring.Delete(serviceName, apiKeyUser); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete api key from keyring: %w", err)
	}
	return nil
}
