// Package auth provides a high-level API for persisting and retrieving the Gemini API key.
package auth

import (
	"errors"
	"os"
	"strings"

	"github.com/episodic-cli/episodic/constant"
	"github.com/episodic-cli/episodic/key"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
)

const (
	service = constant.Episodic
	user    = "gemini-api-key"
)

// ErrNoAPIKey is returned when no source provides an API key.
var ErrNoAPIKey = errors.New("no Gemini API key found, set API_KEY or run `episodic auth set`")

// EnvVars lists the environment variables consulted for the key, in order.
var EnvVars = []string{"API_KEY", "GEMINI_API_KEY"}

// Source names where a resolved key came from.
type Source string

const (
	SourceEnv     Source = "environment"
	SourceConfig  Source = "config"
	SourceKeyring Source = "keyring"
)

// SetAPIKey persists the API key to the system keyring.
func SetAPIKey(apiKey string) error {
	return keyring.Set(service, user, apiKey)
}

// APIKey retrieves the API key from the system keyring.
func APIKey() (string, error) {
	return keyring.Get(service, user)
}

// DeleteAPIKey removes the API key from the system keyring.
func DeleteAPIKey() error {
	return keyring.Delete(service, user)
}

// ResolveAPIKey walks the environment, the configuration and the keyring and
// returns the first non-blank key together with where it was found.
func ResolveAPIKey() (string, Source, error) {
	for _, env := range EnvVars {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			return v, SourceEnv, nil
		}
	}

	if v := strings.TrimSpace(viper.GetString(key.GeminiAPIKey)); v != "" {
		return v, SourceConfig, nil
	}

	v, err := APIKey()
	switch {
	case errors.Is(err, keyring.ErrNotFound):
		return "", "", ErrNoAPIKey
	case err != nil:
		return "", "", errors.Join(ErrNoAPIKey, err)
	case strings.TrimSpace(v) == "":
		return "", "", ErrNoAPIKey
	}

	return strings.TrimSpace(v), SourceKeyring, nil
}
