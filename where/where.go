// Package where resolves application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/episodic-cli/episodic/constant"
	"github.com/episodic-cli/episodic/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the default configuration directory.
const EnvConfigPath = "EPISODIC_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the configuration directory.
// EPISODIC_CONFIG_PATH wins over the platform default from os.UserConfigDir.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Episodic))
}

// ConfigFile is the TOML file viper reads and writes.
func ConfigFile() string {
	return filepath.Join(Config(), constant.Episodic+".toml")
}

// Logs resolves the directory holding daily log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Cache resolves the directory for cached release metadata.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(Config(), "cache")
		return ensureDir(base)
	}
	return ensureDir(filepath.Join(base, constant.Episodic))
}
