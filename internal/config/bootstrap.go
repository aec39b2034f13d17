package config

import (
	"errors"
	"os"
	"path/filepath"
)

// DataDir resolves where config and lock files live. JOBTRACK_DATA_DIR
// wins so wrappers and tests can relocate everything.
func DataDir() (string, error) {
	if dir := os.Getenv("JOBTRACK_DATA_DIR"); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "jobtrack"), nil
}

// EnsureUserConfig writes a default config on first run and returns the
// config path either way.
func EnsureUserConfig(dataDir string) (string, error) {
	userPath := filepath.Join(dataDir, "config.yml")

	_, err := os.Stat(userPath)
	if err == nil {
		return userPath, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", err
	}
	if err := SaveAtomic(userPath, Default()); err != nil {
		return "", err
	}
	return userPath, nil
}
