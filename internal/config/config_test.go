package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad url", func(c *Config) { c.API.BaseURL = "not a url" }, "api.base_url"},
		{"ftp url", func(c *Config) { c.API.BaseURL = "ftp://x" }, "api.base_url"},
		{"zero timeout", func(c *Config) { c.API.TimeoutSeconds = 0 }, "api.timeout_seconds"},
		{"bad listen", func(c *Config) { c.Callback.Listen = "nope" }, "callback.listen"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := Validate(cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestValidateIgnoresListenWhenCallbackDisabled(t *testing.T) {
	cfg := Default()
	cfg.Callback.Enabled = false
	cfg.Callback.Listen = "nope"
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEnsureUserConfigWritesDefaultsOnce(t *testing.T) {
	dir := t.TempDir()

	path, err := EnsureUserConfig(dir)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("bootstrapped config = %+v, want defaults", cfg)
	}

	// Second run must keep the existing file.
	cfg.API.BaseURL = "http://tracker.example.com"
	if err := SaveAtomic(path, cfg); err != nil {
		t.Fatal(err)
	}
	again, err := EnsureUserConfig(dir)
	if err != nil {
		t.Fatal(err)
	}
	if again != path {
		t.Errorf("path changed: %q vs %q", again, path)
	}
	reloaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.API.BaseURL != "http://tracker.example.com" {
		t.Errorf("bootstrap overwrote user config: %+v", reloaded)
	}
}

func TestSaveAtomicKeepsBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")

	if err := SaveAtomic(path, Default()); err != nil {
		t.Fatal(err)
	}
	cfg := Default()
	cfg.API.TimeoutSeconds = 10
	if err := SaveAtomic(path, cfg); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(path + ".bak"); err != nil {
		t.Errorf("no backup written: %v", err)
	}
	reloaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.API.TimeoutSeconds != 10 {
		t.Errorf("timeout = %d, want 10", reloaded.API.TimeoutSeconds)
	}
}

func TestSaveAtomicRefusesInvalid(t *testing.T) {
	cfg := Default()
	cfg.API.BaseURL = ""
	if err := SaveAtomic(filepath.Join(t.TempDir(), "config.yml"), cfg); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestDataDirEnvOverride(t *testing.T) {
	t.Setenv("JOBTRACK_DATA_DIR", "/tmp/jobtrack-test")
	dir, err := DataDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != "/tmp/jobtrack-test" {
		t.Errorf("dir = %q", dir)
	}
}
