package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"jobtrack/internal/api"
	"jobtrack/internal/config"
	"jobtrack/internal/session"
	"jobtrack/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "jobtrack",
	Short: "Terminal client for the job application tracker",
	Long: `jobtrack is a terminal client for a job-application tracker backend.
Sign in, browse your applications, and update them without leaving the
shell. All data lives on the server; the client only holds your session.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initEnv)

	rootCmd.PersistentFlags().Bool("no-keyring", false, "keep the session in memory instead of the OS keychain")
	_ = viper.BindPFlag("no_keyring", rootCmd.PersistentFlags().Lookup("no-keyring"))
}

func initEnv() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("JOBTRACK")
	// JOBTRACK_API_BASE_URL overrides api.base_url, and so on.
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

// loadConfig bootstraps the user config on first run and applies env
// overrides on top of the file.
func loadConfig() (config.Config, string, error) {
	dataDir, err := config.DataDir()
	if err != nil {
		return config.Config{}, "", fmt.Errorf("resolve data dir: %w", err)
	}
	path, err := config.EnsureUserConfig(dataDir)
	if err != nil {
		return config.Config{}, "", fmt.Errorf("config bootstrap: %w", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, "", fmt.Errorf("config load (%s): %w", path, err)
	}

	if v := viper.GetString("api.base_url"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := viper.GetString("callback.listen"); v != "" {
		cfg.Callback.Listen = v
	}

	if err := config.Validate(cfg); err != nil {
		return config.Config{}, "", err
	}
	return cfg, path, nil
}

func newStore() session.Store {
	if viper.GetBool("no_keyring") {
		return session.NewMemory()
	}
	return session.NewKeyring()
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	dataDir, err := config.DataDir()
	if err != nil {
		return err
	}

	// One client per machine: the session store has no cross-instance
	// sync, so a second copy would fight over it.
	lock := flock.New(filepath.Join(dataDir, "jobtrack.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire instance lock: %w", err)
	}
	if !locked {
		return errors.New("another jobtrack instance is already running")
	}
	defer func() { _ = lock.Unlock() }()

	store := newStore()
	client := api.New(cfg.API.BaseURL, store, cfg.Timeout())
	return tui.New(cfg, store, client).Run(cmd.Context())
}
