package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	API struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"api"`

	Callback struct {
		// Loopback listener for the browser-based login redirect.
		Enabled bool   `yaml:"enabled"`
		Listen  string `yaml:"listen"`
	} `yaml:"callback"`
}

func Default() Config {
	var cfg Config
	cfg.API.BaseURL = "http://localhost:3001"
	cfg.API.TimeoutSeconds = 30
	cfg.Callback.Enabled = true
	cfg.Callback.Listen = "127.0.0.1:38472"
	return cfg
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

func (c Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}
