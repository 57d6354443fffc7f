package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// Env selects the backend base URL: "development" targets a local
	// backend, "production" targets APIURL.
	Env      string `env:"ALECRIM_ENV,          default=development"`
	APIURL   string `env:"ALECRIM_API_URL"`
	LogLevel string `env:"LOG_LEVEL,            default=info"`

	// SessionPath overrides where the session database lives. Empty means
	// the per-user config directory.
	SessionPath string `env:"ALECRIM_SESSION_PATH"`
	// ExportDir is where downloaded reports are saved.
	ExportDir string `env:"ALECRIM_EXPORT_DIR,  default=."`
}

const developmentBaseURL = "http://localhost:8000/api"

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// Validate catches configurations that cannot produce a usable base URL.
func (c *Config) Validate() error {
	if c.Production() && c.APIURL == "" {
		return fmt.Errorf("config: ALECRIM_API_URL is required when ALECRIM_ENV=production")
	}
	return nil
}

func (c *Config) Production() bool {
	return c.Env == "production"
}

// BaseURL selects the backend root for the current environment. The /api
// prefix is part of the contract, not of the configured host.
func (c *Config) BaseURL() string {
	if c.Production() {
		return strings.TrimRight(c.APIURL, "/") + "/api"
	}
	return developmentBaseURL
}

// SessionDBPath resolves where the session database lives, creating the
// parent directory when needed.
func (c *Config) SessionDBPath() (string, error) {
	if c.SessionPath != "" {
		return c.SessionPath, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve config dir: %w", err)
	}
	dir = filepath.Join(dir, "alecrim")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("config: create config dir: %w", err)
	}
	return filepath.Join(dir, "session.db"), nil
}
