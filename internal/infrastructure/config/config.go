package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the full client configuration, read from the environment.
type Config struct {
	// APIBaseURL is the root of the remote student support API.
	APIBaseURL string        `env:"SUPPORT_API_URL, default=https://api-student-support-app.vercel.app/api"`
	APITimeout time.Duration `env:"SUPPORT_API_TIMEOUT, default=15s"`

	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=true"`

	Storage StorageConfig
	Redis   RedisConfig
}

// StorageConfig selects where the session token and profile are persisted.
type StorageConfig struct {
	// Backend is "file" or "redis".
	Backend string `env:"STORAGE_BACKEND, default=file"`
	// Path overrides the state file location for the file backend.
	Path string `env:"STORAGE_PATH"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}

// StatePath resolves the file-backend state location: STORAGE_PATH when
// set, otherwise ~/.supportctl/state.json.
func (c *Config) StatePath() (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".supportctl", "state.json"), nil
}
