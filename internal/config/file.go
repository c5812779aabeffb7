package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig is the optional TOML configuration file. Every field is optional;
// environment variables take precedence over values set here.
type FileConfig struct {
	DebugMode *bool          `toml:"debug"`
	HTTP      HTTPSection    `toml:"http"`
	Relay     RelaySection   `toml:"relay"`
	Settings  StoreSection   `toml:"settings"`
	Catalog   CatalogSection `toml:"catalog"`
	Attempts  AttemptSection `toml:"attempts"`
}

type HTTPSection struct {
	Port *int `toml:"port"`
}

type RelaySection struct {
	TimeoutSec *int `toml:"timeout-sec"`
}

type StoreSection struct {
	Backend       *string `toml:"backend"`
	SQLitePath    *string `toml:"sqlite-path"`
	DatabaseURL   *string `toml:"database-url"`
	RedisAddr     *string `toml:"redis-addr"`
	RedisPassword *string `toml:"redis-password"`
	RedisDB       *int    `toml:"redis-db"`
}

type CatalogSection struct {
	ProblemsDir *string `toml:"problems-dir"`
}

type AttemptSection struct {
	TTLSec           *int `toml:"ttl-sec"`
	PruneIntervalSec *int `toml:"prune-interval-sec"`
}

// LoadFile reads a TOML config from path. A missing file is not an error.
func LoadFile(path string) (*FileConfig, error) {
	if path == "" {
		return &FileConfig{}, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return &FileConfig{}, nil
		}
		return nil, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}
