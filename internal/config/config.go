// Package config handles configuration loading and defaults.
//
// Values are resolved in priority order: built-in defaults, then the user
// config file, then environment variables. Command-line flags override all
// of these and are applied by the caller.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultDBFile is the database path used when nothing else sets one.
	DefaultDBFile = "habits.db"

	configDirName  = "htrackr"
	configFileName = "htrackr.toml"

	envDB = "HTRACKR_DB"
)

// Config holds the resolved tool configuration.
type Config struct {
	// DB is the storage file path. A .json extension selects the JSON
	// backend, anything else the SQLite backend.
	DB string `toml:"db"`

	// Compact selects the reserved dense listing mode by default.
	Compact bool `toml:"compact"`
}

// Load resolves configuration. If explicitPath is non-empty that file must
// exist; otherwise the user config file is loaded when present and skipped
// silently when not.
func Load(explicitPath string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	path := explicitPath
	if path == "" {
		path = findUserConfigFile()
	}
	if path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			if explicitPath != "" || !os.IsNotExist(err) {
				return nil, fmt.Errorf("loading config file %s: %w", path, err)
			}
		}
	}

	loadFromEnv(cfg)

	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.DB = filepath.Join(userConfigDir(), DefaultDBFile)
	cfg.Compact = false
}

func findUserConfigFile() string {
	path := filepath.Join(userConfigDir(), configFileName)
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

func userConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, configDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", configDirName)
}

func loadConfigFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing TOML: %w", err)
	}
	return nil
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv(envDB); v != "" {
		cfg.DB = v
	}
}
