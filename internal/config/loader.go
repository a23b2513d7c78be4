package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	configPathEnv     = "CONFIG_PATH"
	defaultConfigPath = "./config.yaml"
)

// Load reads the configuration from the file named by CONFIG_PATH, or from
// ./config.yaml when that variable is unset. See LoadFrom.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv(configPathEnv))
}

// LoadFrom reads the configuration with priority ENV > YAML > env-default tags.
// An empty path falls back to ./config.yaml, and a missing fallback file is
// not an error: the configuration then comes from the environment alone.
// A path given explicitly must exist.
func LoadFrom(path string) (*Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit || !errors.Is(statErr, fs.ErrNotExist):
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// EnvReference renders the environment variables the configuration reads,
// with their defaults.
func EnvReference() (string, error) {
	header := "Environment variables (override " + defaultConfigPath + " and " + configPathEnv + "):"
	text, err := cleanenv.GetDescription(&Config{}, &header)
	if err != nil {
		return "", fmt.Errorf("config: describe env: %w", err)
	}
	return text, nil
}
