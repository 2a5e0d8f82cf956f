package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileConfig is the optional CLI configuration, read from
// $XDG_CONFIG_HOME/notekeeper/config.yaml (or the platform equivalent).
type fileConfig struct {
	StorePath string `yaml:"store_path"`
}

// loadFileConfig parses the config file at path. A missing file is not an
// error; it yields the zero config.
func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("cannot read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

func defaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "notekeeper", "config.yaml"), nil
}

func defaultStorePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "notekeeper", "notekeeper.json"), nil
}

// resolveStorePath picks the store slot: --store flag, then
// $NOTEKEEPER_STORE, then the config file, then the per-user default.
func resolveStorePath() (string, error) {
	if storePath != "" {
		return storePath, nil
	}
	if env := os.Getenv("NOTEKEEPER_STORE"); env != "" {
		return env, nil
	}

	cfgPath, err := defaultConfigPath()
	if err == nil {
		cfg, err := loadFileConfig(cfgPath)
		if err != nil {
			return "", err
		}
		if cfg.StorePath != "" {
			return cfg.StorePath, nil
		}
	}

	return defaultStorePath()
}
