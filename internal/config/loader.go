package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	// ProjectConfigFile is the name of the project-level config file,
	// searched for in the working directory and its parents.
	ProjectConfigFile = "gotex.yaml"
	// UserConfigDir is the directory for user-level config.
	UserConfigDir = ".config/gotex"
	// UserConfigFile is the name of the user-level config file.
	UserConfigFile = "config.yaml"
)

// Loader loads configuration with layered precedence.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a configuration loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load assembles the configuration layers:
//
//  1. defaults
//  2. user config (~/.config/gotex/config.yaml)
//  3. project config (gotex.yaml in the working directory or a parent)
//
// An explicit path skips the search and loads that file over the defaults.
func (l *Loader) Load(explicit string) (*Config, error) {
	if explicit != "" {
		config, err := LoadFromFile(explicit)
		if err != nil {
			return nil, err
		}
		return config, config.Validate()
	}

	config := DefaultConfig()

	userConfigPath := l.userConfigPath()
	if userConfigPath != "" {
		if userConfig, err := parseFile(userConfigPath); err == nil {
			l.logger.Debug("loaded user config", "path", userConfigPath)
			config.Merge(userConfig)
		} else if !errors.Is(err, os.ErrNotExist) {
			l.logger.Warn("cannot load user config", "path", userConfigPath, "err", err)
		}
	}

	if projectConfigPath := l.findProjectConfig(); projectConfigPath != "" {
		if projectConfig, err := parseFile(projectConfigPath); err == nil {
			l.logger.Debug("loaded project config", "path", projectConfigPath)
			config.Merge(projectConfig)
		} else {
			l.logger.Warn("cannot load project config", "path", projectConfigPath, "err", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (l *Loader) userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, UserConfigDir, UserConfigFile)
}

// Searches for gotex.yaml from the working directory upwards.
func (l *Loader) findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		configPath := filepath.Join(dir, ProjectConfigFile)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
