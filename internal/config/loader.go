package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/sonic-migrate"
	projectConfigDir = ".sonic-migrate"
	configFileName   = "config.yaml"
)

// Load layers default, user, and project settings. Both files are
// optional; a missing file is skipped, a malformed one is an error.
func Load() (Settings, error) {
	settings := DefaultSettings()

	userPath, err := getUserConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not determine user config path: %v\n", err)
	} else if _, err := os.Stat(userPath); !os.IsNotExist(err) {
		userSettings, err := loadFromFile(userPath)
		if err != nil {
			return Settings{}, fmt.Errorf("error loading user config from %s: %w", userPath, err)
		}
		settings = merge(settings, userSettings)
	}

	projectPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not determine project config path: %v\n", err)
	} else if _, err := os.Stat(projectPath); !os.IsNotExist(err) {
		projectSettings, err := loadFromFile(projectPath)
		if err != nil {
			return Settings{}, fmt.Errorf("error loading project config from %s: %w", projectPath, err)
		}
		settings = merge(settings, projectSettings)
	}

	return settings, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

func loadFromFile(filePath string) (Settings, error) {
	var settings Settings
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Settings{}, err
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// merge overlays 'overlay' onto 'base'. Booleans only override when set to
// true, so a project file cannot accidentally un-set a user preference.
func merge(base, overlay Settings) Settings {
	merged := base
	if overlay.DefaultNetwork != "" {
		merged.DefaultNetwork = overlay.DefaultNetwork
	}
	if overlay.Verbose {
		merged.Verbose = true
	}
	if overlay.NoColor {
		merged.NoColor = true
	}
	if overlay.NoSpinner {
		merged.NoSpinner = true
	}
	return merged
}
