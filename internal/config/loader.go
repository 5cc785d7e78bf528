package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/brokerctl"
	projectConfigDir = ".brokerctl"
	configFileName   = "config.yaml"
	prefsFileName    = "prefs.sqlite"
)

// Environment overrides, applied after all file layers. A .env file in the
// working directory is honored first.
const (
	envDataFile  = "BROKERCTL_DATA"
	envColorMode = "BROKERCTL_COLOR_MODE"
	envPreset    = "BROKERCTL_PRESET"
)

// LoadConfig loads the brokerctl configuration by layering default, user,
// project and environment settings.
func LoadConfig() (Config, error) {
	// 1. Start with the default configuration
	config := GetDefaultConfig()

	// 2. User-specific configuration
	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional; don't fail
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else {
		if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
			userConfig, err := loadConfigFromFile(userConfigPath)
			if err != nil {
				return Config{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
			}
			config = mergeConfigs(config, userConfig)
		}
	}

	// 3. Project-specific configuration
	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else {
		if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
			projectConfig, err := loadConfigFromFile(projectConfigPath)
			if err != nil {
				return Config{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
			}
			config = mergeConfigs(config, projectConfig)
		}
	}

	// 4. Environment overrides; a .env in the working directory is loaded
	// first so local checkouts can pin a data file without touching YAML.
	_ = godotenv.Load()
	config = applyEnvOverrides(config)

	return config, nil
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

// loadConfigFromFile loads a Config from a YAML file.
func loadConfigFromFile(filePath string) (Config, error) {
	var config Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return Config{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config.
func mergeConfigs(base, overlay Config) Config {
	merged := base

	if overlay.GlobalSettings.DataFile != "" {
		merged.GlobalSettings.DataFile = overlay.GlobalSettings.DataFile
	}
	if overlay.GlobalSettings.ColorMode != "" {
		merged.GlobalSettings.ColorMode = overlay.GlobalSettings.ColorMode
	}
	if overlay.GlobalSettings.PrefsPath != "" {
		merged.GlobalSettings.PrefsPath = overlay.GlobalSettings.PrefsPath
	}
	if overlay.View.Preset != "" {
		merged.View.Preset = overlay.View.Preset
	}
	if overlay.View.RestorePersisted {
		merged.View.RestorePersisted = true
	}

	return merged
}

func applyEnvOverrides(config Config) Config {
	if v := os.Getenv(envDataFile); v != "" {
		config.GlobalSettings.DataFile = v
	}
	if v := os.Getenv(envColorMode); v != "" {
		config.GlobalSettings.ColorMode = v
	}
	if v := os.Getenv(envPreset); v != "" {
		config.View.Preset = v
	}
	return config
}

// PrefsPath resolves the preference-store location, falling back to the
// default under the user config directory.
func (c Config) PrefsPath() (string, error) {
	if c.GlobalSettings.PrefsPath != "" {
		return c.GlobalSettings.PrefsPath, nil
	}
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, prefsFileName), nil
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
