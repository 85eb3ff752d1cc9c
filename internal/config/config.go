package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the user's persisted anotes settings. Everything is
// optional; flags and environment variables override all of it.
type Config struct {
	// Account is the Notes account new notes are created in (for example
	// "iCloud"). Empty leaves the choice to the host.
	Account string `json:"account,omitempty"`
	// Folder receives created notes when no folder is given.
	Folder string `json:"folder,omitempty"`
	// JotFolder holds the dated quick-capture notes.
	JotFolder string `json:"jot_folder,omitempty"`
}

// GetConfigPath returns the path to the anotes configuration file.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %v", err)
	}
	return filepath.Join(configDir, "anotes", "config.json"), nil
}

// Load reads the configuration, returning defaults when no file exists yet.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return loadFrom(configPath)
}

func loadFrom(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %v", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %v", err)
	}
	return cfg, nil
}

// Save writes the configuration to the file system.
func (c *Config) Save() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}
	return c.saveTo(configPath)
}

func (c *Config) saveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %v", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %v", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %v", err)
	}
	return nil
}
