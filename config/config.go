// Package config handles loading and saving the shell configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// defaultHistoryFileName is the history file created in the user's
	// home directory when no explicit path is configured.
	defaultHistoryFileName = ".gosh_history"

	// defaultHistoryLimit is the maximum number of history entries loaded
	// at startup. The in-session store is never truncated; the limit only
	// bounds what a long-lived history file contributes to a new session.
	defaultHistoryLimit = 500
)

// Config represents the shell configuration.
type Config struct {
	// Prompt is the text printed before each input line.
	Prompt string `yaml:"prompt"`

	// PromptColor is a lipgloss color for the prompt (ANSI index, ANSI256
	// index, or hex string). Empty disables styling.
	PromptColor string `yaml:"prompt_color,omitempty"`

	History HistoryConfig `yaml:"history"`
}

// HistoryConfig holds history persistence settings.
type HistoryConfig struct {
	// File is the history file path. A leading "~/" expands to the user's
	// home directory. Empty selects ~/.gosh_history.
	File string `yaml:"file,omitempty"`

	// Limit is the maximum number of entries loaded at startup.
	// Zero or negative means unlimited.
	Limit int `yaml:"limit"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Prompt:      "$ ",
		PromptColor: "6",
		History: HistoryConfig{
			Limit: defaultHistoryLimit,
		},
	}
}

// ConfigDir returns the path to the configuration directory, creating it
// if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "gosh")
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the default config file. On first run,
// when no file exists yet, the defaults are written there so the user has a
// template to edit.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := Save(cfg, path); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from an explicit path, falling back to
// defaults when the file doesn't exist.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to path.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	// Restricted permissions: the file lives in the user's home tree.
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// HistoryFile resolves the configured history file path, expanding a
// leading "~/" and applying the default location when unset.
func (c *Config) HistoryFile() (string, error) {
	path := c.History.File
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, defaultHistoryFileName), nil
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
