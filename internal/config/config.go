package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config represents the application configuration
type Config struct {
	DeckSize     int      `toml:"deck_size"`
	MaxDeckSize  int      `toml:"max_deck_size"`
	Rows         int      `toml:"rows"`
	InitialCards []string `toml:"initial_cards,omitempty"`
	Color        bool     `toml:"color"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		DeckSize:    52,
		MaxDeckSize: 52,
		Rows:        1,
		Color:       true,
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "hilo", "config.toml")
}

// LoadConfig loads the config file, creating a default one if needed
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	return LoadFile(configPath)
}

// LoadFile decodes the config at path. Keys missing from the file keep
// their default values.
func LoadFile(path string) (*Config, error) {
	config := Default()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := Save(config); err != nil {
		return nil, err
	}
	return config, nil
}

// Save writes config to the config file path
func Save(config *Config) error {
	configPath := GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// Set updates a single key by its TOML name and saves the result
func Set(key, value string) (*Config, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	switch key {
	case "deck_size":
		config.DeckSize, err = strconv.Atoi(value)
	case "max_deck_size":
		config.MaxDeckSize, err = strconv.Atoi(value)
	case "rows":
		config.Rows, err = strconv.Atoi(value)
	case "color":
		config.Color, err = strconv.ParseBool(value)
	case "initial_cards":
		config.InitialCards = strings.Fields(strings.ReplaceAll(value, ",", " "))
	default:
		return nil, fmt.Errorf("unknown config key: %s", key)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid value for %s: %w", key, err)
	}

	if err := Save(config); err != nil {
		return nil, err
	}
	return config, nil
}
