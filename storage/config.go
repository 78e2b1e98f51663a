package storage

import (
	"errors"
	"fmt"
	"os"
)

const configVersion = 1

// DefaultConfig returns the configuration used when no config.json exists
func DefaultConfig() *Config {
	return &Config{
		Version: configVersion,
		Window: WindowConfig{
			Width:  1024,
			Height: 768,
		},
		AutoBoot: true,
	}
}

// LoadConfig loads the configuration from config.json.
// If the file doesn't exist, it returns default configuration.
// If the file is corrupted, it returns an error.
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	config := &Config{}
	if err := ReadJSON(path, config); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Guard against hand-edited nonsense that would produce an unusable
	// window
	if config.Window.Width < 320 || config.Window.Height < 240 {
		def := DefaultConfig()
		config.Window.Width = def.Window.Width
		config.Window.Height = def.Window.Height
	}

	return config, nil
}

// SaveConfig saves the configuration to config.json atomically
func SaveConfig(config *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	return AtomicWriteJSON(path, config)
}
