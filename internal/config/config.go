package config

import (
	"fmt"
	"os"
	"path/filepath"
	"rdprint/internal/logger"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// DefaultPath is where the CLI looks for its configuration.
const DefaultPath = "configs/rdprint.toml"

type Config struct {
	Auth  AuthConfig  `toml:"auth"`
	Scan  ScanConfig  `toml:"scan"`
	Print PrintConfig `toml:"print"`
	Log   LogConfig   `toml:"log"`
}

type AuthConfig struct {
	Password string `toml:"password" validate:"required"`
}

type ScanConfig struct {
	Directory string `toml:"directory" validate:"required"`
}

type PrintConfig struct {
	// CloseFailedWorkbooks closes a workbook without saving when any step
	// for it fails, before moving on to the next file.
	CloseFailedWorkbooks *bool `toml:"close_failed_workbooks"`
}

type LogConfig struct {
	Directory string `toml:"directory" validate:"required"`
	Level     string `toml:"level" validate:"oneof=debug info warn error"`
}

// CloseOnFailure reports the effective close_failed_workbooks setting.
func (p PrintConfig) CloseOnFailure() bool {
	return p.CloseFailedWorkbooks == nil || *p.CloseFailedWorkbooks
}

// Default returns the built-in configuration used when no file exists.
func Default() *Config {
	closeFailed := true
	return &Config{
		Auth: AuthConfig{
			Password: "sunita",
		},
		Scan: ScanConfig{
			Directory: ".",
		},
		Print: PrintConfig{
			CloseFailedWorkbooks: &closeFailed,
		},
		Log: LogConfig{
			Directory: "logs",
			Level:     "info",
		},
	}
}

// LoadConfig loads configuration from the specified config file path.
// A missing file yields the defaults; nothing is written.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		logger.Info("Config file not found, using defaults", "path", configPath)
		return Default(), nil
	}

	var config Config
	_, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}

	// Set defaults if missing
	defaults := Default()
	if config.Auth.Password == "" {
		config.Auth.Password = defaults.Auth.Password
	}
	if config.Scan.Directory == "" {
		config.Scan.Directory = defaults.Scan.Directory
	}
	if config.Log.Directory == "" {
		config.Log.Directory = defaults.Log.Directory
	}
	config.Log.Level = strings.ToLower(strings.TrimSpace(config.Log.Level))
	if config.Log.Level == "" {
		config.Log.Level = defaults.Log.Level
	}

	if err := Validate(&config); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	logger.Info("Loaded configuration", "path", configPath)
	return &config, nil
}

// Validate checks the struct tags of config.
func Validate(config *Config) error {
	return validator.New().Struct(config)
}

// SaveConfig saves configuration to the specified config file path
func SaveConfig(configPath string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	err = encoder.Encode(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	logger.Info("Saved configuration", "path", configPath)
	return nil
}
