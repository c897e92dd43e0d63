// Package config provides configuration management for the journal application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	UI      UIConfig      `mapstructure:"ui"`
	Journal JournalConfig `mapstructure:"journal"`
	Export  ExportConfig  `mapstructure:"export"`
}

// StorageConfig holds database configuration.
type StorageConfig struct {
	DatabasePath string `mapstructure:"database_path"`
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	ColorEnabled bool   `mapstructure:"color_enabled"`
	DateFormat   string `mapstructure:"date_format"`
	TimeFormat   string `mapstructure:"time_format"`
}

// JournalConfig holds journaling configuration.
type JournalConfig struct {
	CurrencySymbol string   `mapstructure:"currency_symbol"`
	DefaultStatus  string   `mapstructure:"default_status"`
	Setups         []string `mapstructure:"setups"`
	WeekStart      string   `mapstructure:"week_start"`
}

// ExportConfig holds export configuration.
type ExportConfig struct {
	Directory string `mapstructure:"directory"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/nexus"
	}
	return filepath.Join(home, ".config", "nexus")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := &Config{}

	if err := loadConfigFile(configDir, "config", cfg); err != nil {
		return nil, fmt.Errorf("loading config.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func loadConfigFile(configDir, name string, target interface{}) error {
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	setDefaults(v, configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found, create template and continue with defaults
			if terr := createTemplateConfig(configDir, name); terr != nil {
				return terr
			}
			return v.Unmarshal(target)
		}
		return err
	}

	return v.Unmarshal(target)
}

func setDefaults(v *viper.Viper, configDir string) {
	v.SetDefault("storage.database_path", filepath.Join(configDir, "nexus.db"))
	v.SetDefault("ui.color_enabled", true)
	v.SetDefault("ui.date_format", "02-Jan-2006")
	v.SetDefault("ui.time_format", "15:04:05")
	v.SetDefault("journal.currency_symbol", "$")
	v.SetDefault("journal.default_status", "WIN")
	v.SetDefault("journal.setups", []string{"Breakout", "Pullback", "Reversal", "Range"})
	v.SetDefault("journal.week_start", "sunday")
	v.SetDefault("export.directory", ".")
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("NEXUS_DB_PATH"); v != "" {
		cfg.Storage.DatabasePath = v
	}
	if v := os.Getenv("NEXUS_EXPORT_DIR"); v != "" {
		cfg.Export.Directory = v
	}
	if v := os.Getenv("NO_COLOR"); v != "" {
		cfg.UI.ColorEnabled = false
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Storage.DatabasePath == "" {
		return fmt.Errorf("storage.database_path must not be empty")
	}

	switch strings.ToUpper(c.Journal.DefaultStatus) {
	case "WIN", "LOSS", "BE":
	default:
		return fmt.Errorf("invalid default status: %s (must be WIN, LOSS or BE)", c.Journal.DefaultStatus)
	}

	switch strings.ToLower(c.Journal.WeekStart) {
	case "sunday", "monday":
	default:
		return fmt.Errorf("invalid week start: %s (must be 'sunday' or 'monday')", c.Journal.WeekStart)
	}

	return nil
}
