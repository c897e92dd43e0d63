package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Nexus Trade Journal Configuration

[storage]
# Path to the SQLite database file. Defaults to nexus.db in this directory.
# database_path = ""

[ui]
# Enable colored output
color_enabled = true
# Date format
date_format = "02-Jan-2006"
# Time format
time_format = "15:04:05"

[journal]
# Currency symbol used when printing P&L
currency_symbol = "$"
# Default status for newly logged trades: WIN, LOSS, BE
default_status = "WIN"
# Setups offered when logging a trade
setups = ["Breakout", "Pullback", "Reversal", "Range"]
# First day of the calendar week: "sunday" or "monday"
week_start = "sunday"

[export]
# Directory where CSV exports are written
directory = "."
`

func createTemplateConfig(configDir, name string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, name+".toml")
	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config template: %w", err)
	}

	return nil
}
