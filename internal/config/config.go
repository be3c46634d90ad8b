package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type Config struct {
	Port string

	// Base directory relative document paths resolve against.
	EditPath string

	// Auth
	APIKey string

	// Automation backend (LibreOffice headless)
	SofficePath    string
	SofficeTimeout time.Duration

	// Operation history
	HistoryDBPath string
	HistoryTTL    time.Duration
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		EditPath: envOr("OFFICE_EDIT_PATH", defaultEditPath()),

		APIKey: os.Getenv("WORDSMITH_API_KEY"),

		SofficePath:    envOr("SOFFICE_PATH", "soffice"),
		SofficeTimeout: envDuration("SOFFICE_TIMEOUT", 2*time.Minute),

		HistoryDBPath: os.Getenv("HISTORY_DB_PATH"),
		HistoryTTL:    envDuration("HISTORY_TTL", 30*24*time.Hour),
	}

	if cfg.SofficeTimeout <= 0 {
		cfg.SofficeTimeout = 2 * time.Minute
	}
	if cfg.HistoryTTL <= 0 {
		cfg.HistoryTTL = 30 * 24 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.EditPath == "" {
		return fmt.Errorf("OFFICE_EDIT_PATH is required (no home directory to default to)")
	}
	info, err := os.Stat(c.EditPath)
	if err != nil {
		return fmt.Errorf("OFFICE_EDIT_PATH %q: %w", c.EditPath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("OFFICE_EDIT_PATH %q is not a directory", c.EditPath)
	}
	return nil
}

// defaultEditPath is the user's Desktop when one exists, else the home
// directory itself.
func defaultEditPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	desktop := filepath.Join(home, "Desktop")
	if info, err := os.Stat(desktop); err == nil && info.IsDir() {
		return desktop
	}
	return home
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
