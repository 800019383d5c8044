package config

import (
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"

	"github.com/moisesmate2017-dot/Certificao-operatividad/internal/pkg/certificate"
)

// Config holds all configuration for the application
type Config struct {
	Port         string
	DataBasePath string // Spreadsheet holding the installations (sheet DataSheet)
	DataSheet    string
	SnapshotDir  string
	AssetsDir    string // logo and signature images
	OutputDir    string // rendered certificates
	City         string
	Timezone     string
	AddendumRule string
	LogLevel     string
	GinMode      string
}

// LoadConfig reads configuration from environment variables (.env file)
func LoadConfig() (*Config, error) {
	// Load .env file. In production, env variables are often set directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		DataBasePath: getEnv("DATA_BASE_PATH", "data_base.xlsm"),
		DataSheet:    getEnv("DATA_SHEET", "DATA"),
		SnapshotDir:  getEnv("SNAPSHOT_DIR", "snapshots"),
		AssetsDir:    getEnv("ASSETS_DIR", "static"),
		OutputDir:    getEnv("OUTPUT_DIR", "output"),
		City:         getEnv("EMISSION_CITY", "Lima"),
		Timezone:     getEnv("TIMEZONE", "America/Lima"),
		AddendumRule: getEnv("ADDENDUM_RULE", certificate.AddendumFrom2025.String()),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		GinMode:      getEnv("GIN_MODE", "release"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the values that cannot be defaulted at use time
func (c *Config) Validate() error {
	if _, err := certificate.ParseAddendumRule(c.AddendumRule); err != nil {
		return fmt.Errorf("invalid ADDENDUM_RULE: %w", err)
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	return nil
}

// Location resolves the configured timezone used to decide what "today" is
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Helper function to get env var or return default
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
