package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	API       APIConfig
	Session   SessionConfig
	Reporting ReportingConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// APIConfig locates the external dairy REST backend.
type APIConfig struct {
	BaseURL string
}

// SessionConfig holds options for the local session store.
type SessionConfig struct {
	DBPath string
}

// ReportingConfig holds report generation and scheduler settings.
type ReportingConfig struct {
	CronSchedule string
	Timezone     string
	OutputDir    string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		API: APIConfig{
			BaseURL: os.Getenv("DAIRY_API_URL"),
		},
		Session: SessionConfig{
			DBPath: getenvWithDefault("SESSION_DB_PATH", "./dairyops.db"),
		},
		Reporting: ReportingConfig{
			CronSchedule: getenvWithDefault("REPORT_CRON_SCHEDULE", "0 20 * * 5"),
			Timezone:     getenvWithDefault("TIMEZONE", "Asia/Kolkata"),
			OutputDir:    getenvWithDefault("REPORT_OUTPUT_DIR", "./reports"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.API.BaseURL == "" {
		return errors.New("DAIRY_API_URL must be provided")
	}

	if c.Session.DBPath == "" {
		return errors.New("SESSION_DB_PATH must not be empty")
	}

	switch {
	case c.Reporting.CronSchedule == "":
		return errors.New("REPORT_CRON_SCHEDULE must be provided")
	case c.Reporting.Timezone == "":
		return errors.New("TIMEZONE must be provided")
	case c.Reporting.OutputDir == "":
		return errors.New("REPORT_OUTPUT_DIR must not be empty")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
