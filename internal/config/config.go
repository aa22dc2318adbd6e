package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Strava   StravaConfig
	Webhook  WebhookConfig
	Capacity CapacityConfig
	Redis    RedisConfig
	Admin    AdminConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
	SSLMode  string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port      int
	WebAppURI string
}

// StravaConfig holds the provider application credentials
type StravaConfig struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
	TokenURL     string
}

// WebhookConfig controls the push subscription and event receipt
type WebhookConfig struct {
	Enabled     bool
	CallbackURL string
	VerifyToken string
}

// CapacityConfig controls the event log storage guard
type CapacityConfig struct {
	AllocationBytes  int64
	ThresholdPercent float64
	CheckInterval    time.Duration
}

// RedisConfig holds optional Redis settings used for admin rate limiting
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// AdminConfig holds operator API settings
type AdminConfig struct {
	JWTSecret        string
	ActionsPerMinute int
	DefaultPageSize  int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}
	cfg.Database.SSLMode = getEnvWithDefault("DB_SSLMODE", "disable")

	// Server configuration
	if cfg.Server.Port, err = parseInt("SERVER_PORT", getEnvWithDefault("SERVER_PORT", "8080")); err != nil {
		return nil, err
	}
	cfg.Server.WebAppURI = getEnvWithDefault("WEBAPP_URI", "http://localhost:3000")

	// Strava credentials are optional: without them webhooks stay inactive
	cfg.Strava.ClientID = os.Getenv("STRAVA_CLIENT_ID")
	cfg.Strava.ClientSecret = os.Getenv("STRAVA_CLIENT_SECRET")
	cfg.Strava.BaseURL = getEnvWithDefault("STRAVA_API_BASE_URL", "https://www.strava.com/api/v3")
	cfg.Strava.TokenURL = getEnvWithDefault("STRAVA_TOKEN_URL", "https://www.strava.com/oauth/token")

	// Webhook configuration
	if cfg.Webhook.Enabled, err = parseBool("WEBHOOK_ENABLED", getEnvWithDefault("WEBHOOK_ENABLED", "false")); err != nil {
		return nil, err
	}
	cfg.Webhook.CallbackURL = os.Getenv("WEBHOOK_CALLBACK_URL")
	cfg.Webhook.VerifyToken = os.Getenv("WEBHOOK_VERIFY_TOKEN")

	// Capacity guard configuration
	allocationMB, err := parseInt("CAPACITY_ALLOCATION_MB", getEnvWithDefault("CAPACITY_ALLOCATION_MB", "1024"))
	if err != nil {
		return nil, err
	}
	cfg.Capacity.AllocationBytes = int64(allocationMB) * 1024 * 1024
	threshold := getEnvWithDefault("CAPACITY_THRESHOLD_PERCENT", "95")
	if cfg.Capacity.ThresholdPercent, err = strconv.ParseFloat(threshold, 64); err != nil {
		return nil, fmt.Errorf("failed to parse CAPACITY_THRESHOLD_PERCENT: %w", err)
	}
	interval := getEnvWithDefault("CAPACITY_CHECK_INTERVAL", "1h")
	if cfg.Capacity.CheckInterval, err = time.ParseDuration(interval); err != nil {
		return nil, fmt.Errorf("failed to parse CAPACITY_CHECK_INTERVAL: %w", err)
	}

	// Redis configuration
	if cfg.Redis.Enabled, err = parseBool("REDIS_ENABLED", getEnvWithDefault("REDIS_ENABLED", "false")); err != nil {
		return nil, err
	}
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	if cfg.Redis.Port, err = parseInt("REDIS_PORT", getEnvWithDefault("REDIS_PORT", "6379")); err != nil {
		return nil, err
	}
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.DB, err = parseInt("REDIS_DB", getEnvWithDefault("REDIS_DB", "0")); err != nil {
		return nil, err
	}

	// Admin configuration
	if cfg.Admin.JWTSecret, err = requireEnv("ADMIN_JWT_SECRET"); err != nil {
		return nil, err
	}
	if cfg.Admin.ActionsPerMinute, err = parseInt("ADMIN_ACTIONS_PER_MINUTE", getEnvWithDefault("ADMIN_ACTIONS_PER_MINUTE", "30")); err != nil {
		return nil, err
	}
	if cfg.Admin.DefaultPageSize, err = parseInt("ADMIN_PAGE_SIZE", getEnvWithDefault("ADMIN_PAGE_SIZE", "50")); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		c.Username, c.Password, c.Host, c.Name, c.SSLMode)
}

// MissingSubscriptionSettings lists the settings required to register a push
// subscription that are not configured.
func (c *Config) MissingSubscriptionSettings() []string {
	var missing []string
	if strings.TrimSpace(c.Webhook.CallbackURL) == "" {
		missing = append(missing, "WEBHOOK_CALLBACK_URL")
	}
	if strings.TrimSpace(c.Webhook.VerifyToken) == "" {
		missing = append(missing, "WEBHOOK_VERIFY_TOKEN")
	}
	if strings.TrimSpace(c.Strava.ClientID) == "" {
		missing = append(missing, "STRAVA_CLIENT_ID")
	}
	if strings.TrimSpace(c.Strava.ClientSecret) == "" {
		missing = append(missing, "STRAVA_CLIENT_SECRET")
	}
	return missing
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return n, nil
}

func parseBool(key, value string) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return b, nil
}
