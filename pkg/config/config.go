package config

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// ⭐ SSOT: 모든 환경변수는 여기서만 읽음
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Dataset
	Dataset DatasetConfig

	// Dashboard YAML (year labels, benchmark). Empty means built-in defaults.
	DashboardConfig string

	// Logging
	LogLevel  string
	LogFormat string

	// Monitoring
	MetricsEnabled bool
	MetricsPort    string

	// Rate limiting
	RateLimit RateLimitConfig
}

// DatasetConfig describes where the governance table comes from
type DatasetConfig struct {
	Path  string // .csv or .xlsx file, or an http(s) URL to one
	Sheet string // xlsx only; first sheet when empty

	// FetchTimeout bounds one download when Path is a URL
	FetchTimeout time.Duration

	// ReloadSchedule is a cron spec with seconds field. Empty disables reloads.
	ReloadSchedule string
}

// RateLimitConfig holds the token bucket settings for the HTTP server
type RateLimitConfig struct {
	RPS     float64
	Burst   int
	Enabled bool
}

// Load reads configuration from environment variables
// ⭐ SSOT: 이 함수만 os.Getenv()를 호출함
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Port: getEnv("PORT", "8089"),
		Env:  getEnv("ENV", "development"),

		Dataset: DatasetConfig{
			Path:           getEnv("DATASET_PATH", ""),
			Sheet:          getEnv("DATASET_SHEET", ""),
			FetchTimeout:   time.Duration(getEnvAsInt("DATASET_FETCH_TIMEOUT", 30)) * time.Second,
			ReloadSchedule: getEnv("RELOAD_SCHEDULE", ""),
		},

		DashboardConfig: getEnv("DASHBOARD_CONFIG", ""),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		MetricsEnabled: getEnvAsBool("METRICS_ENABLED", false),
		MetricsPort:    getEnv("METRICS_PORT", "9090"),

		RateLimit: RateLimitConfig{
			RPS:     getEnvAsFloat("RATE_LIMIT_RPS", 50),
			Burst:   getEnvAsInt("RATE_LIMIT_BURST", 100),
			Enabled: getEnvAsBool("RATE_LIMIT_ENABLED", true),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	if c.Dataset.Path == "" {
		return fmt.Errorf("DATASET_PATH is required")
	}

	switch strings.ToLower(path.Ext(c.Dataset.pathPart())) {
	case ".csv", ".xlsx":
	default:
		return fmt.Errorf("DATASET_PATH must point to a .csv or .xlsx file, got %q", c.Dataset.Path)
	}

	if c.Dataset.FetchTimeout <= 0 {
		return fmt.Errorf("DATASET_FETCH_TIMEOUT must be > 0")
	}

	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be > 0 when rate limiting is enabled")
	}

	return nil
}

// IsRemote reports whether Path is an http(s) URL
func (d DatasetConfig) IsRemote() bool {
	u, err := url.Parse(d.Path)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// pathPart is the part of Path that carries the file extension
func (d DatasetConfig) pathPart() string {
	if d.IsRemote() {
		u, _ := url.Parse(d.Path)
		return u.Path
	}
	return filepath.ToSlash(d.Path)
}

// IsProduction reports whether the app runs with ENV=production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{".env"}

	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}
