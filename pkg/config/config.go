package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// ⭐ SSOT: every environment variable is read here and nowhere else
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Database (optional: empty URL disables the universe store)
	Database DatabaseConfig

	// Redis (optional response cache + outbound rate limiter)
	Redis RedisConfig

	// Upstream data providers
	Provider ProviderConfig
	EDGAR    EDGARConfig

	// Inbound API rate limit
	RateLimit RateLimitConfig

	// Scoring thresholds (YAML, optional)
	ScoringConfigPath string

	// Logging
	LogLevel  string
	LogFormat string

	// Monitoring
	MetricsEnabled bool
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Enabled  bool
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	URL string

	// Connection Pool
	MaxConns        int
	MinConns        int
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// Enabled reports whether a database URL was configured
func (d DatabaseConfig) Enabled() bool {
	return d.URL != ""
}

// ProviderConfig holds the RapidAPI (Yahoo Finance) provider configuration
type ProviderConfig struct {
	APIKey  string
	Host    string
	BaseURL string

	// Timeout applies to every single sub-fetch
	Timeout time.Duration

	// InsiderWorkers bounds concurrent insider-trade lookups in one batch
	InsiderWorkers int

	QuoteFallbackEnabled   bool // finance-go quotes when RapidAPI fails
	InsiderFallbackEnabled bool // openinsider scrape when RapidAPI fails
	OpenInsiderBaseURL     string
}

// EDGARConfig holds SEC EDGAR full-text search configuration
type EDGARConfig struct {
	BaseURL   string
	UserAgent string // SEC requires a descriptive User-Agent with contact info
}

// RateLimitConfig holds the inbound per-client API limit
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// Load reads configuration from environment variables
// ⭐ SSOT: the only function that calls os.Getenv()
func Load() (*Config, error) {
	// Try multiple paths for .env file
	loadEnvFile()

	cfg := &Config{
		// Server
		Port: getEnv("PORT", "5000"),
		Env:  getEnv("ENV", "development"),

		// Database
		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			MaxConns:        getEnvAsInt("DB_MAX_CONNS", 10),
			MinConns:        getEnvAsInt("DB_MIN_CONNS", 1),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", "1h"),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", "30m"),
		},

		// Redis
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
		},

		// Providers
		Provider: ProviderConfig{
			APIKey:                 getEnv("RAPIDAPI_KEY", ""),
			Host:                   getEnv("RAPIDAPI_HOST", "yahoo-finance15.p.rapidapi.com"),
			BaseURL:                getEnv("RAPIDAPI_BASE_URL", "https://yahoo-finance15.p.rapidapi.com"),
			Timeout:                getEnvAsDuration("PROVIDER_TIMEOUT", "10s"),
			InsiderWorkers:         getEnvAsInt("INSIDER_WORKERS", 5),
			QuoteFallbackEnabled:   getEnvAsBool("QUOTE_FALLBACK_ENABLED", true),
			InsiderFallbackEnabled: getEnvAsBool("INSIDER_FALLBACK_ENABLED", false),
			OpenInsiderBaseURL:     getEnv("OPENINSIDER_BASE_URL", "http://openinsider.com"),
		},

		EDGAR: EDGARConfig{
			BaseURL:   getEnv("EDGAR_BASE_URL", "https://efts.sec.gov/LATEST"),
			UserAgent: getEnv("EDGAR_USER_AGENT", "DinoTradez/1.0 (contact@dinotradez.com)"),
		},

		RateLimit: RateLimitConfig{
			Requests: getEnvAsInt("API_RATE_LIMIT", 150),
			Window:   getEnvAsDuration("API_RATE_WINDOW", "15m"),
		},

		ScoringConfigPath: getEnv("SCORING_CONFIG", ""),

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		// Monitoring
		MetricsEnabled: getEnvAsBool("METRICS_ENABLED", true),
	}

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	// Validate environment
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.Provider.Timeout <= 0 {
		return fmt.Errorf("PROVIDER_TIMEOUT must be positive")
	}

	if c.Provider.InsiderWorkers < 1 {
		return fmt.Errorf("INSIDER_WORKERS must be at least 1")
	}

	if c.RateLimit.Requests < 1 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("API_RATE_LIMIT and API_RATE_WINDOW must be positive")
	}

	if c.EDGAR.UserAgent == "" {
		return fmt.Errorf("EDGAR_USER_AGENT is required by SEC fair access policy")
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	// Try paths in order of priority
	paths := []string{
		".env",         // Current directory
		"backend/.env", // From project root
	}

	// Also try relative to executable
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

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		// Fallback to default
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
