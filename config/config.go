package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"lotofacil/database"
)

// Config holds all application configuration
type Config struct {
	// Database configuration
	DatabaseURL  string
	DatabaseName string

	// Logging
	LogLevel string

	// Generation configuration
	ClosureCeiling int64  // Largest closure the generator enumerates
	MaxBatchSize   int    // Largest number of tickets one request may generate
	GroupsFile     string // Optional TOML file replacing the built-in group table

	// Result source configuration
	ResultsAPIURL      string // JSON endpoint of the official results service
	ResultsFallbackURL string // Secondary JSON endpoint tried when the primary fails
	ResultsRatePerSec  float64

	// Result sync worker configuration
	SyncInterval      time.Duration
	SyncBackfillLimit int // Maximum missing contests fetched per sync pass

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
	mu       sync.Mutex // Protects instance for test setup
)

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	// If instance is already set (e.g., by tests), return it
	if instance != nil {
		return instance
	}

	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			if os.Getenv("GO_TEST") == "1" || os.Getenv("ENVIRONMENT") == "test" {
				instance = NewTestConfig()
			} else {
				panic(fmt.Sprintf("failed to load config: %v", err))
			}
		}
	})
	return instance
}

// GetDatabaseURL constructs the full database URL by combining base URL and database name
func (c *Config) GetDatabaseURL() string {
	return database.ConstructDatabaseURL(c.DatabaseURL, c.DatabaseName)
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		// Database
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),

		LogLevel: getEnvWithDefault("LOG_LEVEL", "info"),

		// Generation
		ClosureCeiling: 5000,
		MaxBatchSize:   100,
		GroupsFile:     os.Getenv("GROUPS_FILE"),

		// Results
		ResultsAPIURL:      getEnvWithDefault("RESULTS_API_URL", "https://servicebus2.caixa.gov.br/portaldeloterias/api/lotofacil"),
		ResultsFallbackURL: getEnvWithDefault("RESULTS_FALLBACK_URL", "https://loteriascaixa-api.herokuapp.com/api/lotofacil"),
		ResultsRatePerSec:  2,

		// Sync worker
		SyncInterval:      time.Hour,
		SyncBackfillLimit: 50,

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	// Override defaults if environment variables are set
	if ceiling := os.Getenv("CLOSURE_CEILING"); ceiling != "" {
		parsed, err := strconv.ParseInt(ceiling, 10, 64)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("CLOSURE_CEILING must be a positive integer, got %q", ceiling)
		}
		config.ClosureCeiling = parsed
	}
	if batch := os.Getenv("MAX_BATCH_SIZE"); batch != "" {
		parsed, err := strconv.Atoi(batch)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("MAX_BATCH_SIZE must be a positive integer, got %q", batch)
		}
		config.MaxBatchSize = parsed
	}
	if rate := os.Getenv("RESULTS_RATE_PER_SEC"); rate != "" {
		if parsed, err := strconv.ParseFloat(rate, 64); err == nil && parsed > 0 {
			config.ResultsRatePerSec = parsed
		}
	}
	if interval := os.Getenv("SYNC_INTERVAL"); interval != "" {
		parsed, err := time.ParseDuration(interval)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("SYNC_INTERVAL must be a positive duration, got %q", interval)
		}
		config.SyncInterval = parsed
	}
	if limit := os.Getenv("SYNC_BACKFILL_LIMIT"); limit != "" {
		if parsed, err := strconv.Atoi(limit); err == nil && parsed >= 0 {
			config.SyncBackfillLimit = parsed
		}
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
		// If DatabaseName is provided, ensure it's not empty
		if config.DatabaseName != "" && strings.TrimSpace(config.DatabaseName) == "" {
			return nil, fmt.Errorf("DATABASE_NAME cannot be empty when provided")
		}
	}

	return config, nil
}

// getEnvWithDefault returns the environment variable value or a default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Test helpers - only use in tests

// SetTestConfig overrides the global config instance for testing
// This should only be called from test files
func SetTestConfig(testConfig *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = testConfig
}

// ResetConfig resets the global config instance and sync.Once for testing
// This should only be called from test files
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	once = sync.Once{}
}

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	return &Config{
		Environment:       "test",
		LogLevel:          "debug",
		ClosureCeiling:    5000,
		MaxBatchSize:      100,
		ResultsRatePerSec: 100,
		SyncInterval:      time.Minute,
		SyncBackfillLimit: 10,
	}
}
