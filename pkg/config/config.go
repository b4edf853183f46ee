// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, news API and other settings

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// NewsAPI contains external news provider configuration
	NewsAPI NewsAPIConfig

	// Storage contains preference storage configuration
	Storage StorageConfig

	// Log contains logging configuration
	Log LogConfig

	// RateLimit contains rate limiting configuration
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig

	// SQLite contains SQLite cache configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int
}

// SQLiteConfig holds SQLite cache configuration
type SQLiteConfig struct {
	// Path is the database file path
	Path string
}

// NewsAPIConfig holds external news provider configuration
type NewsAPIConfig struct {
	// BaseURL is the provider API root
	BaseURL string

	// APIKey authenticates requests against the provider
	APIKey string

	// Country scopes top headlines to a country code
	Country string

	// PageSize is the number of articles requested per category
	PageSize int
}

// StorageConfig holds preference storage configuration
type StorageConfig struct {
	// PreferencesKey is the fixed key the preferences object is stored under
	PreferencesKey string
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Backend selects the logger implementation (logrus/standard)
	Backend string

	// Level is the minimum level emitted (debug/info/warn/error)
	Level string
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained per-client rate
	RequestsPerSecond float64

	// Burst is the per-client burst allowance
	Burst int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_PATH", "pulsefeed.db"),
			},
		},
		NewsAPI: NewsAPIConfig{
			BaseURL:  getEnvOrDefault("NEWS_API_BASE_URL", "https://newsapi.org/v2"),
			APIKey:   getEnvOrDefault("NEWS_API_KEY", ""),
			Country:  getEnvOrDefault("NEWS_API_COUNTRY", "us"),
			PageSize: getEnvAsIntOrDefault("NEWS_API_PAGE_SIZE", 10),
		},
		Storage: StorageConfig{
			PreferencesKey: getEnvOrDefault("PREFERENCES_KEY", "userPreferences"),
		},
		Log: LogConfig{
			Backend: getEnvOrDefault("LOG_BACKEND", "logrus"),
			Level:   getEnvOrDefault("LOG_LEVEL", "info"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getEnvAsFloatOrDefault("RATE_LIMIT_RPS", 10),
			Burst:             getEnvAsIntOrDefault("RATE_LIMIT_BURST", 20),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Cache.Type {
	case "memory", "redis", "sqlite":
	default:
		return errors.New("cache type must be 'memory', 'redis' or 'sqlite'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	if c.NewsAPI.BaseURL == "" {
		return errors.New("news API base URL cannot be empty")
	}

	if c.NewsAPI.PageSize < 1 {
		return errors.New("news API page size must be at least 1")
	}

	if c.RateLimit.RequestsPerSecond <= 0 {
		return errors.New("rate limit must be positive")
	}

	return nil
}
