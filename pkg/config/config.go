// ABOUTME: Configuration management for the scraper with environment variable support
// ABOUTME: Defines configuration structures for the source site, store, cache and logging

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	apperrors "github.com/xiajiun/article-scraping/core/errors"
)

// DefaultKeywords is the keyword list used when KEYWORDS is unset
var DefaultKeywords = []string{
	"medical AI", "AI", "pathology", "mammo", "deep learning", "medical",
	"chest x-ray", "mammography", "radiology", "machine learning",
	"computer-aided diagnosis", "digital radiology", "portable machine",
	"X-ray", "teleradiology", "medical imaging", "medical data", "PACS",
}

// DefaultUserAgent is the browser User-Agent sent with every request
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/85.0.4183.121 Safari/537.36"

// Config holds all application configuration
type Config struct {
	// Source contains the site to scrape and how to sign in
	Source SourceConfig

	// Keywords drive the relevance filter
	Keywords []string

	// OutputPath is the article store file. Its extension picks the format.
	OutputPath string

	// ContentExtractor selects how article page text is extracted (text/readability)
	ContentExtractor string

	// HTTPTimeout bounds each static page fetch
	HTTPTimeout time.Duration

	// UserAgent is sent with browser and static requests
	UserAgent string

	// Cache contains cache configuration
	Cache CacheConfig

	// Log contains logging configuration
	Log LogConfig
}

// SourceConfig holds the source site settings
type SourceConfig struct {
	// URL is the page holding the candidate article
	URL string

	// SignInURL is the login page
	SignInURL string

	// Username and Password are the account credentials
	Username string
	Password string

	// LoginTimeout bounds the sign-in flow
	LoginTimeout time.Duration

	// ElementTimeout bounds each page navigation
	ElementTimeout time.Duration
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig
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

// LogConfig holds logger configuration
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is text or json
	Format string

	// File, when set, receives logs through a rotating writer instead of stderr
	File string
}

// LoadEnvFile loads variables from a .env file without overriding ones
// already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Source: SourceConfig{
			URL:            getEnvOrDefault("SOURCE_URL", "https://www.gartner.com/en/"),
			SignInURL:      getEnvOrDefault("SIGNIN_URL", "https://www.gartner.com/account/signin"),
			Username:       os.Getenv("SCRAPER_USERNAME"),
			Password:       os.Getenv("SCRAPER_PASSWORD"),
			LoginTimeout:   getEnvAsDurationOrDefault("LOGIN_TIMEOUT", 30*time.Second),
			ElementTimeout: getEnvAsDurationOrDefault("ELEMENT_TIMEOUT", 30*time.Second),
		},
		Keywords:         getEnvAsListOrDefault("KEYWORDS", DefaultKeywords),
		OutputPath:       getEnvOrDefault("OUTPUT_PATH", "gartner_articles.xlsx"),
		ContentExtractor: getEnvOrDefault("CONTENT_EXTRACTOR", "text"),
		HTTPTimeout:      getEnvAsDurationOrDefault("HTTP_TIMEOUT", 30*time.Second),
		UserAgent:        getEnvOrDefault("USER_AGENT", DefaultUserAgent),
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
			File:   os.Getenv("LOG_FILE"),
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

// getEnvAsDurationOrDefault accepts Go durations ("45s") or plain seconds ("45")
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	return defaultValue
}

// getEnvAsListOrDefault splits a comma-separated variable, dropping blanks
func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		out := make([]string, len(defaultValue))
		copy(out, defaultValue)
		return out
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Source.URL == "" {
		return &apperrors.ValidationError{Field: "SOURCE_URL", Message: "cannot be empty"}
	}

	if c.Source.SignInURL == "" {
		return &apperrors.ValidationError{Field: "SIGNIN_URL", Message: "cannot be empty"}
	}

	if c.Source.Username == "" || c.Source.Password == "" {
		return &apperrors.ValidationError{Field: "SCRAPER_USERNAME", Message: "username and password are required"}
	}

	if len(c.Keywords) == 0 {
		return &apperrors.ValidationError{Field: "KEYWORDS", Message: "at least one keyword is required"}
	}

	if c.OutputPath == "" {
		return &apperrors.ValidationError{Field: "OUTPUT_PATH", Message: "cannot be empty"}
	}

	if c.Source.LoginTimeout <= 0 || c.Source.ElementTimeout <= 0 || c.HTTPTimeout <= 0 {
		return &apperrors.ValidationError{Field: "TIMEOUT", Message: "timeouts must be positive"}
	}

	switch strings.ToLower(c.ContentExtractor) {
	case "text", "readability":
	default:
		return &apperrors.ValidationError{Field: "CONTENT_EXTRACTOR", Message: "must be 'text' or 'readability'"}
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return &apperrors.ValidationError{Field: "CACHE_TYPE", Message: "cache type must be 'redis' or 'memory'"}
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return &apperrors.ValidationError{Field: "REDIS_ADDRESS", Message: "redis address cannot be empty when using redis cache"}
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return &apperrors.ValidationError{Field: "LOG_FORMAT", Message: "must be 'text' or 'json'"}
	}

	return nil
}
