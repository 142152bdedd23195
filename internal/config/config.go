package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Database configuration
	Database DatabaseConfig

	// OIDC identity provider configuration
	OIDC OIDCConfig

	// Article search upstream configuration
	Search SearchConfig

	// Session configuration
	Session SessionConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	StaticDir       string
	IndexFile       string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
}

// OIDCConfig holds identity provider settings for the authorization-code flow
type OIDCConfig struct {
	ClientID        string
	ClientSecret    string
	AuthURL         string
	TokenURL        string
	RedirectURL     string
	Issuer          string
	Scopes          []string
	ExchangeTimeout time.Duration
}

// SearchConfig holds article search upstream settings
type SearchConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// SessionConfig holds session cookie settings
type SessionConfig struct {
	CookieName      string
	CookieMaxAge    time.Duration
	ModeratorEmails []string
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8000"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
			StaticDir:       getEnv("STATIC_DIR", "./static"),
			IndexFile:       getEnv("INDEX_FILE", "./templates/index.html"),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", "postgres"),
			Name:         getEnv("DB_NAME", "news_comments"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: getIntEnv("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getIntEnv("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:  getDurationEnv("DB_MAX_LIFETIME", 5*time.Minute),
		},
		OIDC: OIDCConfig{
			ClientID:        getEnv("OIDC_CLIENT_ID", ""),
			ClientSecret:    getEnv("OIDC_CLIENT_SECRET", ""),
			AuthURL:         getEnv("OIDC_AUTH_URL", "http://dex:5556/auth"),
			TokenURL:        getEnv("OIDC_TOKEN_URL", "http://dex:5556/token"),
			RedirectURL:     getEnv("OIDC_REDIRECT_URL", "http://localhost:8000/authorize"),
			Issuer:          getEnv("OIDC_ISSUER", "http://dex:5556"),
			Scopes:          getSliceEnv("OIDC_SCOPES", []string{"openid", "email", "profile"}),
			ExchangeTimeout: getDurationEnv("OIDC_EXCHANGE_TIMEOUT", 10*time.Second),
		},
		Search: SearchConfig{
			BaseURL: getEnv("SEARCH_BASE_URL", "https://api.nytimes.com/svc/search/v2/articlesearch.json"),
			APIKey:  getEnv("SEARCH_API_KEY", ""),
			Timeout: getDurationEnv("SEARCH_TIMEOUT", 10*time.Second),
		},
		Session: SessionConfig{
			CookieName:      getEnv("SESSION_COOKIE_NAME", "sid"),
			CookieMaxAge:    getDurationEnv("SESSION_COOKIE_MAX_AGE", 24*time.Hour),
			ModeratorEmails: getSliceEnv("MODERATOR_EMAILS", []string{"moderator@hw3.com"}),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.OIDC.ClientID == "" {
		return fmt.Errorf("OIDC_CLIENT_ID is required")
	}
	if c.OIDC.AuthURL == "" || c.OIDC.TokenURL == "" {
		return fmt.Errorf("OIDC_AUTH_URL and OIDC_TOKEN_URL are required")
	}
	return nil
}

// GetDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}
