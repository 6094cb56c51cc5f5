package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"cv-ranking-web/internal/domain"
	"cv-ranking-web/pkg/validator"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort             string        `validate:"required,numeric"`
	UploadURL              string        `validate:"required,url"`
	RankingURL             string        `validate:"required,url"`
	RequestTimeout         time.Duration `validate:"gt=0"`
	MaxFileSize            int64         `validate:"gt=0,lte=1073741824"`
	LogLevel               string
	AllowedOrigins         []string
	SessionTTL             time.Duration `validate:"gt=0"`
	MaxSessions            int           `validate:"gt=0"`
	SessionCookieCrossSite bool
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:     getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		UploadURL:      getEnvOrDefault("UPLOAD_URL", "http://localhost:5000/upload"),
		RankingURL:     getEnvOrDefault("RANKING_URL", "http://localhost:5000/ranking"),
		RequestTimeout: getEnvDurationOrDefault("REQUEST_TIMEOUT", 30*time.Second),
		MaxFileSize:    getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvListOrDefault("ALLOWED_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),
		SessionTTL:             getEnvDurationOrDefault("SESSION_TTL", 30*time.Minute),
		MaxSessions:            int(getEnvInt64OrDefault("MAX_SESSIONS", 1000)),
		SessionCookieCrossSite: getEnvBoolOrDefault("SESSION_COOKIE_CROSS_SITE", false),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetUploadURL returns the remote upload endpoint
func (c *AppConfig) GetUploadURL() string {
	return c.UploadURL
}

// GetRankingURL returns the remote ranking endpoint
func (c *AppConfig) GetRankingURL() string {
	return c.RankingURL
}

// GetRequestTimeout returns the timeout applied to every outbound request
func (c *AppConfig) GetRequestTimeout() time.Duration {
	return c.RequestTimeout
}

// GetMaxFileSize returns the maximum accepted upload size in bytes
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetAllowedOrigins returns the CORS origins allowed on the JSON API
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// GetSessionTTL returns how long an idle page session is kept
func (c *AppConfig) GetSessionTTL() time.Duration {
	return c.SessionTTL
}

// GetMaxSessions returns how many page sessions are kept at most
func (c *AppConfig) GetMaxSessions() int {
	return c.MaxSessions
}

// GetSessionCookieCrossSite reports whether the session cookie is issued with
// SameSite=None so front-ends on another site can use the JSON API
func (c *AppConfig) GetSessionCookieCrossSite() bool {
	return c.SessionCookieCrossSite
}

// Validate checks that the configuration is usable.
func (c *AppConfig) Validate() error {
	return validator.Struct(c)
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
