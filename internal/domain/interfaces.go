package domain

import (
	"context"
	"net/http"
	"time"
)

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetUploadURL() string
	GetRankingURL() string
	GetRequestTimeout() time.Duration
	GetMaxFileSize() int64
	GetLogLevel() string
	GetAllowedOrigins() []string
	GetSessionTTL() time.Duration
	GetMaxSessions() int
	GetSessionCookieCrossSite() bool
	Validate() error
}

// Doer sends an HTTP request. Both *http.Client and the heimdall client satisfy it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Uploader transmits a selected file to the upload endpoint.
type Uploader interface {
	Upload(ctx context.Context, file *SelectedFile) error
}

// RankingFetcher retrieves the ranking collection from the ranking endpoint.
type RankingFetcher interface {
	FetchRanking(ctx context.Context) ([]RankingEntry, error)
}
