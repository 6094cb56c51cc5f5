package service

import (
	"time"

	"cv-ranking-web/internal/domain"

	"github.com/gojek/heimdall/v7/httpclient"
)

// NewHTTPClient returns the outbound client shared by the remote endpoints.
// Requests are never retried; a failed attempt is reported to the user.
func NewHTTPClient(timeout time.Duration) domain.Doer {
	return httpclient.NewClient(
		httpclient.WithHTTPTimeout(timeout),
		httpclient.WithRetryCount(0),
	)
}
