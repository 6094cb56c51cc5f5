// Package widget holds the state containers behind the upload and ranking
// views. Each widget is safe for concurrent use and allows at most one
// outstanding network operation.
package widget

import (
	"fmt"

	"cv-ranking-web/internal/domain"
	apperrors "cv-ranking-web/pkg/errors"
)

// failureDetail describes the distinguished cause of a failed operation.
// The user-facing text stays collapsed; this goes to Detail and the logs.
func failureDetail(err error) string {
	appErr, ok := apperrors.As(err)
	if !ok {
		return err.Error()
	}

	switch appErr.Type {
	case apperrors.ErrorTypeUpstream:
		if appErr.UpstreamStatus != 0 {
			return fmt.Sprintf("server error: HTTP %d", appErr.UpstreamStatus)
		}
		return "server error: " + appErr.Message
	case apperrors.ErrorTypeNetwork:
		if appErr.Cause != nil {
			return "network error: " + appErr.Cause.Error()
		}
		return "network error: " + appErr.Message
	default:
		return appErr.Error()
	}
}

func errorKind(err error) string {
	if appErr, ok := apperrors.As(err); ok {
		return string(appErr.Type)
	}
	return "unknown"
}

func upstreamStatus(err error) int {
	if appErr, ok := apperrors.As(err); ok {
		return appErr.UpstreamStatus
	}
	return 0
}

func failureStatus(text string, err error) domain.StatusMessage {
	return domain.StatusMessage{
		Kind:   domain.StatusError,
		Text:   text,
		Detail: failureDetail(err),
	}
}
