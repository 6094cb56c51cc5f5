package handler

import (
	"encoding/json"
	"net/http"

	"cv-ranking-web/internal/session"
)

type contextKey string

const pageContextKey contextKey = "page"

// GetPageFromContext extracts the visitor's page session from request context
func GetPageFromContext(r *http.Request) (*session.Page, bool) {
	page, ok := r.Context().Value(pageContextKey).(*session.Page)
	return page, ok && page != nil
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError writes an error response
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}
