package handler

import (
	"context"
	"net/http"
	"time"

	"cv-ranking-web/internal/domain"
	"cv-ranking-web/internal/session"
)

// SessionCookieName is the cookie carrying the visitor's page session id.
const SessionCookieName = "cvrank_session"

// SessionMiddleware attaches the visitor's page session to each request.
type SessionMiddleware struct {
	store     *session.Store
	logger    domain.Logger
	crossSite bool
}

// NewSessionMiddleware creates a new session middleware. With crossSite the
// cookie is issued as SameSite=None; Secure so credentialed cross-site API
// calls carry it.
func NewSessionMiddleware(store *session.Store, logger domain.Logger, crossSite bool) *SessionMiddleware {
	return &SessionMiddleware{
		store:     store,
		logger:    logger,
		crossSite: crossSite,
	}
}

// Middleware resolves the session cookie. Only state-changing requests
// create a stored page and issue a cookie; read-only requests without a
// known session see an idle page.
func (m *SessionMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if cookie, err := r.Cookie(SessionCookieName); err == nil {
			id = cookie.Value
		}

		var page *session.Page
		if isReadOnly(r.Method) {
			page = m.store.Lookup(id)
		} else {
			page = m.store.Get(id)
			if page.ID != id {
				http.SetCookie(w, m.cookie(r, page.ID))
			}
		}

		ctx := context.WithValue(r.Context(), pageContextKey, page)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *SessionMiddleware) cookie(r *http.Request, id string) *http.Cookie {
	cookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
	}
	if m.crossSite {
		cookie.SameSite = http.SameSiteNoneMode
		cookie.Secure = true
	}
	return cookie
}

func isReadOnly(method string) bool {
	return method == http.MethodGet || method == http.MethodHead
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// RequestLogger logs every request at debug level.
func RequestLogger(logger domain.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			logger.Debug("HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start),
			)
		})
	}
}
