package handler

import (
	"net/http"

	"cv-ranking-web/internal/domain"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(
	pageHandler *PageHandler,
	apiHandler *APIHandler,
	sessionMiddleware func(http.Handler) http.Handler,
	allowedOrigins []string,
	logger domain.Logger,
) http.Handler {
	router := mux.NewRouter()
	router.Use(RequestLogger(logger))

	// Health check endpoint (no session)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok","service":"cv-ranking-web"}`))
	}).Methods("GET")

	app := router.PathPrefix("/").Subrouter()
	app.Use(sessionMiddleware)

	// Server-rendered page
	app.HandleFunc("/", pageHandler.Index).Methods("GET")
	app.HandleFunc("/upload", pageHandler.Upload).Methods("POST")
	app.HandleFunc("/ranking", pageHandler.FetchRanking).Methods("POST")

	// JSON API
	api := app.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/upload/select", apiHandler.SelectFile).Methods("POST")
	api.HandleFunc("/upload", apiHandler.Upload).Methods("POST")
	api.HandleFunc("/ranking", apiHandler.GetRanking).Methods("GET")
	api.HandleFunc("/ranking", apiHandler.FetchRanking).Methods("POST")
	api.HandleFunc("/state", apiHandler.GetState).Methods("GET")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
