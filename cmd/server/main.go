package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cv-ranking-web/internal/config"
	"cv-ranking-web/internal/handler"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}
	// Wiring
	container := config.NewContainer()
	if err := container.Config.Validate(); err != nil {
		container.Logger.Error("Invalid configuration", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go container.Sessions.Run(ctx, time.Minute)

	// Handlers
	maxFileSize := container.Config.GetMaxFileSize()
	pageHandler := handler.NewPageHandler(maxFileSize, container.Logger)
	apiHandler := handler.NewAPIHandler(maxFileSize, container.Logger)

	sessionMiddleware := handler.NewSessionMiddleware(
		container.Sessions,
		container.Logger,
		container.Config.GetSessionCookieCrossSite(),
	)

	// Router
	router := handler.NewRouter(
		pageHandler,
		apiHandler,
		sessionMiddleware.Middleware,
		container.Config.GetAllowedOrigins(),
		container.Logger,
	)

	// start server
	server := &http.Server{
		Addr:              ":" + container.Config.GetServerPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Run server
	go func() {
		container.Logger.Info("Server listening",
			"address", server.Addr,
			"upload_url", container.Config.GetUploadURL(),
			"ranking_url", container.Config.GetRankingURL(),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			container.Logger.Error("Server failed to start", err)
			os.Exit(1)
		}
	}()
	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.Logger.Info("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), container.Config.GetRequestTimeout()+5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		container.Logger.Error("Graceful shutdown failed", err)
		_ = server.Close()
	}

	container.Logger.Info("Server exited")
}
