package config

import (
	"cv-ranking-web/internal/domain"
	"cv-ranking-web/internal/service"
	"cv-ranking-web/internal/session"
	"cv-ranking-web/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config         domain.Config
	Logger         domain.Logger
	HTTPClient     domain.Doer
	UploadService  *service.UploadService
	RankingService *service.RankingService
	Sessions       *session.Store
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return NewContainerWith(NewConfig(), nil)
}

// NewContainerWith wires the container from cfg. A nil appLogger is built
// from the configured log level.
func NewContainerWith(cfg domain.Config, appLogger domain.Logger) *Container {
	if appLogger == nil {
		appLogger = logger.NewLogger(cfg.GetLogLevel())
	}

	httpClient := service.NewHTTPClient(cfg.GetRequestTimeout())

	uploadService := service.NewUploadService(cfg.GetUploadURL(), httpClient, appLogger)
	rankingService := service.NewRankingService(cfg.GetRankingURL(), httpClient, appLogger)

	sessions := session.NewStore(uploadService, rankingService, cfg.GetSessionTTL(), cfg.GetMaxSessions(), appLogger)

	return &Container{
		Config:         cfg,
		Logger:         appLogger,
		HTTPClient:     httpClient,
		UploadService:  uploadService,
		RankingService: rankingService,
		Sessions:       sessions,
	}
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}
