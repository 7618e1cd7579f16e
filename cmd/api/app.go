package main

import (
	"fmt"
	"log/slog"

	"pocasi/internal/config"
	"pocasi/internal/forecast"
	"pocasi/internal/view"

	"github.com/gin-gonic/gin"
)

// App encapsulates application dependencies
type App struct {
	router          *gin.Engine
	logger          *slog.Logger
	forecastService forecast.Service
	renderer        *view.Renderer
	cfg             *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Initialize forecast service
	forecastSvc, err := forecast.NewForecastService(cfg, logger)
	if err != nil {
		return nil, err
	}

	var opts []view.RendererOption
	if cfg.Page.Minify {
		opts = append(opts, view.WithMinify())
	}
	renderer, err := view.NewRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	app := newApp(cfg, logger, forecastSvc, renderer)
	logger.Info("application initialized", "minify", cfg.Page.Minify)

	return app, nil
}

func newApp(cfg *config.Config, logger *slog.Logger, forecastSvc forecast.Service, renderer *view.Renderer) *App {
	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(logger))

	app := &App{
		router:          router,
		logger:          logger,
		forecastService: forecastSvc,
		renderer:        renderer,
		cfg:             cfg,
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
