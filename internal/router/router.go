package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/indicata/indicata/internal/analysis"
	"github.com/indicata/indicata/internal/config"
	"github.com/indicata/indicata/internal/handlers"
	"github.com/indicata/indicata/internal/logging"
	"github.com/indicata/indicata/internal/middleware"
)

// Setup configures all routes and middlewares
func Setup(app *fiber.App, logger *logging.Logger, cfg *config.Config) *handlers.Handler {
	metrics := middleware.NewMetrics()

	defaults := analysis.Config{
		ZScoreThreshold:   cfg.Analysis.ZScoreThreshold,
		SlopeThreshold:    cfg.Analysis.SlopeThreshold,
		VolatilityCVLimit: cfg.Analysis.VolatilityCVLimit,
		Workers:           cfg.Analysis.Workers,
	}
	h := handlers.New(logger, defaults, metrics)

	// Global middlewares
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-API-Key,X-Request-ID",
	}))
	app.Use(logging.FiberMiddleware(logger))
	app.Use(metrics.Middleware())

	// Health check and metrics (no auth required)
	app.Get("/health", h.Health)
	app.Get("/metrics", metrics.Handler())

	// API key authentication middleware
	authMiddleware := middleware.APIKeyAuth(logger, cfg.Auth.APIKeys, cfg.Auth.Enabled)

	// API v1 routes (protected by API key)
	v1 := app.Group("/v1", authMiddleware)

	v1.Post("/analyze", h.Analyze)
	v1.Post("/analyze/batch", h.AnalyzeBatch)

	// 404 handler
	app.Use(h.NotFound)

	return h
}
