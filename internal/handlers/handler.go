package handlers

import (
	"github.com/indicata/indicata/internal/analysis"
	"github.com/indicata/indicata/internal/logging"
	"github.com/indicata/indicata/internal/middleware"
	"github.com/indicata/indicata/internal/services"
)

// Handler contains all HTTP handlers
type Handler struct {
	logger          *logging.Logger
	analysisService *services.AnalysisService
	metrics         *middleware.Metrics
}

// New creates a new handler instance
func New(logger *logging.Logger, defaults analysis.Config, metrics *middleware.Metrics) *Handler {
	return &Handler{
		logger:          logger,
		analysisService: services.NewAnalysisService(logger, defaults),
		metrics:         metrics,
	}
}
