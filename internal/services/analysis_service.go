package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/indicata/indicata/internal/analysis"
	"github.com/indicata/indicata/internal/logging"
	"github.com/indicata/indicata/internal/models"
)

// Error codes returned by the analysis service.
const (
	CodeInvalidSeries  = "INVALID_SERIES"
	CodeInvalidOptions = "INVALID_OPTIONS"
	CodeEmptyBatch     = "EMPTY_BATCH"
)

// AnalysisService runs the analysis engine on behalf of the HTTP
// handlers, applying per-request threshold overrides on top of the
// configured defaults.
type AnalysisService struct {
	logger   *logging.Logger
	defaults analysis.Config
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(logger *logging.Logger, defaults analysis.Config) *AnalysisService {
	return &AnalysisService{
		logger:   logger,
		defaults: defaults,
	}
}

// Analyze analyzes a single indicator series.
func (s *AnalysisService) Analyze(ctx context.Context, req *models.AnalyzeRequest) (*models.AnalysisResult, error) {
	cfg, err := s.mergeOptions(req.Options)
	if err != nil {
		return nil, err
	}

	analyzer := analysis.New(cfg, s.logger)

	result, err := analyzer.Analyze(&req.Series)
	if err != nil {
		return nil, asServiceError(err)
	}

	return result, nil
}

// AnalyzeBatch analyzes a batch of series. Indicators violating the input
// contract are reported in the response rather than failing the batch, so
// heterogeneous-quality batches always complete.
func (s *AnalysisService) AnalyzeBatch(ctx context.Context, req *models.AnalyzeBatchRequest) (*models.AnalyzeBatchResponse, error) {
	if len(req.Series) == 0 {
		return nil, NewServiceError(CodeEmptyBatch, "batch must contain at least one series")
	}

	cfg, err := s.mergeOptions(req.Options)
	if err != nil {
		return nil, err
	}

	analyzer := analysis.New(cfg, s.logger)
	items := analyzer.AnalyzeBatch(req.Series)

	resp := &models.AnalyzeBatchResponse{
		RequestID: uuid.New().String(),
		Results:   make([]*models.AnalysisResult, 0, len(items)),
	}

	for i, item := range items {
		if item.Err != nil {
			failure := models.BatchFailure{
				IndicatorID: req.Series[i].ID,
				Reason:      item.Err.Error(),
			}
			var inputErr *models.InputError
			if errors.As(item.Err, &inputErr) {
				failure.Reason = inputErr.Reason
			}
			resp.Failures = append(resp.Failures, failure)
			continue
		}
		resp.Results = append(resp.Results, item.Result)
	}

	resp.Analyzed = len(resp.Results)
	resp.Failed = len(resp.Failures)

	return resp, nil
}

// mergeOptions applies request overrides to the default thresholds and
// rejects values the engine cannot work with.
func (s *AnalysisService) mergeOptions(opts *models.AnalysisOptions) (analysis.Config, error) {
	cfg := s.defaults.WithOptions(opts)

	if cfg.ZScoreThreshold <= 0 {
		return cfg, NewServiceError(CodeInvalidOptions, "z_score_threshold must be positive")
	}
	if cfg.SlopeThreshold < 0 {
		return cfg, NewServiceError(CodeInvalidOptions, "slope_threshold must not be negative")
	}
	if cfg.VolatilityCVLimit <= 0 {
		return cfg, NewServiceError(CodeInvalidOptions, "volatility_cv_limit must be positive")
	}

	return cfg, nil
}

// asServiceError translates engine errors into service error codes.
func asServiceError(err error) error {
	var inputErr *models.InputError
	if errors.As(err, &inputErr) {
		return NewServiceErrorWithDetails(CodeInvalidSeries, inputErr.Reason, map[string]interface{}{
			"indicator_id": inputErr.IndicatorID,
		})
	}
	return err
}
