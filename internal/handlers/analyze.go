package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/indicata/indicata/internal/models"
	"github.com/indicata/indicata/internal/services"
)

// Analyze handles POST /v1/analyze: one indicator series in, one analysis
// result out.
func (h *Handler) Analyze(c *fiber.Ctx) error {
	var body models.AnalyzeRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_JSON",
				Message: "Failed to parse JSON body",
				Details: map[string]interface{}{"error": err.Error()},
			},
		})
	}

	result, err := h.analysisService.Analyze(c.Context(), &body)
	if err != nil {
		h.metrics.IndicatorsRejected.Inc()
		return h.serviceError(c, err)
	}

	h.metrics.IndicatorsAnalyzed.Inc()
	h.metrics.AnomaliesDetected.Add(float64(len(result.Anomalies)))

	return c.JSON(models.AnalyzeResponse{Result: result})
}

// AnalyzeBatch handles POST /v1/analyze/batch: N series in, N results out
// in input order, with per-indicator failures reported inline.
func (h *Handler) AnalyzeBatch(c *fiber.Ctx) error {
	var body models.AnalyzeBatchRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_JSON",
				Message: "Failed to parse JSON body",
				Details: map[string]interface{}{"error": err.Error()},
			},
		})
	}

	resp, err := h.analysisService.AnalyzeBatch(c.Context(), &body)
	if err != nil {
		return h.serviceError(c, err)
	}

	h.metrics.BatchSize.Observe(float64(len(body.Series)))
	h.metrics.IndicatorsAnalyzed.Add(float64(resp.Analyzed))
	h.metrics.IndicatorsRejected.Add(float64(resp.Failed))
	for _, result := range resp.Results {
		h.metrics.AnomaliesDetected.Add(float64(len(result.Anomalies)))
	}

	return c.JSON(resp)
}

// serviceError maps service error codes to HTTP statuses.
func (h *Handler) serviceError(c *fiber.Ctx, err error) error {
	if svcErr, ok := err.(*services.ServiceError); ok {
		status := fiber.StatusInternalServerError
		switch svcErr.Code {
		case services.CodeInvalidSeries, services.CodeInvalidOptions, services.CodeEmptyBatch:
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    svcErr.Code,
				Message: svcErr.Message,
				Details: svcErr.Details,
			},
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "ANALYSIS_FAILED",
			Message: err.Error(),
		},
	})
}
