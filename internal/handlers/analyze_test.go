package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/indicata/indicata/internal/analysis"
	"github.com/indicata/indicata/internal/logging"
	"github.com/indicata/indicata/internal/middleware"
	"github.com/indicata/indicata/internal/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() (*fiber.App, *Handler) {
	logger := logging.NewWithWriter(io.Discard, zerolog.Disabled)
	h := New(logger, analysis.DefaultConfig(), middleware.NewMetrics())

	app := fiber.New()
	app.Get("/health", h.Health)
	app.Post("/v1/analyze", h.Analyze)
	app.Post("/v1/analyze/batch", h.AnalyzeBatch)
	app.Use(h.NotFound)

	return app, h
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func monthlyValues(values ...float64) []models.PeriodValue {
	pvs := make([]models.PeriodValue, len(values))
	for i := range values {
		v := values[i]
		pvs[i] = models.PeriodValue{Label: models.Months[i], Value: &v}
	}
	return pvs
}

func TestAnalyzeEndpoint(t *testing.T) {
	app, h := newTestHandler()

	resp := postJSON(t, app, "/v1/analyze", models.AnalyzeRequest{
		Series: models.IndicatorSeries{
			ID:     1,
			Name:   "Coverage",
			Values: monthlyValues(85, 90, 88, 95, 100, 98),
		},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body models.AnalyzeResponse
	decodeJSON(t, resp, &body)

	require.NotNil(t, body.Result)
	assert.Equal(t, 1, body.Result.IndicatorID)
	assert.Equal(t, models.PeriodicityMonthly, body.Result.Periodicity)
	assert.Equal(t, models.TrendGrowth, body.Result.Trend)
	assert.NotEmpty(t, body.Result.Interpretation)

	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.IndicatorsAnalyzed))
	assert.Equal(t, 0.0, testutil.ToFloat64(h.metrics.IndicatorsRejected))
}

func TestAnalyzeEndpoint_InvalidJSON(t *testing.T) {
	app, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body models.ErrorResponse
	decodeJSON(t, resp, &body)
	assert.Equal(t, "INVALID_JSON", body.Error.Code)
}

func TestAnalyzeEndpoint_InvalidSeries(t *testing.T) {
	app, h := newTestHandler()

	resp := postJSON(t, app, "/v1/analyze", models.AnalyzeRequest{
		Series: models.IndicatorSeries{ID: 9, Name: ""},
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body models.ErrorResponse
	decodeJSON(t, resp, &body)
	assert.Equal(t, "INVALID_SERIES", body.Error.Code)
	assert.Equal(t, float64(9), body.Error.Details["indicator_id"])

	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.IndicatorsRejected))
}

func TestAnalyzeEndpoint_InvalidOptions(t *testing.T) {
	app, _ := newTestHandler()

	zero := 0.0
	resp := postJSON(t, app, "/v1/analyze", models.AnalyzeRequest{
		Series: models.IndicatorSeries{
			ID:     1,
			Name:   "X",
			Values: monthlyValues(1, 2, 3),
		},
		Options: &models.AnalysisOptions{ZScoreThreshold: &zero},
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body models.ErrorResponse
	decodeJSON(t, resp, &body)
	assert.Equal(t, "INVALID_OPTIONS", body.Error.Code)
}

func TestAnalyzeBatchEndpoint(t *testing.T) {
	app, h := newTestHandler()

	resp := postJSON(t, app, "/v1/analyze/batch", models.AnalyzeBatchRequest{
		Series: []models.IndicatorSeries{
			{ID: 1, Name: "Good", Values: monthlyValues(10, 11, 12)},
			{ID: 2, Name: ""},
			{ID: 3, Name: "Also Good", Values: monthlyValues(30, 29, 28)},
		},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body models.AnalyzeBatchResponse
	decodeJSON(t, resp, &body)

	assert.NotEmpty(t, body.RequestID)
	assert.Equal(t, 2, body.Analyzed)
	assert.Equal(t, 1, body.Failed)
	require.Len(t, body.Results, 2)
	assert.Equal(t, 1, body.Results[0].IndicatorID)
	assert.Equal(t, 3, body.Results[1].IndicatorID)
	require.Len(t, body.Failures, 1)
	assert.Equal(t, 2, body.Failures[0].IndicatorID)

	assert.Equal(t, 2.0, testutil.ToFloat64(h.metrics.IndicatorsAnalyzed))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.IndicatorsRejected))
}

func TestAnalyzeBatchEndpoint_Empty(t *testing.T) {
	app, _ := newTestHandler()

	resp := postJSON(t, app, "/v1/analyze/batch", models.AnalyzeBatchRequest{})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body models.ErrorResponse
	decodeJSON(t, resp, &body)
	assert.Equal(t, "EMPTY_BATCH", body.Error.Code)
}
