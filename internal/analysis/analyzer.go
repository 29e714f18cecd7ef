// Package analysis implements the indicator analysis engine: periodicity
// classification, trend detection, statistical anomaly flagging, semaphore
// (compliance color) evaluation, descriptive statistics and the generated
// interpretation text. All functions are pure computation over an
// already-validated series; the engine performs no I/O.
package analysis

import (
	"github.com/indicata/indicata/internal/logging"
	"github.com/indicata/indicata/internal/models"
)

// Config holds the analysis thresholds. They are per-analyzer rather than
// package constants so callers can override them per request.
type Config struct {
	// ZScoreThreshold flags a point as anomalous when |z| exceeds it.
	ZScoreThreshold float64

	// SlopeThreshold separates growth/decline from stability.
	SlopeThreshold float64

	// VolatilityCVLimit marks a series volatile when its coefficient of
	// variation (percent) exceeds it.
	VolatilityCVLimit float64

	// Workers sets batch parallelism; values <= 1 run sequentially.
	Workers int
}

// DefaultConfig returns the default analysis thresholds.
func DefaultConfig() Config {
	return Config{
		ZScoreThreshold:   2.5,
		SlopeThreshold:    0.5,
		VolatilityCVLimit: 15.0,
		Workers:           1,
	}
}

// WithOptions returns a copy of the config with non-nil overrides applied.
func (c Config) WithOptions(opts *models.AnalysisOptions) Config {
	if opts == nil {
		return c
	}
	out := c
	if opts.ZScoreThreshold != nil {
		out.ZScoreThreshold = *opts.ZScoreThreshold
	}
	if opts.SlopeThreshold != nil {
		out.SlopeThreshold = *opts.SlopeThreshold
	}
	if opts.VolatilityCVLimit != nil {
		out.VolatilityCVLimit = *opts.VolatilityCVLimit
	}
	return out
}

// Analyzer turns indicator series into analysis results. It is stateless
// apart from its configuration and safe for concurrent use.
type Analyzer struct {
	cfg    Config
	logger *logging.Logger
}

// New creates an analyzer with the given thresholds.
func New(cfg Config, logger *logging.Logger) *Analyzer {
	if logger == nil {
		logger = logging.Global()
	}
	return &Analyzer{cfg: cfg, logger: logger}
}

// Config returns the analyzer's thresholds.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// Analyze produces the full analysis record for one indicator. It returns
// a *models.InputError when the series violates the loader contract; a
// series that is merely sparse or empty still analyzes, with the sparse
// outcomes (unknown periodicity, insufficient-data trend, gray semaphore,
// absent statistics) instead of an error.
func (a *Analyzer) Analyze(series *models.IndicatorSeries) (*models.AnalysisResult, error) {
	if err := series.Validate(); err != nil {
		return nil, err
	}

	points := series.Present()
	values := make([]float64, len(points))
	positions := make([]int, len(points))
	for i, p := range points {
		values[i] = p.Value
		positions[i] = p.Position
	}

	periodicity := ClassifyPeriodicity(positions)
	stats := Describe(values)
	trend, slope := a.classifyTrend(values, stats)
	anomalies := a.detectAnomalies(points, stats)
	semaphore := ClassifySemaphore(series.Latest(), series.Satisfactory, series.Critical)

	result := &models.AnalysisResult{
		IndicatorID: series.ID,
		Name:        series.Name,
		Periodicity: periodicity,
		Trend:       trend,
		Slope:       slope,
		Semaphore:   semaphore,
		Statistics:  stats,
		Anomalies:   anomalies,
	}
	result.Interpretation = interpret(result)

	a.logger.Debug("Indicator analyzed",
		"indicator_id", series.ID,
		"periodicity", string(periodicity),
		"trend", string(trend),
		"semaphore", string(semaphore),
		"anomalies", len(anomalies),
	)

	return result, nil
}
