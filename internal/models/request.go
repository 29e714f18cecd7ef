package models

// AnalysisOptions carries per-request overrides for the analysis
// thresholds. Nil fields keep the configured defaults.
type AnalysisOptions struct {
	ZScoreThreshold   *float64 `json:"z_score_threshold,omitempty"`
	SlopeThreshold    *float64 `json:"slope_threshold,omitempty"`
	VolatilityCVLimit *float64 `json:"volatility_cv_limit,omitempty"`
}

// AnalyzeRequest is the body of POST /v1/analyze.
type AnalyzeRequest struct {
	Series  IndicatorSeries  `json:"series"`
	Options *AnalysisOptions `json:"options,omitempty"`
}

// AnalyzeBatchRequest is the body of POST /v1/analyze/batch.
type AnalyzeBatchRequest struct {
	Series  []IndicatorSeries `json:"series"`
	Options *AnalysisOptions  `json:"options,omitempty"`
}
