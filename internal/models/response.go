package models

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// AnalyzeResponse is the body returned by POST /v1/analyze.
type AnalyzeResponse struct {
	Result *AnalysisResult `json:"result"`
}

// BatchFailure reports one indicator that could not be analyzed.
type BatchFailure struct {
	IndicatorID int    `json:"indicator_id"`
	Reason      string `json:"reason"`
}

// AnalyzeBatchResponse is the body returned by POST /v1/analyze/batch.
// Results keep the input order of the series that analyzed successfully;
// Failures lists the ones that violated the input contract.
type AnalyzeBatchResponse struct {
	RequestID string            `json:"request_id"`
	Analyzed  int               `json:"analyzed"`
	Failed    int               `json:"failed"`
	Results   []*AnalysisResult `json:"results"`
	Failures  []BatchFailure    `json:"failures,omitempty"`
}

// ErrorResponse represents error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail represents error details
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Path    string                 `json:"path,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}
