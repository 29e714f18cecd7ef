package models

// Periodicity is the inferred reporting cadence of an indicator.
type Periodicity string

const (
	PeriodicityMonthly     Periodicity = "monthly"
	PeriodicityBimonthly   Periodicity = "bimonthly"
	PeriodicityQuarterly   Periodicity = "quarterly"
	PeriodicityFourMonthly Periodicity = "four_monthly"
	PeriodicitySemiannual  Periodicity = "semiannual"
	PeriodicityAnnual      Periodicity = "annual"
	PeriodicityUnknown     Periodicity = "unknown"
)

// Trend classifies the direction of an indicator over the observed window.
type Trend string

const (
	TrendGrowth           Trend = "growth"
	TrendStability        Trend = "stability"
	TrendDecline          Trend = "decline"
	TrendVolatile         Trend = "volatile"
	TrendInsufficientData Trend = "insufficient_data"
)

// Semaphore is the compliance color of an indicator against its thresholds.
type Semaphore string

const (
	SemaphoreGreen  Semaphore = "green"
	SemaphoreYellow Semaphore = "yellow"
	SemaphoreRed    Semaphore = "red"
	SemaphoreGray   Semaphore = "gray"
)

// AnomalyDirection tells whether an anomalous value sits above or below
// the series mean.
type AnomalyDirection string

const (
	AnomalyHigh AnomalyDirection = "high"
	AnomalyLow  AnomalyDirection = "low"
)

// Anomaly is one statistically atypical point of a series.
type Anomaly struct {
	Period           string           `json:"period"`
	Value            float64          `json:"value"`
	ZScore           float64          `json:"z_score"`
	Direction        AnomalyDirection `json:"direction"`
	PercentDeviation float64          `json:"percent_deviation"`
}

// Statistics holds the descriptive statistics of a series.
// Standard deviation is sample (Bessel-corrected); a single-value series
// reports StdDev and CV of zero.
type Statistics struct {
	Mean         float64 `json:"mean"`
	Median       float64 `json:"median"`
	StdDev       float64 `json:"std_dev"`
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	Range        float64 `json:"range"`
	CV           float64 `json:"cv"`
	PeriodsCount int     `json:"periods_count"`
}

// AnalysisResult is the immutable output of analyzing one indicator.
// Optional fields are nil when the series does not support them:
// Slope when fewer than two values are present, Statistics when none are.
type AnalysisResult struct {
	IndicatorID    int         `json:"indicator_id"`
	Name           string      `json:"name"`
	Periodicity    Periodicity `json:"periodicity"`
	Trend          Trend       `json:"trend"`
	Slope          *float64    `json:"slope,omitempty"`
	Semaphore      Semaphore   `json:"semaphore"`
	Statistics     *Statistics `json:"statistics,omitempty"`
	Anomalies      []Anomaly   `json:"anomalies"`
	Interpretation string      `json:"interpretation"`
}
