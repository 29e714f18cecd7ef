package analysis

import (
	"fmt"
	"strings"

	"github.com/indicata/indicata/internal/models"
)

var periodicityText = map[models.Periodicity]string{
	models.PeriodicityMonthly:     "monthly",
	models.PeriodicityBimonthly:   "bimonthly",
	models.PeriodicityQuarterly:   "quarterly",
	models.PeriodicityFourMonthly: "four-monthly",
	models.PeriodicitySemiannual:  "semiannual",
	models.PeriodicityAnnual:      "annual",
}

var trendText = map[models.Trend]string{
	models.TrendGrowth:           "Recorded values show a sustained growth trend.",
	models.TrendDecline:          "Recorded values show a declining trend that needs attention.",
	models.TrendStability:        "Values remain stable across the observed periods.",
	models.TrendVolatile:         "Values show high variability, indicating volatile behavior.",
	models.TrendInsufficientData: "Not enough measurements are available to determine a trend.",
}

var semaphoreText = map[models.Semaphore]string{
	models.SemaphoreGreen:  "Current status is SATISFACTORY, meeting the defined thresholds.",
	models.SemaphoreYellow: "Current status is ACCEPTABLE but should be monitored to avoid deterioration.",
	models.SemaphoreRed:    "Current status is CRITICAL, below the minimum expected level.",
	models.SemaphoreGray:   "Current status cannot be assessed against the defined thresholds.",
}

// interpret assembles the human-readable summary from the classifications
// already present on the result. It makes no decisions of its own, so the
// same result always yields the identical string.
func interpret(r *models.AnalysisResult) string {
	parts := make([]string, 0, 5)

	if name, ok := periodicityText[r.Periodicity]; ok {
		parts = append(parts, fmt.Sprintf("Indicator %q reports on a %s cadence.", r.Name, name))
	} else {
		parts = append(parts, fmt.Sprintf("Indicator %q has no identifiable reporting cadence.", r.Name))
	}

	parts = append(parts, trendText[r.Trend])
	parts = append(parts, semaphoreText[r.Semaphore])

	if r.Statistics != nil {
		parts = append(parts, fmt.Sprintf("The average recorded value is %.2f.", r.Statistics.Mean))
	}

	switch n := len(r.Anomalies); {
	case n == 1:
		parts = append(parts, "1 anomalous value was detected and should be reviewed.")
	case n > 1:
		parts = append(parts, fmt.Sprintf("%d anomalous values were detected and should be reviewed.", n))
	}

	return strings.Join(parts, " ")
}
