package analysis

import "github.com/indicata/indicata/internal/models"

// classifyTrend labels the direction of the series and returns the OLS
// slope. The slope is nil when fewer than two values are present.
//
// The volatility check runs before the slope comparison: a series whose
// coefficient of variation exceeds the configured limit is volatile no
// matter how steep its regression line is. A zero mean leaves the CV at
// zero (see Describe), so constant or zero-centered series fall through
// to the slope classification.
func (a *Analyzer) classifyTrend(values []float64, stats *models.Statistics) (models.Trend, *float64) {
	if len(values) < 2 {
		return models.TrendInsufficientData, nil
	}

	slope := linearSlope(values)

	if stats.CV > a.cfg.VolatilityCVLimit {
		return models.TrendVolatile, &slope
	}

	switch {
	case slope > a.cfg.SlopeThreshold:
		return models.TrendGrowth, &slope
	case slope < -a.cfg.SlopeThreshold:
		return models.TrendDecline, &slope
	default:
		return models.TrendStability, &slope
	}
}

// linearSlope fits an ordinary least-squares line through the compacted
// sequence of present values (x = 0, 1, 2, ...) and returns its slope.
// Gaps from missing periods do not stretch the x axis; the regression
// runs over the available points only.
func linearSlope(values []float64) float64 {
	n := float64(len(values))

	var sumX, sumY, sumXY, sumX2 float64
	for i, v := range values {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumX2 += x * x
	}

	denominator := n*sumX2 - sumX*sumX
	if denominator == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denominator
}
