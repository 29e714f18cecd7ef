package analysis

import (
	"math"

	"github.com/indicata/indicata/internal/models"
)

// detectAnomalies flags the points whose z-score magnitude exceeds the
// configured threshold, in chronological order. A series with fewer than
// two values or with zero variance has no anomalies by definition, so the
// z-score denominator never divides by zero.
func (a *Analyzer) detectAnomalies(points []models.PresentPoint, stats *models.Statistics) []models.Anomaly {
	anomalies := make([]models.Anomaly, 0)

	if len(points) < 2 || stats == nil || stats.StdDev == 0 {
		return anomalies
	}

	for _, p := range points {
		z := (p.Value - stats.Mean) / stats.StdDev
		if math.Abs(z) <= a.cfg.ZScoreThreshold {
			continue
		}

		direction := models.AnomalyLow
		if z > 0 {
			direction = models.AnomalyHigh
		}

		percent := 0.0
		if stats.Mean != 0 {
			percent = (p.Value - stats.Mean) / stats.Mean * 100
		}

		anomalies = append(anomalies, models.Anomaly{
			Period:           p.Label,
			Value:            p.Value,
			ZScore:           z,
			Direction:        direction,
			PercentDeviation: percent,
		})
	}

	return anomalies
}
