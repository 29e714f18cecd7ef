package analysis

import (
	"math"
	"sort"

	"github.com/indicata/indicata/internal/models"
)

// Describe computes the descriptive statistics over the present values of
// a series. It returns nil when no values are present. Standard deviation
// is sample (Bessel-corrected) and is the same convention the anomaly
// detector uses for its z-scores; a single value yields a StdDev of zero.
func Describe(values []float64) *models.Statistics {
	if len(values) == 0 {
		return nil
	}

	mean := Mean(values)
	stdDev := SampleStdDev(values)

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	cv := 0.0
	if mean != 0 {
		cv = stdDev / mean * 100
	}

	return &models.Statistics{
		Mean:         mean,
		Median:       Median(values),
		StdDev:       stdDev,
		Min:          min,
		Max:          max,
		Range:        max - min,
		CV:           cv,
		PeriodsCount: len(values),
	}
}

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Median returns the middle value (average of the two middle values for
// an even count), or 0 for an empty slice. The input is not modified.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := n / 2
	if n%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// SampleStdDev returns the Bessel-corrected standard deviation, or 0 when
// fewer than two values are given.
func SampleStdDev(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}

	mean := Mean(values)
	var varianceSum float64
	for _, v := range values {
		diff := v - mean
		varianceSum += diff * diff
	}
	return math.Sqrt(varianceSum / float64(n-1))
}
