package analysis

import (
	"testing"

	"github.com/indicata/indicata/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classify(t *testing.T, values []float64) (models.Trend, *float64) {
	t.Helper()
	a := New(DefaultConfig(), nil)
	return a.classifyTrend(values, Describe(values))
}

func TestClassifyTrend_Growth(t *testing.T) {
	trend, slope := classify(t, []float64{10, 11, 12, 13})

	assert.Equal(t, models.TrendGrowth, trend)
	require.NotNil(t, slope)
	assert.InDelta(t, 1.0, *slope, 0.001)
}

func TestClassifyTrend_Decline(t *testing.T) {
	trend, slope := classify(t, []float64{13, 12, 11, 10})

	assert.Equal(t, models.TrendDecline, trend)
	require.NotNil(t, slope)
	assert.InDelta(t, -1.0, *slope, 0.001)
}

func TestClassifyTrend_Stability(t *testing.T) {
	trend, slope := classify(t, []float64{10, 10.2, 9.9, 10.1})

	assert.Equal(t, models.TrendStability, trend)
	require.NotNil(t, slope)
}

func TestClassifyTrend_VolatileBeatsSlope(t *testing.T) {
	// steep slope, but the variability dominates
	trend, slope := classify(t, []float64{10, 100, 20, 110, 30, 120})

	assert.Equal(t, models.TrendVolatile, trend)
	require.NotNil(t, slope)
	assert.Greater(t, *slope, 0.5)
}

func TestClassifyTrend_InsufficientData(t *testing.T) {
	trend, slope := classify(t, []float64{42})
	assert.Equal(t, models.TrendInsufficientData, trend)
	assert.Nil(t, slope)

	trend, slope = classify(t, nil)
	assert.Equal(t, models.TrendInsufficientData, trend)
	assert.Nil(t, slope)
}

func TestClassifyTrend_ConstantSeriesIsStable(t *testing.T) {
	// zero variance: CV stays zero, slope is zero
	trend, slope := classify(t, []float64{10, 10, 10, 10})

	assert.Equal(t, models.TrendStability, trend)
	require.NotNil(t, slope)
	assert.Equal(t, 0.0, *slope)
}

func TestClassifyTrend_ZeroMeanFallsThroughToSlope(t *testing.T) {
	// mean is exactly zero; CV must not divide by it
	trend, slope := classify(t, []float64{-0.3, -0.1, 0.1, 0.3})

	assert.Equal(t, models.TrendStability, trend)
	require.NotNil(t, slope)
}

func TestLinearSlope_VerticalShiftInvariant(t *testing.T) {
	base := []float64{3, 7, 4, 9, 6}
	shifted := make([]float64, len(base))
	for i, v := range base {
		shifted[i] = v + 1000
	}

	assert.InDelta(t, linearSlope(base), linearSlope(shifted), 1e-9)
}
