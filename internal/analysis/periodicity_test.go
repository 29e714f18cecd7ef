package analysis

import (
	"testing"

	"github.com/indicata/indicata/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestClassifyPeriodicity(t *testing.T) {
	tests := []struct {
		name      string
		positions []int
		expected  models.Periodicity
	}{
		{
			name:      "full year of monthly data",
			positions: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
			expected:  models.PeriodicityMonthly,
		},
		{
			name:      "partial year, consecutive months",
			positions: []int{0, 1, 2, 3, 4, 5},
			expected:  models.PeriodicityMonthly,
		},
		{
			name:      "bimonthly pattern",
			positions: []int{1, 3, 5, 7, 9, 11},
			expected:  models.PeriodicityBimonthly,
		},
		{
			name:      "quarterly pattern (Mar/Jun/Sep/Dec)",
			positions: []int{2, 5, 8, 11},
			expected:  models.PeriodicityQuarterly,
		},
		{
			name:      "partial quarterly pattern",
			positions: []int{2, 5, 8},
			expected:  models.PeriodicityQuarterly,
		},
		{
			name:      "four-monthly pattern",
			positions: []int{3, 7, 11},
			expected:  models.PeriodicityFourMonthly,
		},
		{
			name:      "semiannual pattern",
			positions: []int{5, 11},
			expected:  models.PeriodicitySemiannual,
		},
		{
			name:      "single year-end measurement",
			positions: []int{11},
			expected:  models.PeriodicityAnnual,
		},
		{
			name:      "no measurements",
			positions: []int{},
			expected:  models.PeriodicityUnknown,
		},
		{
			name:      "four irregular months fall back to quarterly",
			positions: []int{0, 1, 5, 9},
			expected:  models.PeriodicityQuarterly,
		},
		{
			name:      "five irregular months fall back to bimonthly",
			positions: []int{0, 1, 2, 6, 11},
			expected:  models.PeriodicityBimonthly,
		},
		{
			name:      "eleven months with one gap stay monthly",
			positions: []int{0, 1, 2, 3, 4, 6, 7, 8, 9, 10, 11},
			expected:  models.PeriodicityMonthly,
		},
		{
			name:      "two far-apart months fall back to semiannual",
			positions: []int{0, 11},
			expected:  models.PeriodicitySemiannual,
		},
		{
			name:      "seven months fall back to monthly",
			positions: []int{0, 2, 3, 5, 7, 8, 11},
			expected:  models.PeriodicityMonthly,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyPeriodicity(tt.positions))
		})
	}
}

func TestRegularStep(t *testing.T) {
	step, ok := regularStep([]int{2, 5, 8, 11})
	assert.True(t, ok)
	assert.Equal(t, 3, step)

	_, ok = regularStep([]int{0, 1, 5})
	assert.False(t, ok)
}
