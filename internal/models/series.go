package models

import (
	"strings"

	"github.com/indicata/indicata/internal/utils"
)

// Months is the canonical reporting calendar, in chronological order.
// Period labels in an IndicatorSeries must resolve to one of these.
var Months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// monthPositions maps lowercased month names (full and 3-letter) to their
// zero-based calendar position.
var monthPositions = buildMonthPositions()

func buildMonthPositions() map[string]int {
	m := make(map[string]int, len(Months)*2)
	for i, name := range Months {
		lower := strings.ToLower(name)
		m[lower] = i
		m[lower[:3]] = i
	}
	return m
}

// MonthPosition resolves a period label to its calendar position.
// Matching is case-insensitive and accepts 3-letter abbreviations.
func MonthPosition(label string) (int, bool) {
	pos, ok := monthPositions[strings.ToLower(strings.TrimSpace(label))]
	return pos, ok
}

// CanonicalPeriod returns the canonical full month name for a label.
func CanonicalPeriod(label string) (string, bool) {
	pos, ok := MonthPosition(label)
	if !ok {
		return "", false
	}
	return Months[pos], true
}

// PeriodValue is one cell of an indicator series: a period label and its
// measured value. A nil Value means the period was not measured.
type PeriodValue struct {
	Label string   `json:"period"`
	Value *float64 `json:"value"`
}

// IndicatorSeries is the validated input record for one indicator, as
// produced by the upstream data loader.
type IndicatorSeries struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	Target       *float64      `json:"target,omitempty"`
	Satisfactory *float64      `json:"satisfactory,omitempty"`
	Critical     *float64      `json:"critical,omitempty"`
	Values       []PeriodValue `json:"values"`
}

// PresentPoint is a period that carries a measurement, positioned on the
// canonical calendar.
type PresentPoint struct {
	Position int
	Label    string
	Value    float64
}

// Validate checks the loader contract: non-empty name, known and unique
// period labels, finite values and thresholds. Returns an *InputError
// carrying the indicator id on the first violation found.
func (s *IndicatorSeries) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return NewInputError(s.ID, "name must not be empty")
	}

	seen := make(map[int]string, len(s.Values))
	for _, pv := range s.Values {
		pos, ok := MonthPosition(pv.Label)
		if !ok {
			return NewInputErrorf(s.ID, "unknown period label %q", pv.Label)
		}
		if prev, dup := seen[pos]; dup {
			return NewInputErrorf(s.ID, "duplicate period label %q (already seen as %q)", pv.Label, prev)
		}
		seen[pos] = pv.Label

		if pv.Value != nil && !utils.IsFinite(*pv.Value) {
			return NewInputErrorf(s.ID, "non-finite value for period %q", pv.Label)
		}
	}

	for _, th := range []struct {
		name  string
		value *float64
	}{
		{"target", s.Target},
		{"satisfactory", s.Satisfactory},
		{"critical", s.Critical},
	} {
		if th.value != nil && !utils.IsFinite(*th.value) {
			return NewInputErrorf(s.ID, "non-finite %s threshold", th.name)
		}
	}

	return nil
}

// Present returns the measured points of the series in calendar order.
// The caller must have validated the series first; unknown labels are
// silently skipped here.
func (s *IndicatorSeries) Present() []PresentPoint {
	points := make([]PresentPoint, 0, len(s.Values))
	for pos, name := range Months {
		for _, pv := range s.Values {
			p, ok := MonthPosition(pv.Label)
			if !ok || p != pos || pv.Value == nil {
				continue
			}
			points = append(points, PresentPoint{
				Position: pos,
				Label:    name,
				Value:    *pv.Value,
			})
		}
	}
	return points
}

// Latest returns the most recent measured value in calendar order,
// or nil when the series has no measurements.
func (s *IndicatorSeries) Latest() *float64 {
	points := s.Present()
	if len(points) == 0 {
		return nil
	}
	v := points[len(points)-1].Value
	return &v
}
