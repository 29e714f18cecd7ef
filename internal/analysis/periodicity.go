package analysis

import "github.com/indicata/indicata/internal/models"

// cadences lists the recognized reporting cadences, highest frequency
// first. interval is the calendar step between measurements, expected the
// number of measurements a full year at that cadence produces.
var cadences = []struct {
	periodicity models.Periodicity
	interval    int
	expected    int
}{
	{models.PeriodicityMonthly, 1, 12},
	{models.PeriodicityBimonthly, 2, 6},
	{models.PeriodicityQuarterly, 3, 4},
	{models.PeriodicityFourMonthly, 4, 3},
	{models.PeriodicitySemiannual, 6, 2},
}

// ClassifyPeriodicity infers the reporting cadence from the calendar
// positions (zero-based, ascending) that carry measurements.
//
// An empty series is unknown and a single measurement is annual. Positions
// forming a regular step of 1/2/3/4/6 map directly to a cadence, which
// also covers partial years (e.g. six consecutive months of a monthly
// indicator). Irregular patterns fall back to the cadence that assumes
// the fewest missing periods for the observed count.
func ClassifyPeriodicity(positions []int) models.Periodicity {
	n := len(positions)
	switch {
	case n == 0:
		return models.PeriodicityUnknown
	case n == 1:
		return models.PeriodicityAnnual
	}

	if step, ok := regularStep(positions); ok {
		for _, c := range cadences {
			if c.interval == step {
				return c.periodicity
			}
		}
	}

	// Fewest assumed missing periods: the smallest expected count that
	// still fits the observed one. Walk the table from the low-frequency
	// end so the tightest fit wins.
	for i := len(cadences) - 1; i >= 0; i-- {
		if cadences[i].expected >= n {
			return cadences[i].periodicity
		}
	}

	return models.PeriodicityMonthly
}

// regularStep reports the common difference of the positions when they
// form an arithmetic progression. Positions must be ascending.
func regularStep(positions []int) (int, bool) {
	step := positions[1] - positions[0]
	for i := 2; i < len(positions); i++ {
		if positions[i]-positions[i-1] != step {
			return 0, false
		}
	}
	return step, true
}
