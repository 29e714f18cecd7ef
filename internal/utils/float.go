package utils

import "math"

// IsFinite reports whether f is a usable measurement value
// (not NaN and not infinite).
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Float64Ptr returns a pointer to v. Handy for building sparse series and
// optional thresholds.
func Float64Ptr(v float64) *float64 {
	return &v
}
