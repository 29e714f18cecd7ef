package models

import "fmt"

// InputError reports a series that violates the loader contract
// (duplicate periods, unknown labels, non-finite values). It carries the
// offending indicator id so batch callers can report partial failures.
type InputError struct {
	IndicatorID int    `json:"indicator_id"`
	Reason      string `json:"reason"`
}

func (e *InputError) Error() string {
	return fmt.Sprintf("indicator %d: %s", e.IndicatorID, e.Reason)
}

// NewInputError creates an InputError for the given indicator.
func NewInputError(indicatorID int, reason string) *InputError {
	return &InputError{IndicatorID: indicatorID, Reason: reason}
}

// NewInputErrorf creates an InputError with a formatted reason.
func NewInputErrorf(indicatorID int, format string, args ...interface{}) *InputError {
	return &InputError{IndicatorID: indicatorID, Reason: fmt.Sprintf(format, args...)}
}
