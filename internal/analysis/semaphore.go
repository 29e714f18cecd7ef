package analysis

import "github.com/indicata/indicata/internal/models"

// ClassifySemaphore evaluates the compliance color of the latest obtained
// value against the per-indicator thresholds. Rules run in a fixed order
// and the first one that fires wins:
//
//  1. no obtained value, no usable thresholds, or an inverted pair
//     (critical above satisfactory) -> gray
//  2. obtained >= satisfactory -> green
//  3. critical <= obtained < satisfactory -> yellow
//  4. obtained < critical -> red
//
// A rule whose threshold operand is missing is skipped rather than
// guessed, so a series with only one threshold can still land on gray.
func ClassifySemaphore(obtained, satisfactory, critical *float64) models.Semaphore {
	if obtained == nil {
		return models.SemaphoreGray
	}
	if satisfactory == nil && critical == nil {
		return models.SemaphoreGray
	}
	if satisfactory != nil && critical != nil && *critical > *satisfactory {
		return models.SemaphoreGray
	}

	if satisfactory != nil && *obtained >= *satisfactory {
		return models.SemaphoreGreen
	}
	if satisfactory != nil && critical != nil && *obtained >= *critical {
		return models.SemaphoreYellow
	}
	if critical != nil && *obtained < *critical {
		return models.SemaphoreRed
	}

	return models.SemaphoreGray
}
