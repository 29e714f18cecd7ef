package analysis

import (
	"sync"

	"github.com/indicata/indicata/internal/models"
)

// BatchItem pairs the outcome of analyzing one series with any input
// error it raised. Exactly one of Result and Err is set.
type BatchItem struct {
	Result *models.AnalysisResult
	Err    error
}

// AnalyzeBatch analyzes a batch of independent series. Output order always
// matches input order. A series that violates the input contract yields a
// BatchItem with Err set and never aborts the rest of the batch.
//
// With Config.Workers > 1 the batch fans out over a bounded worker pool;
// the analyses share no mutable state, so the result is identical to the
// sequential run.
func (a *Analyzer) AnalyzeBatch(series []models.IndicatorSeries) []BatchItem {
	items := make([]BatchItem, len(series))

	workers := a.cfg.Workers
	if workers > len(series) {
		workers = len(series)
	}

	if workers <= 1 {
		for i := range series {
			items[i].Result, items[i].Err = a.Analyze(&series[i])
		}
	} else {
		jobs := make(chan int)
		var wg sync.WaitGroup

		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range jobs {
					items[i].Result, items[i].Err = a.Analyze(&series[i])
				}
			}()
		}

		for i := range series {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
	}

	failed := 0
	for _, item := range items {
		if item.Err != nil {
			failed++
		}
	}
	a.logger.Info("Batch analysis complete",
		"total", len(series),
		"failed", failed,
	)

	return items
}
