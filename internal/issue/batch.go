package issue

import (
	"context"
	"log/slog"
)

// Outcome records the result of one batch entry. Exactly one of Key and Err
// is set.
type Outcome struct {
	Index   int
	Summary string
	Key     string
	Err     error
}

// Failed reports whether the entry did not produce an issue.
func (o Outcome) Failed() bool { return o.Err != nil }

// BatchResult aggregates per-item outcomes in input order. The counts always
// match the recorded outcomes.
type BatchResult struct {
	Attempted int
	Succeeded int
	Failed    int
	Outcomes  []Outcome
}

// RunBatch processes the requests sequentially in input order. Requests that
// fail validation are recorded without touching the network, and no single
// item's failure stops the remaining items. An empty input yields an empty
// result, not an error.
func (c *Creator) RunBatch(ctx context.Context, requests []Request) *BatchResult {
	result := &BatchResult{Outcomes: make([]Outcome, 0, len(requests))}

	for i, req := range requests {
		outcome := Outcome{Index: i, Summary: req.Summary}

		key, err := c.CreateIssue(ctx, req)
		if err != nil {
			outcome.Err = err
			result.Failed++
			c.logger.Error("story failed",
				slog.Int("index", i),
				slog.Any("error", err))
		} else {
			outcome.Key = key
			result.Succeeded++
		}

		result.Attempted++
		result.Outcomes = append(result.Outcomes, outcome)
	}

	return result
}
