// internal/core/domain/result.go
package domain

import "time"

// LookupResult is the outcome for one dispatched item: either a typed
// record or the message of the error that took its place. Exactly one
// LookupResult exists per dispatched item after a batch completes.
type LookupResult struct {
	Item   string `json:"item"`
	Record Record `json:"record,omitempty"`
	Err    string `json:"error,omitempty"`
}

// OK reports whether the lookup succeeded.
func (r LookupResult) OK() bool {
	return r.Err == ""
}

// NewSuccess builds a success result for an item.
func NewSuccess(item string, record Record) LookupResult {
	return LookupResult{Item: item, Record: record}
}

// NewFailure builds a failure result for an item. A nil error produces
// an empty message, which would read as success; callers pass real errors.
func NewFailure(item string, err error) LookupResult {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return LookupResult{Item: item, Err: msg}
}

// BatchResult aggregates the per-item outcomes of one batch run.
// Result order carries no meaning: concurrent dispatch completes in
// arbitrary order.
type BatchResult struct {
	Operation Operation      `json:"operation"`
	Mode      Mode           `json:"mode"`
	Results   []LookupResult `json:"results"`
	Skipped   []string       `json:"skipped,omitempty"`
	StartedAt time.Time      `json:"started_at"`
	Duration  time.Duration  `json:"duration"`
}

// NewBatchResult creates an empty batch result.
func NewBatchResult(op Operation, mode Mode) *BatchResult {
	return &BatchResult{
		Operation: op,
		Mode:      mode,
		Results:   []LookupResult{},
		StartedAt: time.Now(),
	}
}

// Finalize stamps the batch duration.
func (b *BatchResult) Finalize() {
	b.Duration = time.Since(b.StartedAt)
}

// Succeeded counts successful lookups.
func (b *BatchResult) Succeeded() int {
	n := 0
	for _, r := range b.Results {
		if r.OK() {
			n++
		}
	}
	return n
}

// Failed counts failed lookups.
func (b *BatchResult) Failed() int {
	return len(b.Results) - b.Succeeded()
}

// Items returns the set of dispatched items present in the results.
// Useful for checking the one-result-per-item invariant.
func (b *BatchResult) Items() map[string]int {
	items := make(map[string]int, len(b.Results))
	for _, r := range b.Results {
		items[r.Item]++
	}
	return items
}
