// internal/core/usecases/lookup_task.go
package usecases

import (
	"context"

	"huntx/internal/core/domain"
)

// lookupFunc performs one remote lookup for an item.
type lookupFunc func(ctx context.Context, item string) (domain.Record, error)

// lookupTask adapts one item lookup to workerpool.Task. Any failure of
// the call is converted into a Failure result instead of propagating:
// a single bad item must not take the batch down.
type lookupTask struct {
	item   string
	lookup lookupFunc

	result domain.LookupResult
}

func newLookupTask(item string, lookup lookupFunc) *lookupTask {
	return &lookupTask{item: item, lookup: lookup}
}

// Execute runs the lookup and captures the outcome.
func (t *lookupTask) Execute(ctx context.Context) error {
	record, err := t.lookup(ctx, t.item)
	if err != nil {
		t.result = domain.NewFailure(t.item, err)
		return err
	}
	t.result = domain.NewSuccess(t.item, record)
	return nil
}

// Name identifies the task in pool logs.
func (t *lookupTask) Name() string {
	return t.item
}

// Result returns the captured outcome.
func (t *lookupTask) Result() domain.LookupResult {
	return t.result
}
