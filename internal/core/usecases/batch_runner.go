// internal/core/usecases/batch_runner.go
package usecases

import (
	"context"

	"huntx/internal/core/domain"
	"huntx/internal/core/ports"
	"huntx/internal/platform/errors"
	"huntx/internal/platform/logx"
	"huntx/internal/platform/validator"
	"huntx/internal/platform/workerpool"
)

// ProgressSink receives batch progress notifications. Implementations
// must tolerate concurrent ItemCompleted calls.
type ProgressSink interface {
	BatchStarted(op domain.Operation, mode domain.Mode, total, skipped int)
	ItemCompleted(item string, ok bool, done, total int)
	BatchCompleted(batch *domain.BatchResult)
}

// BatchRunner orchestrates one batch: it partitions raw items into
// valid and invalid, dispatches the valid ones against the lookup
// service sequentially or through a bounded worker pool, and collects
// exactly one outcome per dispatched item.
type BatchRunner struct {
	service  ports.LookupService
	logger   logx.Logger
	progress ProgressSink
}

// Options configures one batch run.
type Options struct {
	Operation domain.Operation
	Mode      domain.Mode

	// MaxWorkers bounds in-flight lookups in concurrent mode.
	MaxWorkers int

	// Finder carries the shared name details for email-finder batches.
	// The per-item domain overrides Finder.Domain.
	Finder ports.FinderQuery
}

// NewBatchRunner creates a batch runner. The progress sink may be nil.
func NewBatchRunner(service ports.LookupService, logger logx.Logger, progress ProgressSink) *BatchRunner {
	if logger == nil {
		logger = logx.New()
	}
	if progress == nil {
		progress = noopProgress{}
	}
	return &BatchRunner{
		service:  service,
		logger:   logger.With("component", "batch-runner"),
		progress: progress,
	}
}

// Run executes the batch. Per-item lookup failures are captured as
// Failure results and never abort the remaining items; the returned
// error is reserved for malformed options.
func (r *BatchRunner) Run(ctx context.Context, items []string, opts Options) (*domain.BatchResult, error) {
	if opts.Operation == "" {
		return nil, domain.ErrUnknownOperation
	}
	if opts.Mode == "" {
		opts.Mode = domain.ModeSequential
	}
	if opts.MaxWorkers <= 0 {
		opts.MaxWorkers = 5
	}

	batch := domain.NewBatchResult(opts.Operation, opts.Mode)

	valid, skipped := r.partition(items, opts.Operation)
	batch.Skipped = skipped

	if len(skipped) > 0 {
		r.logger.Warn("skipping invalid items",
			"operation", opts.Operation,
			"count", len(skipped),
			"items", skipped,
		)
	}

	r.progress.BatchStarted(opts.Operation, opts.Mode, len(valid), len(skipped))

	r.logger.Info("starting batch",
		"operation", opts.Operation,
		"mode", opts.Mode,
		"items", len(valid),
		"skipped", len(skipped),
		"workers", opts.MaxWorkers,
	)

	// Nothing valid to dispatch: an empty result, no pool spun up.
	if len(valid) == 0 {
		batch.Finalize()
		r.progress.BatchCompleted(batch)
		return batch, nil
	}

	lookup := r.lookupFor(opts)

	if opts.Mode == domain.ModeConcurrent {
		r.runConcurrent(ctx, batch, valid, lookup, opts.MaxWorkers)
	} else {
		r.runSequential(ctx, batch, valid, lookup)
	}

	batch.Finalize()

	r.logger.Info("batch completed",
		"operation", opts.Operation,
		"succeeded", batch.Succeeded(),
		"failed", batch.Failed(),
		"skipped", len(batch.Skipped),
		"duration_ms", batch.Duration.Milliseconds(),
	)

	r.progress.BatchCompleted(batch)
	return batch, nil
}

// partition splits raw items into valid and invalid for the operation.
// Items are normalized before validation; blank items count as invalid.
func (r *BatchRunner) partition(items []string, op domain.Operation) (valid, skipped []string) {
	for _, raw := range items {
		item, err := normalizeItem(raw, op)
		if err != nil {
			r.logger.Debug("skipping item", "item", raw, "error", err.Error())
			skipped = append(skipped, raw)
			continue
		}
		valid = append(valid, item)
	}
	return valid, skipped
}

// normalizeItem canonicalizes one raw item for the operation. Finder
// batches target registrable domains: an email item contributes its
// host, and subdomains collapse to the eTLD+1.
func normalizeItem(raw string, op domain.Operation) (string, error) {
	if op.ItemKind() == domain.ItemKindEmail {
		item := validator.NormalizeEmail(raw)
		if !validator.IsEmail(item) {
			return "", errors.Wrapf(errors.ErrInvalidInput, "not a valid email: %q", raw)
		}
		return item, nil
	}

	item := validator.NormalizeDomain(raw)
	if op == domain.OperationEmailFinder {
		if email := validator.NormalizeEmail(raw); validator.IsEmail(email) {
			item = validator.EmailDomain(email)
		}
		item = validator.RegistrableDomain(item)
	}
	if !validator.IsDomain(item) {
		return "", errors.Wrapf(errors.ErrInvalidInput, "not a valid domain: %q", raw)
	}
	return item, nil
}

// lookupFor binds the configured operation to a per-item lookup call.
func (r *BatchRunner) lookupFor(opts Options) lookupFunc {
	switch opts.Operation {
	case domain.OperationEmailVerifier:
		return func(ctx context.Context, item string) (domain.Record, error) {
			return r.service.EmailVerifier(ctx, item)
		}
	case domain.OperationEmailFinder:
		return func(ctx context.Context, item string) (domain.Record, error) {
			query := opts.Finder
			query.Domain = item
			return r.service.EmailFinder(ctx, query)
		}
	default:
		return func(ctx context.Context, item string) (domain.Record, error) {
			return r.service.DomainSearch(ctx, item)
		}
	}
}

// runSequential dispatches items one at a time, in input order.
func (r *BatchRunner) runSequential(ctx context.Context, batch *domain.BatchResult, items []string, lookup lookupFunc) {
	total := len(items)
	for i, item := range items {
		if ctx.Err() != nil {
			r.logger.Warn("batch canceled",
				"dispatched", i,
				"total", total,
			)
			return
		}

		r.logger.Info("processing item",
			"index", i+1,
			"total", total,
			"item", item,
		)

		record, err := lookup(ctx, item)
		if err != nil {
			r.logger.Warn("lookup failed", "item", item, "error", err.Error())
			batch.Results = append(batch.Results, domain.NewFailure(item, err))
		} else {
			batch.Results = append(batch.Results, domain.NewSuccess(item, record))
		}

		r.progress.ItemCompleted(item, err == nil, i+1, total)
	}
}

// runConcurrent dispatches items through a bounded worker pool. The
// pool's result channel is the only path back from the workers, so the
// aggregation below runs in this single goroutine.
func (r *BatchRunner) runConcurrent(ctx context.Context, batch *domain.BatchResult, items []string, lookup lookupFunc, maxWorkers int) {
	pool := workerpool.New(workerpool.Config{
		Workers: maxWorkers,
		Logger:  r.logger,
	})
	pool.Start()
	defer pool.Stop()

	tasks := make([]workerpool.Task, 0, len(items))
	for _, item := range items {
		tasks = append(tasks, newLookupTask(item, lookup))
	}

	total := len(tasks)
	done := 0
	for _, res := range pool.Submit(ctx, tasks) {
		task := res.Task.(*lookupTask)
		batch.Results = append(batch.Results, task.Result())

		done++
		r.progress.ItemCompleted(task.Name(), res.Error == nil, done, total)
	}
}

// noopProgress discards progress notifications.
type noopProgress struct{}

func (noopProgress) BatchStarted(domain.Operation, domain.Mode, int, int) {}
func (noopProgress) ItemCompleted(string, bool, int, int)                 {}
func (noopProgress) BatchCompleted(*domain.BatchResult)                   {}
