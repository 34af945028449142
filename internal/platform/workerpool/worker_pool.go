// internal/platform/workerpool/worker_pool.go
package workerpool

import (
	"context"
	"sync"
	"time"

	"huntx/internal/platform/logx"
)

// Task is one unit of work executed by the pool.
type Task interface {
	// Execute runs the task
	Execute(ctx context.Context) error

	// Name identifies the task in logs
	Name() string
}

// TaskResult is the outcome of one executed task.
type TaskResult struct {
	Task     Task
	Error    error
	Duration time.Duration
}

// Pool executes tasks concurrently with a hard cap on in-flight work.
// The worker count is the upper bound on simultaneous Execute calls.
type Pool struct {
	workers int
	logger  logx.Logger

	taskQueue chan Task
	results   chan TaskResult

	wg      sync.WaitGroup
	feeders sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
}

// Config configures the pool.
type Config struct {
	Workers int
	Logger  logx.Logger
}

// New creates a pool. Workers defaults to 4.
func New(cfg Config) *Pool {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.Logger == nil {
		cfg.Logger = logx.New()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Pool{
		workers:   cfg.Workers,
		logger:    cfg.Logger.With("component", "worker-pool"),
		taskQueue: make(chan Task, cfg.Workers*2),
		results:   make(chan TaskResult, cfg.Workers*2),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start launches the workers.
func (p *Pool) Start() {
	p.logger.Debug("starting worker pool", "workers", p.workers)

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return

		case task, ok := <-p.taskQueue:
			if !ok {
				return
			}
			p.executeTask(id, task)
		}
	}
}

func (p *Pool) executeTask(workerID int, task Task) {
	start := time.Now()

	err := task.Execute(p.ctx)
	duration := time.Since(start)

	p.logger.Debug("task completed",
		"worker_id", workerID,
		"task", task.Name(),
		"duration_ms", duration.Milliseconds(),
		"error", err != nil,
	)

	select {
	case p.results <- TaskResult{Task: task, Error: err, Duration: duration}:
	case <-p.ctx.Done():
		// pool stopped, discard result
	}
}

// Submit queues the tasks and blocks until every submitted task has a
// result or the pool is stopped. One TaskResult is returned per task:
// nothing is abandoned while the pool context is live.
func (p *Pool) Submit(ctx context.Context, tasks []Task) []TaskResult {
	if len(tasks) == 0 {
		return []TaskResult{}
	}

	p.logger.Debug("submitting tasks", "total", len(tasks))

	p.feeders.Add(1)
	go func() {
		defer p.feeders.Done()
		for _, task := range tasks {
			select {
			case p.taskQueue <- task:
			case <-p.ctx.Done():
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	results := make([]TaskResult, 0, len(tasks))
	for i := 0; i < len(tasks); i++ {
		select {
		case result := <-p.results:
			results = append(results, result)
		case <-ctx.Done():
			p.logger.Warn("submit canceled while waiting for results",
				"collected", len(results),
				"expected", len(tasks),
			)
			return results
		case <-p.ctx.Done():
			p.logger.Warn("pool stopped while waiting for results",
				"collected", len(results),
				"expected", len(tasks),
			)
			return results
		}
	}

	return results
}

// Stop cancels in-flight work and waits for the workers to exit. The
// queue is only closed once every feeder goroutine has returned, so a
// feeder still holding queued tasks can never send on a closed channel.
func (p *Pool) Stop() {
	p.cancel()
	p.feeders.Wait()
	close(p.taskQueue)
	p.wg.Wait()
	close(p.results)

	p.logger.Debug("worker pool stopped")
}

// Workers returns the configured worker count.
func (p *Pool) Workers() int {
	return p.workers
}
