// internal/platform/workerpool/worker_pool_test.go
package workerpool

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"huntx/internal/platform/errors"
	"huntx/internal/platform/logx"
	"huntx/internal/testutil"
)

// testTask sleeps for delay and records the in-flight high-water mark.
type testTask struct {
	name  string
	delay time.Duration
	fail  bool

	mu          *sync.Mutex
	inFlight    *int
	maxInFlight *int
}

func (t *testTask) Execute(ctx context.Context) error {
	if t.mu != nil {
		t.mu.Lock()
		*t.inFlight++
		if *t.inFlight > *t.maxInFlight {
			*t.maxInFlight = *t.inFlight
		}
		t.mu.Unlock()

		defer func() {
			t.mu.Lock()
			*t.inFlight--
			t.mu.Unlock()
		}()
	}

	if t.delay > 0 {
		select {
		case <-time.After(t.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if t.fail {
		return errors.New("task failed")
	}
	return nil
}

func (t *testTask) Name() string { return t.name }

func makeTasks(n int, delay time.Duration) ([]Task, func() int) {
	var mu sync.Mutex
	var inFlight, maxInFlight int

	tasks := make([]Task, n)
	for i := range tasks {
		tasks[i] = &testTask{
			name:        fmt.Sprintf("task-%d", i),
			delay:       delay,
			mu:          &mu,
			inFlight:    &inFlight,
			maxInFlight: &maxInFlight,
		}
	}

	high := func() int {
		mu.Lock()
		defer mu.Unlock()
		return maxInFlight
	}
	return tasks, high
}

func TestSubmitReturnsOneResultPerTask(t *testing.T) {
	pool := New(Config{Workers: 3, Logger: logx.NewSilent()})
	pool.Start()
	defer pool.Stop()

	tasks, _ := makeTasks(10, 0)
	results := pool.Submit(context.Background(), tasks)

	testutil.AssertEqual(t, len(results), 10, "result count")

	seen := make(map[string]int)
	for _, result := range results {
		seen[result.Task.Name()]++
		testutil.AssertNoError(t, result.Error, result.Task.Name())
	}
	for name, count := range seen {
		testutil.AssertEqual(t, count, 1, "results for "+name)
	}
}

func TestWorkerCountBoundsConcurrency(t *testing.T) {
	pool := New(Config{Workers: 3, Logger: logx.NewSilent()})
	pool.Start()
	defer pool.Stop()

	tasks, high := makeTasks(9, 30*time.Millisecond)

	start := time.Now()
	results := pool.Submit(context.Background(), tasks)
	elapsed := time.Since(start)

	testutil.AssertEqual(t, len(results), 9, "result count")
	testutil.AssertTrue(t, high() <= 3, "in-flight bound")
	// 9 tasks at 30ms on 3 workers take ~90ms; sequential would take 270ms
	testutil.AssertTrue(t, elapsed < 250*time.Millisecond, "tasks ran concurrently")
}

func TestTaskErrorsAreReported(t *testing.T) {
	pool := New(Config{Workers: 2, Logger: logx.NewSilent()})
	pool.Start()
	defer pool.Stop()

	tasks := []Task{
		&testTask{name: "ok"},
		&testTask{name: "boom", fail: true},
		&testTask{name: "also-ok"},
	}

	results := pool.Submit(context.Background(), tasks)

	testutil.AssertEqual(t, len(results), 3, "result count")

	failures := 0
	for _, result := range results {
		if result.Error != nil {
			failures++
			testutil.AssertEqual(t, result.Task.Name(), "boom", "failing task")
		}
	}
	testutil.AssertEqual(t, failures, 1, "failure count")
}

func TestSubmitEmptyTaskList(t *testing.T) {
	pool := New(Config{Workers: 2, Logger: logx.NewSilent()})
	pool.Start()
	defer pool.Stop()

	results := pool.Submit(context.Background(), nil)
	testutil.AssertEqual(t, len(results), 0, "result count")
}

func TestCanceledContextReturnsPartialResults(t *testing.T) {
	pool := New(Config{Workers: 2, Logger: logx.NewSilent()})
	pool.Start()
	defer pool.Stop()

	tasks, _ := makeTasks(8, 40*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	results := pool.Submit(ctx, tasks)

	// two waves of two complete before the deadline, the rest are dropped
	testutil.AssertTrue(t, len(results) < 8, "partial results")

	seen := make(map[string]int)
	for _, result := range results {
		seen[result.Task.Name()]++
	}
	for name, count := range seen {
		testutil.AssertEqual(t, count, 1, "results for "+name)
	}
}

func TestStopAfterCancelMidFeed(t *testing.T) {
	// Cancel while the feeder still holds queued tasks, then Stop
	// immediately: the feeder must exit before the queue closes, and
	// the collected results must stay consistent.
	for i := 0; i < 100; i++ {
		pool := New(Config{Workers: 2, Logger: logx.NewSilent()})
		pool.Start()

		// far more tasks than the queue capacity keeps the feeder busy
		tasks, _ := makeTasks(32, time.Millisecond)

		ctx, cancel := context.WithCancel(context.Background())
		go func(wave int) {
			time.Sleep(time.Duration(wave%4) * time.Millisecond)
			cancel()
		}(i)

		results := pool.Submit(ctx, tasks)
		pool.Stop()
		cancel()

		if len(results) > len(tasks) {
			t.Fatalf("iteration %d: %d results for %d tasks", i, len(results), len(tasks))
		}
		seen := make(map[string]int)
		for _, result := range results {
			seen[result.Task.Name()]++
		}
		for name, count := range seen {
			if count != 1 {
				t.Fatalf("iteration %d: %d results for %s", i, count, name)
			}
		}
	}
}

func TestDefaultWorkerCount(t *testing.T) {
	pool := New(Config{Logger: logx.NewSilent()})
	testutil.AssertEqual(t, pool.Workers(), 4, "default workers")
}
