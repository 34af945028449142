// cmd/huntx/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"huntx/internal/adapters/input"
	"huntx/internal/adapters/output"
	"huntx/internal/core/domain"
	"huntx/internal/core/ports"
	"huntx/internal/core/usecases"
	"huntx/internal/platform/config"
	"huntx/internal/platform/logx"
	"huntx/internal/platform/ui"
	"huntx/internal/sources/hunter"
)

var (
	// Set with -ldflags at build time
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// 1. Load centralized config
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: configuration load failed: %v\n", err)
		os.Exit(2)
	}

	if cfg.PrintVersion {
		fmt.Printf("huntx %s (commit %s, built %s)\n", version, commit, date)
		return
	}

	// 2. Shared logger; the presenter owns the terminal unless quiet
	logger := logx.New()
	var progress usecases.ProgressSink
	if !cfg.Quiet {
		logger = logx.NewSilent()
		progress = ui.NewBatchPresenter()
	}

	// 3. Credential precondition: no batch runs without an API key
	if err := cfg.ValidateCredential(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	op, err := domain.ParseOperation(cfg.Operation)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v: %q\n", err, cfg.Operation)
		os.Exit(2)
	}

	items, err := collectItems(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if len(items) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no input items")
		fmt.Fprintln(os.Stderr, "Usage: huntx -o <operation> -i <file> | --item <value>")
		os.Exit(2)
	}

	// 4. Context canceled on SIGINT/SIGTERM
	ctx, cancel := rootContextWithSignals()
	defer cancel()

	// 5. Build the lookup service
	service := hunter.NewClientWithConfig(cfg.APIKey, logger, hunter.Config{
		Timeout:   cfg.Timeout(),
		RateLimit: cfg.RateLimit,
	})

	mode := domain.ModeSequential
	if cfg.Concurrent {
		mode = domain.ModeConcurrent
	}

	runner := usecases.NewBatchRunner(service, logger, progress)

	// 6. Run the batch
	batch, err := runner.Run(ctx, items, usecases.Options{
		Operation:  op,
		Mode:       mode,
		MaxWorkers: cfg.Workers,
		Finder: ports.FinderQuery{
			FirstName: cfg.FirstName,
			LastName:  cfg.LastName,
			FullName:  cfg.FullName,
		},
	})
	if err != nil {
		logger.Err(err, "phase", "run")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// 7. Terminal table
	if !cfg.NoTable {
		if err := output.OutputTable(batch); err != nil {
			logger.Err(err, "phase", "table")
		}
	}

	// 8. Export is best-effort: results are already computed and shown
	exitCode := 0
	if cfg.Output != "" {
		file, err := output.Write(batch, cfg.Output)
		if err != nil {
			logger.Err(err, "phase", "export")
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = 1
		} else {
			fmt.Printf("Results exported to %s\n", file)
		}
	}

	if batch.Failed() > 0 && batch.Succeeded() == 0 {
		exitCode = 1
	}
	os.Exit(exitCode)
}

// collectItems gathers input items from the file or the single value.
func collectItems(cfg config.Config) ([]string, error) {
	if cfg.InputFile != "" {
		return input.ReadItems(cfg.InputFile)
	}
	if cfg.Item != "" {
		return []string{cfg.Item}, nil
	}
	return nil, nil
}

// rootContextWithSignals creates a root context canceled on SIGINT or
// SIGTERM. The returned cancel cleans up the signal handler too.
func rootContextWithSignals() (context.Context, context.CancelFunc) {
	base, baseCancel := context.WithCancel(context.Background())

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-ch:
			baseCancel()
		case <-base.Done():
		}
	}()

	cleanup := func() {
		signal.Stop(ch)
		baseCancel()
	}

	return base, cleanup
}
