// internal/platform/ui/presenter.go
package ui

import (
	"fmt"
	"sync"

	"github.com/pterm/pterm"

	"huntx/internal/core/domain"
)

// BatchPresenter renders batch progress and the final summary with
// pterm. ItemCompleted arrives from multiple goroutines in concurrent
// mode, so all terminal access is serialized behind the mutex.
type BatchPresenter struct {
	mu sync.Mutex

	progress *pterm.ProgressbarPrinter
	failed   int
}

// NewBatchPresenter creates a presenter.
func NewBatchPresenter() *BatchPresenter {
	return &BatchPresenter{}
}

// BatchStarted renders the run header and starts the progress bar.
func (p *BatchPresenter) BatchStarted(op domain.Operation, mode domain.Mode, total, skipped int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgCyan)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println("HuntX - Email Intelligence Batch")

	info := fmt.Sprintf("Operation: %s\n", pterm.Cyan(op))
	info += fmt.Sprintf("Mode: %s\n", pterm.Yellow(mode))
	info += fmt.Sprintf("Items: %d", total)
	if skipped > 0 {
		info += fmt.Sprintf("\nSkipped invalid: %s", pterm.Red(skipped))
	}

	pterm.DefaultBox.
		WithTitle("Batch").
		WithTitleTopCenter().
		Println(info)

	if total > 0 {
		bar, err := pterm.DefaultProgressbar.
			WithTotal(total).
			WithTitle("looking up").
			Start()
		if err == nil {
			p.progress = bar
		}
	}
}

// ItemCompleted advances the progress bar.
func (p *BatchPresenter) ItemCompleted(item string, ok bool, done, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !ok {
		p.failed++
	}
	if p.progress != nil {
		p.progress.UpdateTitle(item)
		p.progress.Increment()
	}
}

// BatchCompleted stops the progress bar and prints the summary counts.
func (p *BatchPresenter) BatchCompleted(batch *domain.BatchResult) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.progress != nil {
		p.progress.Stop()
		p.progress = nil
	}

	pterm.Println()
	pterm.DefaultSection.Println("Summary")

	data := pterm.TableData{
		{"Succeeded", pterm.Green(batch.Succeeded())},
		{"Failed", pterm.Red(batch.Failed())},
		{"Skipped invalid", fmt.Sprintf("%d", len(batch.Skipped))},
		{"Duration", batch.Duration.String()},
	}
	if err := pterm.DefaultTable.WithData(data).Render(); err != nil {
		pterm.Printf("summary: %d succeeded, %d failed, %d skipped\n",
			batch.Succeeded(), batch.Failed(), len(batch.Skipped))
	}
}
