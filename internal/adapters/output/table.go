// internal/adapters/output/table.go
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"huntx/internal/core/domain"
)

// OutputTable prints a terminal-readable summary of a batch.
func OutputTable(batch *domain.BatchResult) error {
	return WriteTable(os.Stdout, batch)
}

// WriteTable writes the batch summary table to w.
func WriteTable(w io.Writer, batch *domain.BatchResult) error {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== HuntX Batch Results ===\n")
	fmt.Fprintf(tw, "Operation:\t%s\n", batch.Operation)
	fmt.Fprintf(tw, "Mode:\t%s\n", batch.Mode)
	fmt.Fprintf(tw, "Duration:\t%s\n", batch.Duration)
	fmt.Fprintf(tw, "Succeeded:\t%d\n", batch.Succeeded())
	fmt.Fprintf(tw, "Failed:\t%d\n", batch.Failed())
	fmt.Fprintf(tw, "Skipped:\t%d\n\n", len(batch.Skipped))

	if len(batch.Results) > 0 {
		fmt.Fprintln(tw, "ITEM\tSTATUS\tDETAIL")
		fmt.Fprintln(tw, "----\t------\t------")

		for _, res := range batch.Results {
			if res.OK() {
				fmt.Fprintf(tw, "%s\tok\t%s\n", res.Item, recordSummary(res.Record))
			} else {
				fmt.Fprintf(tw, "%s\tfailed\t%s\n", res.Item, res.Err)
			}
		}
	} else {
		fmt.Fprintln(tw, "No items dispatched.")
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}

	if len(batch.Skipped) > 0 {
		fmt.Fprintf(w, "\nSkipped invalid items (%d):\n", len(batch.Skipped))
		for i, item := range batch.Skipped {
			fmt.Fprintf(w, "  %d. %s\n", i+1, item)
		}
	}

	fmt.Fprintln(w)
	return nil
}

// recordSummary produces a one-line description of a record for the table.
func recordSummary(record domain.Record) string {
	switch r := record.(type) {
	case *domain.DomainRecord:
		parts := []string{fmt.Sprintf("%d emails", r.EmailCount)}
		if r.Pattern != "" {
			parts = append(parts, "pattern="+r.Pattern)
		}
		if r.Organization != "" {
			parts = append(parts, "org="+r.Organization)
		}
		return strings.Join(parts, ", ")
	case *domain.PersonEmailRecord:
		if r.Email == "" {
			return "no email found"
		}
		return fmt.Sprintf("%s (confidence %d)", r.Email, r.Confidence)
	case *domain.VerificationRecord:
		return fmt.Sprintf("%s (score %d)", r.Result, r.Score)
	default:
		return ""
	}
}
