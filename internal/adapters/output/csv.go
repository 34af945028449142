// internal/adapters/output/csv.go
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"huntx/internal/core/domain"
	"huntx/internal/core/ports"
	"huntx/internal/platform/errors"
)

// CSVExporter writes one row per result, flattening nested record
// fields into dotted column names. Headers are the union of the fields
// seen across all results, so heterogeneous batches stay readable.
type CSVExporter struct{}

// NewCSVExporter creates a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

var _ ports.WriterExporter = (*CSVExporter)(nil)

func (e *CSVExporter) Name() string { return "csv" }

func (e *CSVExporter) Extensions() []string { return []string{"csv", "tsv", "txt"} }

// Export writes the batch to a timestamped file derived from path.
func (e *CSVExporter) Export(batch *domain.BatchResult, path string) (string, error) {
	full, _ := timestampedPath(path, time.Now())

	f, err := os.Create(full)
	if err != nil {
		return "", errors.Wrapf(errors.ErrExportFailed, "create %s: %v", full, err)
	}
	defer f.Close()

	if err := e.ExportToWriter(batch, f); err != nil {
		return "", err
	}
	return full, nil
}

// ExportToWriter writes the flattened rows to w.
func (e *CSVExporter) ExportToWriter(batch *domain.BatchResult, w io.Writer) error {
	rows := make([]map[string]string, 0, len(batch.Results))
	for _, res := range batch.Results {
		row, err := flattenResult(res)
		if err != nil {
			return errors.Wrapf(errors.ErrExportFailed, "flatten %s: %v", res.Item, err)
		}
		rows = append(rows, row)
	}

	headers := unionHeaders(rows)

	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return errors.Wrapf(errors.ErrExportFailed, "write header: %v", err)
	}
	for _, row := range rows {
		record := make([]string, len(headers))
		for i, h := range headers {
			record[i] = row[h]
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrapf(errors.ErrExportFailed, "write row: %v", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrapf(errors.ErrExportFailed, "flush: %v", err)
	}
	return nil
}

// flattenResult turns one result into a flat column->value map. Failure
// results produce item and error columns only.
func flattenResult(res domain.LookupResult) (map[string]string, error) {
	row := map[string]string{"item": res.Item}
	if res.Err != "" {
		row["error"] = res.Err
	}
	if res.Record == nil {
		return row, nil
	}

	// Round-trip through JSON so flattening follows the export field
	// names rather than the Go ones.
	raw, err := json.Marshal(res.Record)
	if err != nil {
		return nil, err
	}
	var tree map[string]any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, err
	}

	flattenInto(row, "", tree)
	return row, nil
}

// flattenInto writes nested map fields as dotted columns. Lists are
// kept as compact JSON in a single cell.
func flattenInto(row map[string]string, prefix string, tree map[string]any) {
	for key, value := range tree {
		col := key
		if prefix != "" {
			col = prefix + "." + key
		}

		switch v := value.(type) {
		case map[string]any:
			flattenInto(row, col, v)
		case []any:
			raw, err := json.Marshal(v)
			if err != nil {
				row[col] = fmt.Sprintf("%v", v)
				continue
			}
			row[col] = string(raw)
		case nil:
			row[col] = ""
		case float64:
			// JSON numbers decode as float64; render integers plainly
			if v == float64(int64(v)) {
				row[col] = fmt.Sprintf("%d", int64(v))
			} else {
				row[col] = fmt.Sprintf("%v", v)
			}
		default:
			row[col] = fmt.Sprintf("%v", v)
		}
	}
}

// unionHeaders collects every column seen across the rows. The item and
// error columns lead; the rest are sorted for a stable layout.
func unionHeaders(rows []map[string]string) []string {
	seen := make(map[string]bool)
	for _, row := range rows {
		for col := range row {
			seen[col] = true
		}
	}
	delete(seen, "item")
	delete(seen, "error")

	rest := make([]string, 0, len(seen))
	for col := range seen {
		rest = append(rest, col)
	}
	sort.Strings(rest)

	headers := []string{"item"}
	if hasErrors(rows) {
		headers = append(headers, "error")
	}
	return append(headers, rest...)
}

func hasErrors(rows []map[string]string) bool {
	for _, row := range rows {
		if _, ok := row["error"]; ok {
			return true
		}
	}
	return false
}
