// internal/adapters/output/json.go
package output

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"huntx/internal/core/domain"
	"huntx/internal/core/ports"
	"huntx/internal/platform/errors"
)

// JSONExporter writes the result list as a structured JSON array,
// preserving the full nesting of each record.
type JSONExporter struct{}

// NewJSONExporter creates a JSON exporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

var _ ports.WriterExporter = (*JSONExporter)(nil)

func (e *JSONExporter) Name() string { return "json" }

func (e *JSONExporter) Extensions() []string { return []string{"json"} }

// Export writes the batch to a timestamped file derived from path.
func (e *JSONExporter) Export(batch *domain.BatchResult, path string) (string, error) {
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

// ExportToWriter writes the result array to w with indentation.
func (e *JSONExporter) ExportToWriter(batch *domain.BatchResult, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(batch.Results); err != nil {
		return errors.Wrapf(errors.ErrExportFailed, "encode JSON: %v", err)
	}
	return nil
}
