// internal/adapters/output/writer.go
package output

import (
	"huntx/internal/core/domain"
	"huntx/internal/core/ports"
)

// ForPath picks the exporter for a destination path by extension:
// ".json" gets the structured exporter, anything else the tabular one.
func ForPath(path string) ports.Exporter {
	if Ext(path) == "json" {
		return NewJSONExporter()
	}
	return NewCSVExporter()
}

// Write exports the batch to a timestamped file derived from path and
// returns the file actually written.
func Write(batch *domain.BatchResult, path string) (string, error) {
	return ForPath(path).Export(batch, path)
}
