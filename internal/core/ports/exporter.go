// internal/core/ports/exporter.go
package ports

import (
	"io"

	"huntx/internal/core/domain"
)

// Exporter is the port for serializing a batch result to a file.
// Export is best-effort after computation: a failed export never
// invalidates the in-memory results.
type Exporter interface {
	// Name returns the exporter name (e.g. "json", "csv")
	Name() string

	// Extensions returns the file extensions this exporter handles
	Extensions() []string

	// Export writes the batch results to a timestamped file derived
	// from path and returns the file actually written.
	Export(batch *domain.BatchResult, path string) (string, error)
}

// WriterExporter additionally exports to any io.Writer.
type WriterExporter interface {
	Exporter

	// ExportToWriter writes the batch results to w.
	ExportToWriter(batch *domain.BatchResult, w io.Writer) error
}
