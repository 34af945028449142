// internal/adapters/output/path.go
package output

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// defaultExt is used when the destination path carries no extension.
const defaultExt = "csv"

// timestampedPath inserts a timestamp between the base name and the
// extension so repeated runs never overwrite each other.
// "out/results.json" -> "out/results_20260826_153012.json"
func timestampedPath(path string, now time.Time) (full, ext string) {
	ext = strings.TrimPrefix(filepath.Ext(path), ".")
	base := strings.TrimSuffix(path, filepath.Ext(path))
	if ext == "" {
		ext = defaultExt
	}

	stamp := now.Format("20060102_150405")
	return fmt.Sprintf("%s_%s.%s", base, stamp, ext), ext
}

// Ext returns the lowercase extension of a destination path, falling
// back to the default when none is present.
func Ext(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return defaultExt
	}
	return ext
}
