// internal/adapters/output/path_test.go
package output

import (
	"testing"
	"time"

	"huntx/internal/testutil"
)

func TestTimestampedPath(t *testing.T) {
	now := time.Date(2026, 8, 26, 15, 30, 12, 0, time.UTC)

	tests := []struct {
		name     string
		path     string
		wantFull string
		wantExt  string
	}{
		{"json path", "out/results.json", "out/results_20260826_153012.json", "json"},
		{"csv path", "results.csv", "results_20260826_153012.csv", "csv"},
		{"no extension defaults to csv", "results", "results_20260826_153012.csv", "csv"},
		{"dotted directory", "out.d/res.tsv", "out.d/res_20260826_153012.tsv", "tsv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			full, ext := timestampedPath(tt.path, now)
			testutil.AssertEqual(t, full, tt.wantFull, "full path")
			testutil.AssertEqual(t, ext, tt.wantExt, "extension")
		})
	}
}

func TestExt(t *testing.T) {
	testutil.AssertEqual(t, Ext("results.JSON"), "json", "lowercased")
	testutil.AssertEqual(t, Ext("results"), "csv", "default")
	testutil.AssertEqual(t, Ext("a/b/results.tsv"), "tsv", "nested path")
}
