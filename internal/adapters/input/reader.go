// Package input reads batch items from newline-delimited files.
package input

import (
	"bufio"
	"io"
	"os"
	"strings"

	"huntx/internal/platform/errors"
)

// ReadItems reads one item per line from the file at path.
// Lines are trimmed; blank lines are skipped.
func ReadItems(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open input file %s", path)
	}
	defer f.Close()

	items, err := ReadItemsFrom(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read input file %s", path)
	}
	return items, nil
}

// ReadItemsFrom reads one item per line from r.
func ReadItemsFrom(r io.Reader) ([]string, error) {
	var items []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		items = append(items, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
