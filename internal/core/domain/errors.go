// internal/core/domain/errors.go
package domain

import "errors"

var (
	// ErrUnknownOperation indicates an unrecognized lookup operation name.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrUnknownMode indicates an unrecognized dispatch mode.
	ErrUnknownMode = errors.New("unknown dispatch mode")

	// ErrNoItems indicates a batch was requested with no input items.
	ErrNoItems = errors.New("no input items")
)
