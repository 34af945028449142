// Package errors provides error types and utilities for HuntX.
// It extends the standard errors package with sentinel errors and
// context wrapping.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure scenarios
var (
	// ErrInvalidInput indicates a malformed domain or email string
	ErrInvalidInput = errors.New("invalid input")

	// ErrTimeout indicates an operation exceeded its time limit
	ErrTimeout = errors.New("operation timed out")

	// ErrRateLimit indicates the remote API rate limit was exceeded
	ErrRateLimit = errors.New("rate limit exceeded")

	// ErrNotFound indicates a requested resource was not found
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized indicates the API key was rejected
	ErrUnauthorized = errors.New("unauthorized")

	// ErrServiceUnavailable indicates the remote service is temporarily unavailable
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrInvalidResponse indicates a response could not be parsed or was malformed
	ErrInvalidResponse = errors.New("invalid response")

	// ErrMissingCredential indicates no API key was configured
	ErrMissingCredential = errors.New("missing API credential")

	// ErrExportFailed indicates results could not be written to the destination
	ErrExportFailed = errors.New("export failed")
)

// wrappedError wraps an error with additional context
type wrappedError struct {
	msg   string
	cause error
}

func (e *wrappedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

func (e *wrappedError) Unwrap() error {
	return e.cause
}

// Wrap wraps an error with additional context message.
// If err is nil, Wrap returns nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{msg: msg, cause: err}
}

// Wrapf wraps an error with a formatted context message.
// If err is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &wrappedError{msg: fmt.Sprintf(format, args...), cause: err}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// New creates a new error with the given message.
func New(msg string) error {
	return errors.New(msg)
}

// Errorf formats according to a format specifier and returns an error.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// Join returns an error that wraps the given errors, discarding nils.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// IsInvalidInput reports whether the error is an invalid input error
func IsInvalidInput(err error) bool {
	return Is(err, ErrInvalidInput)
}

// IsRateLimit reports whether the error is a rate limit error
func IsRateLimit(err error) bool {
	return Is(err, ErrRateLimit)
}

// IsUnauthorized reports whether the error is an unauthorized error
func IsUnauthorized(err error) bool {
	return Is(err, ErrUnauthorized)
}

// IsInvalidResponse reports whether the error is an invalid response error
func IsInvalidResponse(err error) bool {
	return Is(err, ErrInvalidResponse)
}

// IsMissingCredential reports whether the error is a missing credential error
func IsMissingCredential(err error) bool {
	return Is(err, ErrMissingCredential)
}

// IsExportFailed reports whether the error is an export failure
func IsExportFailed(err error) bool {
	return Is(err, ErrExportFailed)
}
