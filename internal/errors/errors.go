package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution or a normal window close.
	ExitErrorGeneric  = 1   // Indicates a generic error, including host initialization failure.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the program was interrupted (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// SampleError reports that the host could not answer one of the metrics
// queries. Source names the query ("memory", "cpu").
type SampleError struct {
	// Source identifies which OS query failed.
	Source string
	// Cause is the error returned by the OS metrics layer.
	Cause error
}

// Error returns a formatted message naming the failed source.
func (e SampleError) Error() string {
	return fmt.Sprintf("sampling %s: %v", e.Source, e.Cause)
}

// Unwrap returns the original wrapped error.
func (e SampleError) Unwrap() error { return e.Cause }

// WindowError reports that the display host (window or terminal program)
// could not be started or terminated abnormally.
type WindowError struct {
	// Host is the name of the display host ("desktop", "tui").
	Host string
	// Cause is the underlying initialization error.
	Cause error
}

// Error returns a formatted message naming the failing host.
func (e WindowError) Error() string {
	return fmt.Sprintf("%s host: %v", e.Host, e.Cause)
}

// Unwrap returns the original wrapped error.
func (e WindowError) Unwrap() error { return e.Cause }

// WrapError prefixes err with a formatted message, keeping it reachable
// through errors.Is and errors.As. A nil err stays nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error returned by a display host to a process exit code.
func ExitCodeFor(err error) int {
	var cfgErr ConfigError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &cfgErr):
		return ExitErrorConfig
	case IsContextError(err):
		return ExitErrorCanceled
	default:
		return ExitErrorGeneric
	}
}
