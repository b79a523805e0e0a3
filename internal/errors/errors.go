package apperrors

import (
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess      = 0 // Indicates successful execution, with or without qualifying files.
	ExitErrorGeneric = 1 // Indicates a generic error.
	ExitErrorScan    = 2 // Indicates the input directory could not be enumerated.
	ExitErrorConfig  = 4 // Indicates a configuration error.
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

// ScanError reports that a result directory could not be enumerated. It is
// the only fatal failure of a scan; per-file failures never produce one.
type ScanError struct {
	// Dir is the directory that was being listed.
	Dir string
	// Cause is the underlying filesystem error.
	Cause error
}

// Error returns a formatted message naming the directory and the cause.
func (e ScanError) Error() string {
	return fmt.Sprintf("cannot list directory %q: %v", e.Dir, e.Cause)
}

// Unwrap returns the underlying filesystem error so callers can test for
// fs.ErrNotExist and friends.
func (e ScanError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// ExitCodeFor maps an error returned by the application layer to a process
// exit code. A nil error maps to ExitSuccess.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var configErr ConfigError
	if errors.As(err, &configErr) {
		return ExitErrorConfig
	}
	var scanErr ScanError
	if errors.As(err, &scanErr) {
		return ExitErrorScan
	}
	return ExitErrorGeneric
}
