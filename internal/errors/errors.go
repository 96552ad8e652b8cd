package errors

import (
	"errors"
	"fmt"
)

// Exit codes for envctl
const (
	ExitSuccess          = 0
	ExitGeneralError     = 1
	ExitFileNotFound     = 2
	ExitValidationFailed = 3
	ExitLintFailed       = 4
	ExitIOError          = 5
	ExitConfigError      = 6
)

// ExitError is the base error type for envctl
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

func (e *ExitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *ExitError) ExitCode() int {
	return e.Code
}

// New creates a new ExitError
func New(code int, message string) *ExitError {
	return &ExitError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with an ExitError
func Wrap(code int, message string, cause error) *ExitError {
	return &ExitError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// FileNotFound returns an error for a missing input file
func FileNotFound(path string) *ExitError {
	return New(ExitFileNotFound, fmt.Sprintf("file not found: %s", path))
}

// IOError returns an error for a failed read or write
func IOError(op, path string, cause error) *ExitError {
	return Wrap(ExitIOError, fmt.Sprintf("failed to %s %s", op, path), cause)
}

// ValidationFailed returns an error for a failing validate command
func ValidationFailed(missing int) *ExitError {
	return New(ExitValidationFailed, fmt.Sprintf("validation failed: %d missing key(s)", missing))
}

// LintFailed returns an error for a failing lint command
func LintFailed(errs, warnings int) *ExitError {
	return New(ExitLintFailed, fmt.Sprintf("lint failed: %d error(s), %d warning(s)", errs, warnings))
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *ExitError {
	return Wrap(ExitConfigError, message, cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *ExitError {
	return New(ExitGeneralError, message)
}

// IsFileNotFound reports whether err carries the file-not-found exit code.
func IsFileNotFound(err error) bool {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code == ExitFileNotFound
	}
	return false
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
