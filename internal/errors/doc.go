// Package errors provides typed errors with exit codes for envctl.
//
// # Error Types
//
// ExitError is the base error type that wraps an error with an exit code:
//
//	type ExitError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Defined exit codes for different error categories:
//
//	ExitSuccess          = 0  // Success
//	ExitGeneralError     = 1  // General/unknown errors
//	ExitFileNotFound     = 2  // Input file does not exist
//	ExitValidationFailed = 3  // Validate command found missing keys
//	ExitLintFailed       = 4  // Lint command found errors
//	ExitIOError          = 5  // Read or write failure
//	ExitConfigError      = 6  // Configuration error
//
// # Error Constructors
//
// Use the provided constructors for consistent error creation:
//
//	errors.FileNotFound(".env")
//	errors.IOError("write", ".env.example", err)
//	errors.ValidationFailed(3)
//	errors.ConfigError("invalid strategy", nil)
//
// Validation and lint diagnostics themselves are never errors; they are data
// returned by the core packages. Only the command layer converts a failing
// result into an ExitError.
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
