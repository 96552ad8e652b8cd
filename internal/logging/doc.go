// Package logging provides logging utilities for envctl.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("parsed env file", "path", path, "keys", mapping.Len())
//	logging.Warn("backup failed", "path", path, "error", err)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Comparing %s against %s...", envPath, examplePath)
//	logging.UserSuccess("%s is valid", envPath)
//	logging.UserWarning("%d unquoted value(s) with spaces", n)
//	logging.UserError("Failed to write %s: %v", path, err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
