// Package ops implements the envctl command operations: each function reads
// its input files through envio, runs the pure core (envfile, keyset, scan,
// typegen), and returns a command-specific result struct.
//
// Every command has its own result type (InitResult, ValidateResult,
// SyncResult, DiffResult, LintResult, TypegenResult, ScanResult) with
// explicit fields instead of a loosely-typed payload, so the command layer
// can render without reflection or type switches.
//
// Operations fail only for I/O level problems (missing files, write
// failures) and invalid options. Grammar problems are never errors here:
// they arrive as diagnostics or comparison data inside the result, and the
// command layer decides whether a result fails the command (strict mode).
package ops
