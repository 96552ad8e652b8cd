// Package envio is the file-I/O collaborator for the grammar core.
//
// The core (envfile, keyset) is pure and never touches the filesystem; this
// package owns reading, writing, existence checks, and .bak backups, and it
// performs CRLF-to-LF normalization so parser input is always LF-delimited.
//
// Failures carry the typed errors from internal/errors: a missing input file
// maps to ExitFileNotFound, read/write failures map to ExitIOError.
package envio
