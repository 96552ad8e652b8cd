// Package envfile implements the .env file grammar: parsing raw text into an
// ordered key/value mapping, serializing a mapping back to text, and
// validating text against the strict grammar with line-tagged diagnostics.
//
// # Grammar
//
// Files are UTF-8, LF-delimited text. A line is one of:
//
//	# comment                 first non-whitespace character is '#'
//	                          blank (pure whitespace)
//	KEY=VALUE                 whitespace around '=' is trimmed
//	export KEY=VALUE          bash-export compatibility, prefix stripped
//	KEY=part\                 trailing unescaped backslash continues the
//	more                      value onto following lines, joined with '\n'
//
// A value wrapped in one matching pair of single or double quotes covering
// the whole string has the quotes stripped. Inside double quotes a doubled
// backslash collapses to one, the inverse of Stringify's quoting; no other
// escape processing is performed.
//
// # Lenient parse, strict validate
//
// Parse and Validate are two distinct traversals with asymmetric contracts:
// Parse never fails (unrecognized lines are silently dropped, duplicate keys
// resolve last-write-wins), and Validate never drops (every suspect line is
// reported as a Diagnostic). They are kept as separate functions rather than
// one pass with a strictness flag.
//
// # Determinism
//
// Mapping preserves first-encounter key order, so Stringify output is
// deterministic and Parse(Stringify(m)) == m holds for any mapping.
package envfile
