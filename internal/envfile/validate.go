package envfile

import (
	"regexp"
	"strings"
)

// Severity classifies a diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic is one line-tagged finding from the strict validation pass.
// Diagnostics are data, never errors: callers decide whether they fail a
// command.
type Diagnostic struct {
	Line     int
	Message  string
	Severity Severity
}

// Diagnostic messages produced by Validate.
const (
	MsgInvalidSyntax  = "invalid syntax, expected KEY=VALUE"
	MsgEmptyKey       = "empty key"
	MsgInvalidKey     = "invalid key"
	MsgDuplicateKey   = "duplicate key"
	MsgUnquotedSpaces = "unquoted value with spaces"
)

// validKeyRe is the strict key grammar. Parsing is deliberately more lenient;
// only validation enforces this charset.
var validKeyRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate performs the strict grammar pass over raw .env text and returns
// line-tagged diagnostics ordered by ascending 1-indexed line number.
//
// This is an independent traversal from Parse: it inspects every physical
// line, including the intermediate lines of a backslash continuation (their
// trailing backslash is stripped before the match attempt, and the rest is
// held to the ordinary rules).
//
// Checks, in precedence order per line (first applicable wins):
//   - not KEY=VALUE shaped: error MsgInvalidSyntax
//   - empty key before "=": error MsgEmptyKey
//   - key outside [A-Za-z_][A-Za-z0-9_]*: error MsgInvalidKey
//   - key repeated within the file: error MsgDuplicateKey
//     (the first occurrence is not flagged)
//   - non-empty unquoted value containing whitespace: warning MsgUnquotedSpaces
//
// The duplicate-key set is local to a single Validate call; there is no
// process-wide state.
func Validate(content string) []Diagnostic {
	var diags []Diagnostic
	seen := make(map[string]bool)

	for i, line := range strings.Split(content, "\n") {
		lineNo := i + 1
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		// Continuation backslashes are stripped before matching; the line is
		// otherwise validated like any other.
		stripped, _ := splitContinuation(trimmed)

		key, value, ok := splitKeyValueStrict(stripped)
		if !ok {
			diags = append(diags, Diagnostic{lineNo, MsgInvalidSyntax, SeverityError})
			continue
		}

		if key == "" {
			diags = append(diags, Diagnostic{lineNo, MsgEmptyKey, SeverityError})
			continue
		}

		if !validKeyRe.MatchString(key) {
			diags = append(diags, Diagnostic{lineNo, MsgInvalidKey, SeverityError})
			continue
		}

		if seen[key] {
			diags = append(diags, Diagnostic{lineNo, MsgDuplicateKey, SeverityError})
			continue
		}
		seen[key] = true

		if value != "" && !isQuoteWrapped(value) && strings.ContainsAny(value, " \t") {
			diags = append(diags, Diagnostic{lineNo, MsgUnquotedSpaces, SeverityWarning})
		}
	}

	return diags
}

// splitKeyValueStrict splits a line around the first "=" for validation.
// Unlike the lenient splitAssignment it keeps empty and malformed keys so
// that the caller can report them individually.
func splitKeyValueStrict(line string) (key, value string, ok bool) {
	left, right, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key = exportPrefixRe.ReplaceAllString(strings.TrimSpace(left), "")
	return key, strings.TrimSpace(right), true
}

func isQuoteWrapped(s string) bool {
	return len(s) >= 2 && s[0] == s[len(s)-1] && (s[0] == '"' || s[0] == '\'')
}
