package envfile

import (
	"regexp"
	"strings"
)

// exportPrefixRe strips an optional bash-style "export " keyword before the
// key. Case-insensitive for compatibility with hand-written shell files.
var exportPrefixRe = regexp.MustCompile(`(?i)^export\s+`)

// Parse extracts an ordered key/value Mapping from raw .env file text.
//
// Parsing is lenient: blank lines and comment lines are skipped, lines that
// do not look like KEY=VALUE assignments are silently dropped, and duplicate
// keys resolve last-write-wins. A value ending in an unescaped backslash
// continues onto the following lines, joined with newlines, until a line
// without a trailing backslash. Quote stripping happens once on the fully
// assembled value.
//
// Content is expected to be LF-delimited; CRLF normalization is the caller's
// responsibility (see the envio package).
//
// Parse never fails. Strict grammar checking is a separate pass (Validate),
// keeping the asymmetric contract: parse never errors, validate never drops.
func Parse(content string) *Mapping {
	m := NewMapping()
	for _, e := range parseEntries(content) {
		m.Set(e.Key, e.Value)
	}
	return m
}

// ParseEntries is like Parse but keeps every assignment, including
// duplicates, together with the 1-indexed line each assignment started on.
// Used where source positions matter, such as usage scanning reports.
func ParseEntries(content string) []Entry {
	return parseEntries(content)
}

func parseEntries(content string) []Entry {
	var (
		entries   []Entry
		inCont    bool
		contKey   string
		contLine  int
		contParts []string
	)

	flush := func() {
		entries = append(entries, Entry{
			Key:   contKey,
			Value: stripQuotes(strings.Join(contParts, "\n")),
			Line:  contLine,
		})
		inCont = false
		contKey = ""
		contParts = nil
	}

	for i, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		if inCont {
			// Comment lines are skipped without ending the continuation.
			if strings.HasPrefix(trimmed, "#") {
				continue
			}
			part, cont := splitContinuation(line)
			contParts = append(contParts, part)
			if !cont {
				flush()
			}
			continue
		}

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := splitAssignment(trimmed)
		if !ok {
			// Lenient: unrecognized lines are dropped, never an error.
			continue
		}

		part, cont := splitContinuation(value)
		if cont {
			inCont = true
			contKey = key
			contLine = i + 1
			contParts = []string{part}
			continue
		}

		entries = append(entries, Entry{Key: key, Value: stripQuotes(part), Line: i + 1})
	}

	if inCont {
		flush()
	}

	return entries
}

// splitAssignment splits a trimmed line into key and value around the first
// "=", trimming whitespace on both sides and stripping an optional export
// prefix. It reports false for lines that are not a single-token assignment.
func splitAssignment(line string) (key, value string, ok bool) {
	left, right, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}

	key = exportPrefixRe.ReplaceAllString(strings.TrimSpace(left), "")
	if key == "" || strings.ContainsAny(key, " \t") {
		return "", "", false
	}

	return key, strings.TrimSpace(right), true
}

// splitContinuation strips a single trailing unescaped backslash and reports
// whether the line continues. An even run of trailing backslashes is escaped
// backslash content, not a continuation.
func splitContinuation(s string) (string, bool) {
	n := 0
	for n < len(s) && s[len(s)-1-n] == '\\' {
		n++
	}
	if n%2 == 1 {
		return s[:len(s)-1], true
	}
	return s, false
}

// stripQuotes removes one matching pair of wrapping single or double quotes
// covering the whole value. A double-quoted value additionally collapses
// doubled backslashes, the inverse of Stringify's quoting. Single-quoted and
// bare values are kept verbatim; no other escape sequence is interpreted.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && first == '"' {
			return strings.ReplaceAll(s[1:len(s)-1], `\\`, `\`)
		}
		if first == last && first == '\'' {
			return s[1 : len(s)-1]
		}
	}
	return s
}
