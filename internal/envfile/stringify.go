package envfile

import "strings"

// quoteTriggers are the characters that force a value to be wrapped in
// double quotes when serializing: whitespace, "=", both quote characters,
// backtick, backslash, and newline.
const quoteTriggers = " \t=\"'`\\\n"

// Stringify serializes a mapping back to .env file text in insertion order,
// one KEY=VALUE line per entry. Values containing any quote trigger are
// wrapped in double quotes with backslashes doubled; all other values are
// emitted bare.
//
// Doubling is the only escaping applied, and Parse's quote stripping is its
// exact inverse. It keeps a content backslash at the end of a line distinct
// from the continuation marker itself: without it, a value ending in a
// backslash before an embedded newline would merge with the marker into an
// even run, which the parser reads as literal content. Embedded newlines are
// serialized using the backslash line-continuation grammar so that Parse
// reassembles them.
//
// The output always ends with a trailing newline. Round-trip tests depend on
// this policy: Parse(Stringify(m)) == m for every mapping m.
func Stringify(m *Mapping) string {
	var b strings.Builder
	for _, key := range m.Keys() {
		value, _ := m.Get(key)
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(quoteValue(value))
		b.WriteByte('\n')
	}
	return b.String()
}

func quoteValue(v string) string {
	if !strings.ContainsAny(v, quoteTriggers) {
		return v
	}
	quoted := `"` + strings.ReplaceAll(v, `\`, `\\`) + `"`
	// Physical newlines become backslash continuations so the value survives
	// the line-oriented grammar. With content backslashes doubled, the run
	// before each continuation marker is always odd.
	return strings.ReplaceAll(quoted, "\n", "\\\n")
}
