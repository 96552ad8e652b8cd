package typegen

import (
	"bytes"
	"embed"
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/envtools/envctl/internal/envfile"
)

// Format selects the shape of the generated TypeScript declarations.
type Format string

const (
	// FormatInterface augments NodeJS.ProcessEnv with the known keys.
	FormatInterface Format = "interface"
	// FormatType emits a standalone `export type Env` object type.
	FormatType Format = "type"
	// FormatConst emits a readonly key array plus a derived key union.
	FormatConst Format = "const"
)

// ParseFormat converts a user-supplied string into a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatInterface, FormatType, FormatConst:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown typegen format %q (must be interface, type, or const)", s)
	}
}

//go:embed templates/*.ts.tmpl
var templatesFS embed.FS

var declTemplates = template.Must(
	template.New("").ParseFS(templatesFS, "templates/*.ts.tmpl"),
)

// identRe matches keys that can be emitted as bare TypeScript property
// names; anything else is emitted as a quoted property.
var identRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// keyDecl is the per-key data handed to the templates.
type keyDecl struct {
	Ident  string // property name, quoted if not a bare identifier
	Type   string // property type ("string", or a literal type in strict mode)
	Quoted string // always-quoted form, for the const format
}

type templateData struct {
	Source string
	Keys   []keyDecl
}

// Render produces a TypeScript declaration string for the mapping's keys in
// insertion order. source names the env file in the generated header.
//
// In strict mode a key with a non-empty value is typed as that value's
// string-literal type instead of string; empty values stay string.
func Render(format Format, m *envfile.Mapping, source string, strict bool) (string, error) {
	data := templateData{Source: source}

	for _, key := range m.Keys() {
		decl := keyDecl{
			Ident:  key,
			Type:   "string",
			Quoted: tsQuote(key),
		}
		if !identRe.MatchString(key) {
			decl.Ident = tsQuote(key)
		}
		if strict {
			if value, _ := m.Get(key); value != "" {
				decl.Type = tsQuote(value)
			}
		}
		data.Keys = append(data.Keys, decl)
	}

	var buf bytes.Buffer
	name := string(format) + ".ts.tmpl"
	if err := declTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s declarations: %w", format, err)
	}
	return buf.String(), nil
}

// tsQuote renders s as a double-quoted TypeScript string literal.
func tsQuote(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\n", `\n`,
		"\t", `\t`,
	)
	return `"` + r.Replace(s) + `"`
}
