package ops

import (
	"github.com/envtools/envctl/internal/envfile"
	"github.com/envtools/envctl/internal/envio"
)

// LintResult carries the diagnostics from a strict grammar pass.
type LintResult struct {
	Path        string
	Diagnostics []envfile.Diagnostic
	Errors      int
	Warnings    int
}

// Lint runs the strict validation pass over one file. Diagnostics are data;
// the command layer maps them to exit codes depending on strict mode.
func Lint(path string) (*LintResult, error) {
	content, err := envio.ReadFile(path)
	if err != nil {
		return nil, err
	}

	result := &LintResult{
		Path:        path,
		Diagnostics: envfile.Validate(content),
	}
	for _, d := range result.Diagnostics {
		switch d.Severity {
		case envfile.SeverityError:
			result.Errors++
		case envfile.SeverityWarning:
			result.Warnings++
		}
	}

	return result, nil
}
