package ops

import (
	"github.com/envtools/envctl/internal/envfile"
	"github.com/envtools/envctl/internal/envio"
	"github.com/envtools/envctl/internal/keyset"
)

// DiffResult reports the key-level differences between two env files,
// oriented from -> to: Added keys appear only in to, Removed keys only in
// from, Changed keys exist in both with different values.
type DiffResult struct {
	FromPath string
	ToPath   string
	Added    []string
	Removed  []string
	Changed  []string
	From     *envfile.Mapping
	To       *envfile.Mapping
}

// Clean reports whether the two files hold identical key sets and values.
func (r *DiffResult) Clean() bool {
	return len(r.Added) == 0 && len(r.Removed) == 0 && len(r.Changed) == 0
}

// Diff parses both files and computes their key-set difference. Nothing is
// written; diff is read-only.
func Diff(fromPath, toPath string) (*DiffResult, error) {
	fromContent, err := envio.ReadFile(fromPath)
	if err != nil {
		return nil, err
	}
	toContent, err := envio.ReadFile(toPath)
	if err != nil {
		return nil, err
	}

	from := envfile.Parse(fromContent)
	to := envfile.Parse(toContent)

	return &DiffResult{
		FromPath: fromPath,
		ToPath:   toPath,
		Added:    keyset.Missing(from, to),
		Removed:  keyset.Extra(from, to),
		Changed:  keyset.Changed(from, to),
		From:     from,
		To:       to,
	}, nil
}
