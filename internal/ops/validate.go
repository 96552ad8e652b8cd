package ops

import (
	"fmt"

	"github.com/envtools/envctl/internal/envfile"
	"github.com/envtools/envctl/internal/envio"
	"github.com/envtools/envctl/internal/keyset"
)

// ValidateResult reports the key-set comparison of an env file against its
// example file.
type ValidateResult struct {
	EnvPath     string
	ExamplePath string
	Comparison  keyset.Comparison
	Strict      bool
	Valid       bool
	Message     string
}

// Validate compares the keys of the env file against the example file.
// Missing keys (present in the example, absent from the env file) always
// make the result invalid; extra keys only do so in strict mode. Changed
// values are informational, since the example typically holds blanks.
func Validate(envPath, examplePath string, strict bool) (*ValidateResult, error) {
	envContent, err := envio.ReadFile(envPath)
	if err != nil {
		return nil, err
	}
	exampleContent, err := envio.ReadFile(examplePath)
	if err != nil {
		return nil, err
	}

	env := envfile.Parse(envContent)
	example := envfile.Parse(exampleContent)
	cmp := keyset.Compare(env, example)

	result := &ValidateResult{
		EnvPath:     envPath,
		ExamplePath: examplePath,
		Comparison:  cmp,
		Strict:      strict,
	}

	result.Valid = len(cmp.Missing) == 0 && (!strict || len(cmp.Extra) == 0)

	switch {
	case result.Valid:
		result.Message = fmt.Sprintf("%s is valid against %s", envPath, examplePath)
	case len(cmp.Missing) > 0:
		result.Message = fmt.Sprintf("%s is missing %d key(s) defined in %s", envPath, len(cmp.Missing), examplePath)
	default:
		result.Message = fmt.Sprintf("%s has %d key(s) not defined in %s", envPath, len(cmp.Extra), examplePath)
	}

	return result, nil
}
