package ops

import (
	"github.com/envtools/envctl/internal/envfile"
	"github.com/envtools/envctl/internal/envio"
	"github.com/envtools/envctl/internal/typegen"
)

// TypegenResult reports where declarations were written and for how many keys.
type TypegenResult struct {
	EnvPath    string
	OutputPath string
	Format     typegen.Format
	Keys       int
}

// Typegen renders TypeScript declarations for the env file's keys and
// writes them to outputPath.
func Typegen(envPath, outputPath string, format typegen.Format, strict bool) (*TypegenResult, error) {
	content, err := envio.ReadFile(envPath)
	if err != nil {
		return nil, err
	}

	mapping := envfile.Parse(content)

	rendered, err := typegen.Render(format, mapping, envPath, strict)
	if err != nil {
		return nil, err
	}

	if err := envio.WriteFile(outputPath, rendered); err != nil {
		return nil, err
	}

	return &TypegenResult{
		EnvPath:    envPath,
		OutputPath: outputPath,
		Format:     format,
		Keys:       mapping.Len(),
	}, nil
}
