package ops

import (
	"github.com/envtools/envctl/internal/envfile"
	"github.com/envtools/envctl/internal/envio"
	"github.com/envtools/envctl/internal/logging"
)

// InitResult reports what the init operation produced.
type InitResult struct {
	EnvPath    string
	OutputPath string
	BackupPath string // empty when no backup was taken
	Keys       int
}

// Init generates a template file from an existing env file: every key is
// kept in order with its value blanked, so the template can be committed
// without leaking secrets. When backup is set and the output file already
// exists, it is copied aside first.
func Init(envPath, outputPath string, backup bool) (*InitResult, error) {
	content, err := envio.ReadFile(envPath)
	if err != nil {
		return nil, err
	}

	mapping := envfile.Parse(content)
	logging.Debug("parsed env file", "path", envPath, "keys", mapping.Len())

	template := envfile.NewMapping()
	for _, key := range mapping.Keys() {
		template.Set(key, "")
	}

	result := &InitResult{
		EnvPath:    envPath,
		OutputPath: outputPath,
		Keys:       template.Len(),
	}

	if backup && envio.Exists(outputPath) {
		bak, err := envio.Backup(outputPath)
		if err != nil {
			return nil, err
		}
		result.BackupPath = bak
	}

	if err := envio.WriteFile(outputPath, envfile.Stringify(template)); err != nil {
		return nil, err
	}

	return result, nil
}
