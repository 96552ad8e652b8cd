package ops

import (
	"github.com/envtools/envctl/internal/envfile"
	"github.com/envtools/envctl/internal/envio"
	"github.com/envtools/envctl/internal/errors"
	"github.com/envtools/envctl/internal/keyset"
	"github.com/envtools/envctl/internal/logging"
)

// ConflictResolver chooses a value for a key present in both files with
// differing values. It receives the key and both candidate values and
// returns the value to keep. A nil resolver lets the strategy decide.
type ConflictResolver func(key, sourceValue, targetValue string) (string, error)

// SyncResult reports how the target file changed.
type SyncResult struct {
	SourcePath  string
	TargetPath  string
	Strategy    keyset.Strategy
	Added       []string // keys newly introduced into the target
	Overwritten []string // keys whose target value changed
	Removed     []string // keys dropped from the target (overwrite strategy)
	BackupPath  string   // empty when no backup was taken
	Mapping     *envfile.Mapping
}

// Sync combines the source env file into the target according to strategy
// and rewrites the target. A missing target is treated as empty, so syncing
// into a fresh file works. When resolve is non-nil it is consulted for every
// conflicting key after the strategy has been applied, and its choice wins.
func Sync(sourcePath, targetPath string, strategy keyset.Strategy, backup bool, resolve ConflictResolver) (*SyncResult, error) {
	sourceContent, err := envio.ReadFile(sourcePath)
	if err != nil {
		return nil, err
	}
	source := envfile.Parse(sourceContent)

	target := envfile.NewMapping()
	targetExists := envio.Exists(targetPath)
	if targetExists {
		targetContent, err := envio.ReadFile(targetPath)
		if err != nil {
			return nil, err
		}
		target = envfile.Parse(targetContent)
	}

	merged, err := keyset.Sync(strategy, source, target)
	if err != nil {
		return nil, errors.ConfigError(err.Error(), nil)
	}

	if resolve != nil {
		for _, key := range keyset.Changed(target, source) {
			sv, _ := source.Get(key)
			tv, _ := target.Get(key)
			chosen, err := resolve(key, sv, tv)
			if err != nil {
				return nil, err
			}
			if merged.Has(key) {
				merged.Set(key, chosen)
			}
		}
	}

	result := &SyncResult{
		SourcePath:  sourcePath,
		TargetPath:  targetPath,
		Strategy:    strategy,
		Added:       keyset.Missing(target, merged),
		Overwritten: keyset.Changed(target, merged),
		Removed:     keyset.Extra(target, merged),
		Mapping:     merged,
	}

	if backup && targetExists {
		bak, err := envio.Backup(targetPath)
		if err != nil {
			return nil, err
		}
		result.BackupPath = bak
	}

	logging.Debug("syncing env files",
		"source", sourcePath, "target", targetPath, "strategy", strategy,
		"added", len(result.Added), "overwritten", len(result.Overwritten), "removed", len(result.Removed))

	if err := envio.WriteFile(targetPath, envfile.Stringify(merged)); err != nil {
		return nil, err
	}

	return result, nil
}
