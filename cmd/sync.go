package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/envtools/envctl/internal/envfile"
	"github.com/envtools/envctl/internal/envio"
	"github.com/envtools/envctl/internal/errors"
	"github.com/envtools/envctl/internal/keyset"
	"github.com/envtools/envctl/internal/ops"
	"github.com/envtools/envctl/internal/tui"
)

var (
	syncSource      string
	syncTarget      string
	syncStrategy    string
	syncBackup      bool
	syncInteractive bool
	syncDryRun      bool
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync keys from a source env file into a target",
	Long: `Combines the source env file into the target and rewrites the target.

Strategies:
  merge      source values win on conflicts, the target's extra keys survive (default)
  overwrite  replace the target entirely with the source
  preserve   keep the target's values on conflicts, only add keys it lacks

With --interactive, conflicting values are resolved one key at a time in
a picker instead of by the strategy. With --dry-run nothing is written.`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVarP(&syncSource, "source", "s", "", "Source env file (default: configured env file)")
	syncCmd.Flags().StringVarP(&syncTarget, "target", "t", "", "Target env file (default: configured example)")
	syncCmd.Flags().StringVar(&syncStrategy, "strategy", "", "Conflict strategy: merge, overwrite, or preserve")
	syncCmd.Flags().BoolVar(&syncBackup, "backup", false, "Back up the target before rewriting")
	syncCmd.Flags().BoolVarP(&syncInteractive, "interactive", "i", false, "Resolve conflicting values in a picker")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Report changes without writing the target")
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	sourcePath := resolveEnvPath(syncSource)
	targetPath := syncTarget
	if targetPath == "" {
		targetPath = cfg.Example
	}

	strategyName := syncStrategy
	if strategyName == "" {
		strategyName = cfg.Sync.Strategy
	}
	strategy, err := keyset.ParseStrategy(strategyName)
	if err != nil {
		return errors.ConfigError(err.Error(), nil)
	}

	backup := syncBackup || cfg.Sync.Backup

	if syncDryRun {
		// Dry run never consults the picker; it previews the strategy.
		if syncInteractive {
			logWarning("--interactive is ignored with --dry-run")
		}
		return printSyncDryRun(sourcePath, targetPath, strategy)
	}

	var resolve ops.ConflictResolver
	if syncInteractive {
		resolve, err = interactiveResolver(sourcePath, targetPath)
		if err != nil {
			return err
		}
		if resolve == nil {
			logWarning("Sync aborted, %s left untouched", targetPath)
			return nil
		}
	}

	result, err := ops.Sync(sourcePath, targetPath, strategy, backup, resolve)
	if err != nil {
		return err
	}

	if result.BackupPath != "" {
		logInfo("Backed up %s to %s", targetPath, result.BackupPath)
	}
	if len(result.Added) > 0 {
		fmt.Print(renderKeyList("+", addedStyle, result.Added))
	}
	if len(result.Overwritten) > 0 {
		fmt.Print(renderKeyList("~", changedStyle, result.Overwritten))
	}
	if len(result.Removed) > 0 {
		fmt.Print(renderKeyList("-", removedStyle, result.Removed))
	}
	logSuccess("Synced %s into %s (%d added, %d overwritten, %d removed)",
		sourcePath, targetPath, len(result.Added), len(result.Overwritten), len(result.Removed))
	return nil
}

// interactiveResolver runs the conflict picker up front and returns a
// resolver backed by its choices. A nil resolver with nil error means
// the user aborted.
func interactiveResolver(sourcePath, targetPath string) (ops.ConflictResolver, error) {
	conflicts, err := collectConflicts(sourcePath, targetPath)
	if err != nil {
		return nil, err
	}
	if len(conflicts) == 0 {
		return func(key, sourceValue, targetValue string) (string, error) {
			return sourceValue, nil
		}, nil
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		fmt.Print(tui.SimpleConflicts(conflicts))
		return nil, errors.ValidationError("interactive sync needs a terminal; resolve the conflicts above with --strategy")
	}

	resolved, ok, err := tui.RunConflictPicker(conflicts)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	return func(key, sourceValue, targetValue string) (string, error) {
		if value, picked := resolved[key]; picked {
			return value, nil
		}
		return sourceValue, nil
	}, nil
}

func collectConflicts(sourcePath, targetPath string) ([]tui.Conflict, error) {
	sourceContent, err := envio.ReadFile(sourcePath)
	if err != nil {
		return nil, err
	}
	source := envfile.Parse(sourceContent)

	target := envfile.NewMapping()
	if envio.Exists(targetPath) {
		targetContent, err := envio.ReadFile(targetPath)
		if err != nil {
			return nil, err
		}
		target = envfile.Parse(targetContent)
	}

	var conflicts []tui.Conflict
	for _, key := range keyset.Changed(target, source) {
		sv, _ := source.Get(key)
		tv, _ := target.Get(key)
		conflicts = append(conflicts, tui.Conflict{Key: key, SourceValue: sv, TargetValue: tv})
	}
	return conflicts, nil
}

func printSyncDryRun(sourcePath, targetPath string, strategy keyset.Strategy) error {
	sourceContent, err := envio.ReadFile(sourcePath)
	if err != nil {
		return err
	}
	source := envfile.Parse(sourceContent)

	target := envfile.NewMapping()
	if envio.Exists(targetPath) {
		targetContent, err := envio.ReadFile(targetPath)
		if err != nil {
			return err
		}
		target = envfile.Parse(targetContent)
	}

	merged, err := keyset.Sync(strategy, source, target)
	if err != nil {
		return errors.ConfigError(err.Error(), nil)
	}

	added := keyset.Missing(target, merged)
	overwritten := keyset.Changed(target, merged)
	removed := keyset.Extra(target, merged)

	fmt.Println("Dry run (no files written):")
	if len(added) > 0 {
		fmt.Print(renderKeyList("+", addedStyle, added))
	}
	for _, key := range overwritten {
		oldValue, _ := target.Get(key)
		newValue, _ := merged.Get(key)
		fmt.Printf("  %s %s: %s\n", changedStyle.Render("~"), keyStyle.Render(key), renderValueDiff(oldValue, newValue))
	}
	if len(removed) > 0 {
		fmt.Print(renderKeyList("-", removedStyle, removed))
	}
	if len(added)+len(overwritten)+len(removed) == 0 {
		logInfo("Nothing to sync, %s is up to date", targetPath)
	}
	return nil
}
