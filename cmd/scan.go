package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/envtools/envctl/internal/errors"
	"github.com/envtools/envctl/internal/ops"
	"github.com/envtools/envctl/internal/scan"
)

var (
	scanPath       string
	scanEnv        string
	scanExtensions []string
	scanExcludes   []string
	scanNoEnv      bool
	scanStrict     bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan source code for environment variable usage",
	Long: `Walks the source tree and extracts environment variable references.

Recognized patterns: process.env.KEY, process.env["KEY"], import.meta.env.KEY,
and os.Getenv("KEY"). The usages are cross-referenced against the env file:
keys used by code but missing from the file, and keys the file defines but
code never reads. Pass --no-env to just list usages.`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&scanPath, "path", "p", "", "Root directory to scan (default from config)")
	scanCmd.Flags().StringVarP(&scanEnv, "env", "e", "", "Env file to cross-reference (default from config)")
	scanCmd.Flags().StringSliceVar(&scanExtensions, "ext", nil, "File extensions to scan (default from config)")
	scanCmd.Flags().StringSliceVar(&scanExcludes, "exclude", nil, "Directory names to skip (default from config)")
	scanCmd.Flags().BoolVar(&scanNoEnv, "no-env", false, "List usages without cross-referencing an env file")
	scanCmd.Flags().BoolVar(&scanStrict, "strict", false, "Fail when code uses keys the env file lacks")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	root := scanPath
	if root == "" {
		root = cfg.Scan.Path
	}
	extensions := scanExtensions
	if len(extensions) == 0 {
		extensions = cfg.Scan.Extensions
	}
	excludes := scanExcludes
	if len(excludes) == 0 {
		excludes = cfg.Scan.Exclude
	}

	envPath := ""
	if !scanNoEnv {
		envPath = resolveEnvPath(scanEnv)
	}

	result, err := ops.Scan(scan.Options{Root: root, Extensions: extensions, Exclude: excludes}, envPath)
	if err != nil {
		return err
	}

	logInfo("Scanned %d file(s), found %d distinct key(s)",
		result.Scan.FilesScanned, len(result.Scan.Keys()))

	if envPath == "" {
		for _, u := range result.Scan.Usages {
			fmt.Printf("  %s  %s:%d\n", keyStyle.Render(u.Key), u.File, u.Line)
		}
		return nil
	}

	for _, key := range result.Missing {
		logError("used in code but not defined in %s: %s", result.EnvPath, key)
	}
	for _, unused := range result.Unused {
		logWarning("defined on %s:%d but never used: %s", result.EnvPath, unused.Line, unused.Key)
	}

	if scanStrict && len(result.Missing) > 0 {
		return errors.New(errors.ExitValidationFailed, fmt.Sprintf("%d key(s) used in code are missing from %s",
			len(result.Missing), result.EnvPath))
	}

	if len(result.Missing) == 0 && len(result.Unused) == 0 {
		logSuccess("%s covers every key the code uses", result.EnvPath)
	}
	return nil
}
