package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/envtools/envctl/internal/envfile"
	"github.com/envtools/envctl/internal/errors"
	"github.com/envtools/envctl/internal/ops"
)

var (
	lintStrict     bool
	lintNoWarnings bool
)

var lintCmd = &cobra.Command{
	Use:   "lint [file]",
	Short: "Check an env file against the strict grammar",
	Long: `Runs the strict grammar pass over one env file and reports diagnostics.

Errors (malformed lines, empty or invalid keys, duplicates) always fail
the lint. Warnings (unquoted values with spaces) are reported but pass,
unless --strict is set. --no-warnings suppresses warning output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLint,
}

func init() {
	lintCmd.Flags().BoolVar(&lintStrict, "strict", false, "Treat warnings as failures")
	lintCmd.Flags().BoolVar(&lintNoWarnings, "no-warnings", false, "Suppress warning diagnostics")
	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	path := cfg.Env
	if len(args) == 1 {
		path = args[0]
	}

	result, err := ops.Lint(path)
	if err != nil {
		return err
	}

	for _, d := range result.Diagnostics {
		if d.Severity == envfile.SeverityWarning && lintNoWarnings {
			continue
		}
		line := fmt.Sprintf("%s:%d: %s", result.Path, d.Line, d.Message)
		if d.Severity == envfile.SeverityError {
			logError("%s", line)
		} else {
			logWarning("%s", line)
		}
	}

	failed := result.Errors > 0 || (lintStrict && result.Warnings > 0)
	if failed {
		return errors.LintFailed(result.Errors, result.Warnings)
	}

	if result.Warnings > 0 {
		logInfo("%s passed with %d warning(s)", result.Path, result.Warnings)
	} else {
		logSuccess("%s is clean", result.Path)
	}
	return nil
}
