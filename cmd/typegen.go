package cmd

import (
	"github.com/spf13/cobra"

	"github.com/envtools/envctl/internal/errors"
	"github.com/envtools/envctl/internal/ops"
	"github.com/envtools/envctl/internal/typegen"
)

var (
	typegenEnv    string
	typegenOutput string
	typegenFormat string
	typegenStrict bool
)

var typegenCmd = &cobra.Command{
	Use:   "typegen",
	Short: "Generate TypeScript declarations from an env file",
	Long: `Generates TypeScript declarations for the env file's keys.

Formats:
  interface  augment NodeJS.ProcessEnv with the known keys (default)
  type       a standalone exported Env object type
  const      a readonly key array plus a derived key union

With --strict, keys holding non-empty values are typed as their literal
value instead of string.`,
	RunE: runTypegen,
}

func init() {
	typegenCmd.Flags().StringVarP(&typegenEnv, "env", "e", "", "Env file to read (default from config)")
	typegenCmd.Flags().StringVarP(&typegenOutput, "output", "o", "", "Declaration file to write (default from config)")
	typegenCmd.Flags().StringVarP(&typegenFormat, "format", "f", "", "Output format: interface, type, or const")
	typegenCmd.Flags().BoolVar(&typegenStrict, "strict", false, "Use literal types for non-empty values")
	rootCmd.AddCommand(typegenCmd)
}

func runTypegen(cmd *cobra.Command, args []string) error {
	envPath := resolveEnvPath(typegenEnv)

	outputPath := typegenOutput
	if outputPath == "" {
		outputPath = cfg.Typegen.Output
	}

	formatName := typegenFormat
	if formatName == "" {
		formatName = cfg.Typegen.Format
	}
	format, err := typegen.ParseFormat(formatName)
	if err != nil {
		return errors.ConfigError(err.Error(), nil)
	}

	result, err := ops.Typegen(envPath, outputPath, format, typegenStrict)
	if err != nil {
		return err
	}

	logSuccess("Wrote %s declarations for %d key(s) to %s", result.Format, result.Keys, result.OutputPath)
	return nil
}
