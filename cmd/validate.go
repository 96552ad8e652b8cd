package cmd

import (
	"github.com/spf13/cobra"

	"github.com/envtools/envctl/internal/errors"
	"github.com/envtools/envctl/internal/ops"
)

var (
	validateEnv     string
	validateExample string
	validateStrict  bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate an env file against its example template",
	Long: `Compares the keys of the env file against the example template.

Keys defined in the example but missing from the env file fail validation.
Extra keys only present in the env file are reported but allowed, unless
--strict is set. Values are never compared; the example holds blanks.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateEnv, "env", "e", "", "Env file to validate (default from config)")
	validateCmd.Flags().StringVar(&validateExample, "example", "", "Example template to validate against")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Fail on extra keys too")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	envPath := resolveEnvPath(validateEnv)
	examplePath := resolveExamplePath(validateExample, envPath)

	result, err := ops.Validate(envPath, examplePath, validateStrict)
	if err != nil {
		return err
	}

	for _, key := range result.Comparison.Missing {
		logError("missing key: %s", key)
	}
	for _, key := range result.Comparison.Extra {
		if validateStrict {
			logError("extra key: %s", key)
		} else {
			logWarning("extra key: %s", key)
		}
	}

	if !result.Valid {
		return errors.New(errors.ExitValidationFailed, result.Message)
	}

	logSuccess("%s", result.Message)
	return nil
}
