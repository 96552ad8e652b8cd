package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/envtools/envctl/internal/config"
	"github.com/envtools/envctl/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool

	// cfg holds the project configuration, loaded before every command.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "envctl",
	Short: "Environment file management CLI",
	Long: `envctl keeps .env files healthy across a project's lifecycle.

It understands the dotenv grammar (comments, export prefixes, quoted
values, line continuations) and builds on it:
  - Generate .env.example templates from a real .env
  - Validate an env file against its example
  - Sync keys between env files with merge strategies
  - Diff, lint, and scan source code for variable usage
  - Generate TypeScript declarations for the known keys

Defaults can be set per project in a ` + config.FileName + ` file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Setup(verbose, jsonOutput, os.Stderr)

		var err error
		cfg, err = config.Load(".")
		return err
	},
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		logging.UserError("%v", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
	logError   = logging.UserError
)
