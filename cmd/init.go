package cmd

import (
	"github.com/spf13/cobra"

	"github.com/envtools/envctl/internal/ops"
)

var (
	initEnv    string
	initOutput string
	initBackup bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate an example template from an env file",
	Long: `Reads the env file and writes a template with every key blanked.

The template preserves key order, so reviewers see the same shape as the
real file without any of its values. An existing template is replaced;
pass --backup to keep the old one as <output>.bak.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initEnv, "env", "e", "", "Env file to read (default from config)")
	initCmd.Flags().StringVarP(&initOutput, "output", "o", "", "Template file to write (default from config)")
	initCmd.Flags().BoolVar(&initBackup, "backup", false, "Back up an existing template before overwriting")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	envPath := resolveEnvPath(initEnv)
	outputPath := initOutput
	if outputPath == "" {
		outputPath = cfg.Example
	}

	result, err := ops.Init(envPath, outputPath, initBackup)
	if err != nil {
		return err
	}

	if result.BackupPath != "" {
		logInfo("Backed up previous template to %s", result.BackupPath)
	}
	logSuccess("Wrote %s with %d key(s) from %s", result.OutputPath, result.Keys, result.EnvPath)
	return nil
}
