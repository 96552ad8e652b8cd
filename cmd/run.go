package cmd

import (
	"os"
	"os/exec"

	shellquote "github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/envtools/envctl/internal/envfile"
	"github.com/envtools/envctl/internal/envio"
	"github.com/envtools/envctl/internal/errors"
	"github.com/envtools/envctl/internal/logging"
)

var (
	runEnv     string
	runCommand string
)

var runCmd = &cobra.Command{
	Use:   "run -- <command> [args...]",
	Short: "Run a command with the env file's variables",
	Long: `Runs a command with the env file's variables layered over the
current environment. Keys from the file win over inherited values.

The command is given after --, or as a shell-style string with -c:

  envctl run -- npm start
  envctl run -c "node server.js --port 3000"`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runEnv, "env", "e", "", "Env file to load (default from config)")
	runCmd.Flags().StringVarP(&runCommand, "command", "c", "", "Command string to split shell-style")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	argv := args
	if runCommand != "" {
		if len(argv) > 0 {
			return errors.ValidationError("pass either -c or a command after --, not both")
		}
		split, err := shellquote.Split(runCommand)
		if err != nil {
			return errors.ValidationError("invalid -c command: " + err.Error())
		}
		argv = split
	}
	if len(argv) == 0 {
		return errors.ValidationError("usage: envctl run -- <command> [args...]")
	}

	envPath := resolveEnvPath(runEnv)
	content, err := envio.ReadFile(envPath)
	if err != nil {
		return err
	}
	mapping := envfile.Parse(content)

	environ := os.Environ()
	for _, key := range mapping.Keys() {
		value, _ := mapping.Get(key)
		environ = append(environ, key+"="+value)
	}

	logging.Debug("running command", "argv", argv, "env", envPath, "keys", mapping.Len())

	child := exec.Command(argv[0], argv[1:]...)
	child.Env = environ
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr

	if err := child.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return errors.New(exitErr.ExitCode(), "command exited with "+exitErr.String())
		}
		return errors.IOError("run", argv[0], err)
	}
	return nil
}
