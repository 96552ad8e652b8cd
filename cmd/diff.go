package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/envtools/envctl/internal/ops"
)

var diffCmd = &cobra.Command{
	Use:   "diff [from] [to]",
	Short: "Show key-level differences between two env files",
	Long: `Compares two env files and reports added, removed, and changed keys.

The comparison is oriented from -> to: a key only in <to> is added, a key
only in <from> is removed. Changed values are shown as inline diffs.
Without arguments the configured env file is compared against its example.
Nothing is written; diff is read-only.`,
	Args: cobra.RangeArgs(0, 2),
	RunE: runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	fromPath, toPath := cfg.Env, cfg.Example
	switch len(args) {
	case 1:
		fromPath = args[0]
	case 2:
		fromPath, toPath = args[0], args[1]
	}

	result, err := ops.Diff(fromPath, toPath)
	if err != nil {
		return err
	}

	if result.Clean() {
		logInfo("%s and %s define the same keys and values", result.FromPath, result.ToPath)
		return nil
	}

	if len(result.Added) > 0 {
		fmt.Print(renderKeyList("+", addedStyle, result.Added))
	}
	if len(result.Removed) > 0 {
		fmt.Print(renderKeyList("-", removedStyle, result.Removed))
	}
	for _, key := range result.Changed {
		oldValue, _ := result.From.Get(key)
		newValue, _ := result.To.Get(key)
		fmt.Printf("  %s %s: %s\n", changedStyle.Render("~"), keyStyle.Render(key), renderValueDiff(oldValue, newValue))
	}

	fmt.Println(dimStyle.Render(fmt.Sprintf("%d added, %d removed, %d changed",
		len(result.Added), len(result.Removed), len(result.Changed))))
	return nil
}
