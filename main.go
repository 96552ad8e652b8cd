package main

import (
	"os"

	"github.com/envtools/envctl/cmd"
	"github.com/envtools/envctl/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
