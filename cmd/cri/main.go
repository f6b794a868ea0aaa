package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crilang/cri/pkg/cli"
	"github.com/crilang/cri/pkg/console"
	"github.com/crilang/cri/pkg/tasks"
)

// version is overridden by the linker for release builds.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "cri",
	Short: "Toolkit for the CRI notation",
	Long: `cri is a toolkit for the CRI notation: a lexer and parser for structured
text with located diagnostics, an arithmetic evaluator, and a runner for
the repository's task recipes.

Set the DEBUG environment variable (e.g. DEBUG=lexer:*) to enable debug
logging for individual subsystems.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(
		cli.NewCheckCommand(),
		cli.NewTokensCommand(),
		cli.NewTreeCommand(),
		cli.NewEvalCommand(),
		cli.NewTaskCommand(),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, console.FormatErrorMessage(err.Error()))

		// A failed recipe step propagates its exit code unchanged.
		var exitErr *tasks.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
