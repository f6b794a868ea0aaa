//go:build !integration

package main

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/crilang/cri/pkg/cli"
)

// TestShortDescriptionConsistency verifies that all command Short descriptions
// follow CLI conventions:
// - No trailing punctuation (periods, exclamation marks, question marks)
// - This is a common convention for CLI tools (e.g., Git, kubectl, gh)
func TestShortDescriptionConsistency(t *testing.T) {
	allCommands := []*cobra.Command{
		rootCmd,
		cli.NewCheckCommand(),
		cli.NewTokensCommand(),
		cli.NewTreeCommand(),
		cli.NewEvalCommand(),
		cli.NewTaskCommand(),
	}

	for _, cmd := range allCommands {
		t.Run("command "+cmd.Name()+" has no trailing punctuation", func(t *testing.T) {
			short := cmd.Short
			if short == "" {
				t.Skip("Command has no Short description")
			}

			lastChar := short[len(short)-1:]
			if lastChar == "." || lastChar == "!" || lastChar == "?" {
				t.Errorf("Command '%s' Short description should not end with punctuation. Got: %q", cmd.Name(), short)
			}
		})
	}
}

// TestLongDescriptionHasSentences verifies that Long descriptions use proper
// sentences with punctuation, in contrast to Short descriptions.
// This is a documentation test that logs informational messages rather than failing.
func TestLongDescriptionHasSentences(t *testing.T) {
	commandsWithLong := []*cobra.Command{
		rootCmd,
		cli.NewCheckCommand(),
		cli.NewTreeCommand(),
		cli.NewEvalCommand(),
		cli.NewTaskCommand(),
	}

	for _, cmd := range commandsWithLong {
		t.Run("command "+cmd.Name()+" Long description uses sentences", func(t *testing.T) {
			long := strings.TrimSpace(cmd.Long)
			if long == "" {
				t.Skip("Command has no Long description")
			}

			if !strings.Contains(long, ".") && !strings.Contains(long, ":") {
				t.Logf("Note: Command '%s' Long description may benefit from sentence punctuation", cmd.Name())
			}
		})
	}
}
