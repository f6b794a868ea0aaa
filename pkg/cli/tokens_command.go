package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crilang/cri/pkg/console"
	"github.com/crilang/cri/pkg/lexer"
	"github.com/crilang/cri/pkg/logger"
	"github.com/crilang/cri/pkg/symbols"
)

var tokensLog = logger.New("cli:tokens")

// NewTokensCommand creates the tokens command.
func NewTokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream of a notation file",
		Long: `Tokens lexes a file and prints one token per line with its source span.

Example:
  cri tokens notes.cri`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			src := string(data)

			l := lexer.New(src, symbols.Default())
			count := 0
			for l.Scan() {
				f := l.Fragment()
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", f.Token, f.Span)
				count++
			}
			if err := l.Err(); err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), console.FormatError(diagnose(args[0], src, err)))
				return fmt.Errorf("failed to tokenise %s", args[0])
			}
			tokensLog.Printf("%s: %d tokens", args[0], count)
			return nil
		},
	}
}
