package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crilang/cri/pkg/console"
	"github.com/crilang/cri/pkg/parser"
	"github.com/crilang/cri/pkg/symbols"
	"github.com/crilang/cri/pkg/tree"
)

// NewTreeCommand creates the tree command.
func NewTreeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <file>",
		Short: "Print the parse tree of a notation file",
		Long: `Tree parses a file and prints its verse/phrase/node structure as an
indented outline, one node per line with its source span.

Example:
  cri tree notes.cri`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			src := string(data)

			v, err := parser.ParseString(src, symbols.Default())
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), console.FormatError(diagnose(args[0], src, err)))
				return fmt.Errorf("failed to parse %s", args[0])
			}
			if v == nil {
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), tree.Dump(v))
			return nil
		},
	}
}
