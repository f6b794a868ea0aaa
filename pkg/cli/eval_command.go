package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crilang/cri/pkg/calc"
	"github.com/crilang/cri/pkg/logger"
)

var evalLog = logger.New("cli:eval")

// NewEvalCommand creates the eval command.
func NewEvalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression|file>",
		Short: "Evaluate an arithmetic expression in the notation",
		Long: `Eval parses and evaluates an arithmetic expression: integers, decimals,
+ - * /, prefix minus and parenthesised subexpressions. The argument is
read as a file when a file of that name exists, otherwise it is the
expression itself.

Examples:
  cri eval '1 * 2 + 4 + 3 * 2 + 5'
  cri eval budget.cri`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := args[0]
			if data, err := os.ReadFile(args[0]); err == nil {
				evalLog.Printf("evaluating file %s", args[0])
				src = string(data)
			}

			result, err := calc.Evaluate(src)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%g\n", result)
			return nil
		},
	}
}
