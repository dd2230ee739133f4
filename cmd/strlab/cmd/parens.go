package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/strlab/pkg/parens"
)

var parensCmd = &cobra.Command{
	Use:   "parens TEXT...",
	Short: "Checks that all parentheses are closed",
	Long: `Checks that every "(" in TEXT is closed by a later ")".
Exits with status 1 when the input is invalid.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParens,
}

func init() {
	rootCmd.AddCommand(parensCmd)
}

func runParens(cmd *cobra.Command, args []string) error {
	result := parens.Validate(strings.Join(args, " "))

	out := cmd.OutOrStdout()
	if result.Balanced {
		fmt.Fprintln(out, "Input is valid")
		return nil
	}

	fmt.Fprintln(out, "Input is invalid")
	if verbose {
		if result.FailedAt >= 0 {
			fmt.Fprintf(out, "  unmatched ')' at position %d\n", result.FailedAt)
		} else {
			fmt.Fprintf(out, "  %d unclosed '('\n", result.Depth)
		}
	}
	return &exitError{code: 1}
}
